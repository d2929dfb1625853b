package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mc "github.com/saeidalz13/seabattle/models/connection"
)

const (
	URLQueryMatchUuidKeyword string = "matchUuid"
)

var (
	upgrader = websocket.Upgrader{
		HandshakeTimeout: time.Second * 5,

		// spectators only ever send control frames
		ReadBufferSize:  1024,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// SpectatorProcessor attaches websocket clients to a running match.
// Spectators only receive; the match itself is played on the console.
type SpectatorProcessor struct {
	sessionManager mc.SessionManager
	matchManager   mb.MatchManager
}

func NewSpectatorProcessor(sessionManager mc.SessionManager, matchManager mb.MatchManager) SpectatorProcessor {
	return SpectatorProcessor{
		sessionManager: sessionManager,
		matchManager:   matchManager,
	}
}

func (sp SpectatorProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("could not upgrade connection", "remote", r.RemoteAddr, "err", err)
		return
	}

	matchUuid := r.URL.Query().Get(URLQueryMatchUuidKeyword)
	if _, err := sp.matchManager.GetMatch(matchUuid); err != nil {
		resp := mc.NewMessage[mc.NoPayload](mc.CodeInvalidMatch)
		resp.AddError(err.Error(), "no match to spectate")
		_ = conn.WriteJSON(resp)
		conn.Close()
		return
	}

	log.Info("spectator joined", "remote", conn.RemoteAddr().String(), "match", matchUuid)
	sp.processSessionRequests(sp.sessionManager.GenerateNewSession(conn, matchUuid))
}

// processSessionRequests blocks until the spectator goes away.
func (sp SpectatorProcessor) processSessionRequests(session *mc.Session) {
	defer func() {
		sp.sessionManager.TerminateSession(session.Id())
		session.Conn().Close()
		log.Info("spectator left", "session", session.Id(), "match", session.MatchUuid())
	}()

	resp := mc.NewMessage[mc.RespSpectating](mc.CodeSpectating)
	resp.AddPayload(mc.RespSpectating{SessionID: session.Id(), MatchUuid: session.MatchUuid()})
	if err := sp.sessionManager.WriteToSessionConn(session, resp); err != nil {
		return
	}

	for {
		if _, _, err := sp.sessionManager.ReadFromSessionConn(session); err != nil {
			return
		}

		resp := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
		resp.AddError("", "spectators cannot send signals")
		if err := sp.sessionManager.WriteToSessionConn(session, resp); err != nil {
			return
		}
	}
}
