package connection

import (
	"encoding/base64"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn, matchUuid string) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	WriteToSessionConn(session *Session, msg interface{}) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	SessionsWatching(matchUuid string) []*Session
}

// BattleshipSessionManager keeps the spectator sessions and, as a
// match notifier, fans every match event out to the sessions
// watching that match.
type BattleshipSessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

var (
	_ SessionManager = (*BattleshipSessionManager)(nil)
	_ mb.Notifier    = (*BattleshipSessionManager)(nil)
)

func NewBattleshipSessionManager() *BattleshipSessionManager {
	initMapSize := 10

	return &BattleshipSessionManager{
		sessions: make(map[string]*Session, initMapSize),
	}
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn, matchUuid string) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, matchUuid, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}
	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) SessionsWatching(matchUuid string) []*Session {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	watching := make([]*Session, 0, len(bsm.sessions))
	for _, session := range bsm.sessions {
		if session.matchUuid == matchUuid {
			watching = append(watching, session)
		}
	}
	return watching
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}) error {
	return session.writeToConnWithRetry(msg)
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		default:
			return -1, []byte{}, err
		}
	}
}

// broadcast writes msg to everyone watching the match. Sessions
// that cannot be written to are dropped.
func (bsm *BattleshipSessionManager) broadcast(matchUuid string, msg interface{}) {
	for _, session := range bsm.SessionsWatching(matchUuid) {
		if err := bsm.WriteToSessionConn(session, msg); err != nil {
			log.Info("dropping spectator", "session", session.id, "match", matchUuid, "err", err)
			bsm.TerminateSession(session.id)
			_ = session.conn.Close()
		}
	}
}

func (bsm *BattleshipSessionManager) TurnStarted(m *mb.Match, p *mb.Player) {
	bsm.broadcast(m.Uuid(), NewMatchMessage(CodeTurn, m.Uuid(), RespTurn{
		Player: p.Name(),
		Shots:  m.Shots(),
	}))
}

// Targets are only broadcast once resolved.
func (bsm *BattleshipSessionManager) TargetChosen(m *mb.Match, p *mb.Player, target mb.Coordinates) {}

func (bsm *BattleshipSessionManager) ShotResolved(m *mb.Match, p *mb.Player, target mb.Coordinates, outcome mb.ShotOutcome) {
	bsm.broadcast(m.Uuid(), NewMatchMessage(CodeShot, m.Uuid(), RespShot{
		Player:              p.Name(),
		Target:              target,
		Outcome:             outcome.String(),
		IsTurn:              outcome.GrantsExtraTurn(),
		SunkenShipsHuman:    m.Human().DefenceGrid().SunkCount(),
		SunkenShipsComputer: m.Computer().DefenceGrid().SunkCount(),
	}))
}

func (bsm *BattleshipSessionManager) ShotRejected(m *mb.Match, p *mb.Player, target mb.Coordinates, err error) {
	bsm.broadcast(m.Uuid(), NewMatchMessage(CodeShotRejected, m.Uuid(), RespRejected{
		Player: p.Name(),
		Target: target,
		Reason: err.Error(),
	}))
}

func (bsm *BattleshipSessionManager) MatchEnded(m *mb.Match, winner *mb.Player) {
	bsm.broadcast(m.Uuid(), NewMatchMessage(CodeMatchEnded, m.Uuid(), RespMatchEnded{
		Winner: winner.Name(),
		Shots:  m.Shots(),
	}))
}
