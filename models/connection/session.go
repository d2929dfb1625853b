package connection

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     time.Duration = time.Millisecond * 100
	writeWait         time.Duration = time.Second * 2
)

// Session is one spectator watching one match.
type Session struct {
	id        string
	matchUuid string
	conn      *websocket.Conn
	createdAt time.Time

	// gorilla connections allow a single concurrent writer
	writeMu sync.Mutex
}

func NewSession(id, matchUuid string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		matchUuid: matchUuid,
		conn:      conn,
		createdAt: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) MatchUuid() string {
	return s.matchUuid
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Debug("timeout error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Debug("high server load/traffic error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Debug("close error", "session", s.id, "err", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		log.Warn("critical error", "session", s.id, "err", err)
		return ConnLoopBreak
	}

	log.Debug("unexpected error", "session", s.id, "err", err)
	return ConnLoopBreak
}

// writeToConnWithRetry writes msg as JSON, retrying timeouts with
// a short back-off so a slow spectator cannot stall the match.
func (s *Session) writeToConnWithRetry(msg interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var retries uint8
	for {
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := s.conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		if s.onConnErr(err) == ConnLoopRetry && retries < maxWriteWsRetries {
			retries++
			log.Debug("writing json to spectator failed; retrying", "session", s.id, "retry", retries)
			time.Sleep(time.Duration(retries) * backOffFactor)
			continue
		}

		return NewConnErr(ConnLoopBreak, s.id).AddDesc("breaking write loop due to: " + err.Error())
	}
}

// handleReadFromConnErr tells the read loop whether to keep going.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopRetry:
		if retries < maxWriteWsRetries {
			return ConnLoopContinue
		}
		return ConnLoopBreak

	default:
		return ConnLoopBreak
	}
}
