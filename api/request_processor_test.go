package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/seabattle/internal/random"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mc "github.com/saeidalz13/seabattle/models/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dialer = websocket.Dialer{HandshakeTimeout: 5 * time.Second}

type testEnv struct {
	url   string
	bsm   *mc.BattleshipSessionManager
	match *mb.Match
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	bsm := mc.NewBattleshipSessionManager()
	bmm := mb.NewBattleshipMatchManager()
	match := bmm.CreateMatch(random.NewSeededProvider(7), nil, bsm)

	srv := httptest.NewServer(NewSpectatorServer(0, NewSpectatorProcessor(bsm, bmm)).Handler)
	t.Cleanup(srv.Close)

	return testEnv{
		url:   "ws" + strings.TrimPrefix(srv.URL, "http") + "/battleship/spectate",
		bsm:   bsm,
		match: match,
	}
}

func (e testEnv) dial(t *testing.T, matchUuid string) *websocket.Conn {
	t.Helper()

	conn, _, err := dialer.Dial(e.url+"?matchUuid="+matchUuid, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSpectate(t *testing.T) {
	env := newTestEnv(t)
	conn := env.dial(t, env.match.Uuid())

	var joined mc.Message[mc.RespSpectating]
	require.NoError(t, conn.ReadJSON(&joined))
	assert.Equal(t, mc.CodeSpectating, joined.Code)
	assert.Equal(t, env.match.Uuid(), joined.Payload.MatchUuid)
	assert.NotEmpty(t, joined.Payload.SessionID)
	assert.Len(t, env.bsm.SessionsWatching(env.match.Uuid()), 1)

	env.bsm.MatchEnded(env.match, env.match.Computer())

	var ended mc.Message[mc.RespMatchEnded]
	require.NoError(t, conn.ReadJSON(&ended))
	assert.Equal(t, mc.CodeMatchEnded, ended.Code)
	assert.Equal(t, mb.PlayerNameComputer, ended.Payload.Winner)
}

func TestSpectateUnknownMatch(t *testing.T) {
	env := newTestEnv(t)
	conn := env.dial(t, "nope00")

	var resp mc.Message[mc.NoPayload]
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, mc.CodeInvalidMatch, resp.Code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.ErrorDetails, "nope00")

	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestSpectatorSignalsAreRejected(t *testing.T) {
	env := newTestEnv(t)
	conn := env.dial(t, env.match.Uuid())

	var joined mc.Message[mc.RespSpectating]
	require.NoError(t, conn.ReadJSON(&joined))

	require.NoError(t, conn.WriteJSON(mc.NewSignal(mc.CodeShot)))

	var resp mc.Message[mc.NoPayload]
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, mc.CodeInvalidSignal, resp.Code)
}

func TestSpectatorLeaving(t *testing.T) {
	env := newTestEnv(t)
	conn := env.dial(t, env.match.Uuid())

	var joined mc.Message[mc.RespSpectating]
	require.NoError(t, conn.ReadJSON(&joined))

	require.NoError(t, conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	))

	assert.Eventually(t, func() bool {
		return len(env.bsm.SessionsWatching(env.match.Uuid())) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewSpectatorServer(t *testing.T) {
	srv := NewSpectatorServer(8123, SpectatorProcessor{})
	assert.Equal(t, "0.0.0.0:8123", srv.Addr)
	assert.NotNil(t, srv.Handler)
}
