package battleship

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errScriptDone = errors.New("script exhausted")

// scriptedTargeter replays a fixed list of targets.
type scriptedTargeter struct {
	targets []Coordinates
	next    int
}

func newScriptedTargeter(targets ...Coordinates) *scriptedTargeter {
	return &scriptedTargeter{targets: targets}
}

func (st *scriptedTargeter) NextTarget() (Coordinates, error) {
	if st.next >= len(st.targets) {
		return Coordinates{}, errScriptDone
	}
	c := st.targets[st.next]
	st.next++
	return c, nil
}

// maxProvider always returns the top of the requested range.
type maxProvider struct{ calls int }

func (mp *maxProvider) IntInclusive(min, max int) int {
	mp.calls++
	return max
}

// recordingNotifier keeps every event for assertions.
type recordingNotifier struct {
	turns    []string
	resolved []ShotOutcome
	rejected []error
	winner   *Player
	ended    int
}

func (rn *recordingNotifier) TurnStarted(m *Match, p *Player) {
	rn.turns = append(rn.turns, p.Name())
}

func (rn *recordingNotifier) TargetChosen(m *Match, p *Player, target Coordinates) {}

func (rn *recordingNotifier) ShotResolved(m *Match, p *Player, target Coordinates, outcome ShotOutcome) {
	rn.resolved = append(rn.resolved, outcome)
}

func (rn *recordingNotifier) ShotRejected(m *Match, p *Player, target Coordinates, err error) {
	rn.rejected = append(rn.rejected, err)
}

func (rn *recordingNotifier) MatchEnded(m *Match, winner *Player) {
	rn.winner = winner
	rn.ended++
}

// Seven single-cell ships, two cells apart so buffers never clash.
var singleShipBows = []Coordinates{
	{0, 0}, {0, 2}, {0, 4},
	{2, 0}, {2, 2}, {2, 4},
	{4, 0},
}

func newSingleShipGrid(t *testing.T) *Grid {
	t.Helper()

	g := NewDefaultGrid()
	for _, bow := range singleShipBows {
		require.NoError(t, g.PlaceShip(NewShip(1, bow, OrientationHorizontal)))
	}
	g.ResetUsageTracking()
	return g
}
