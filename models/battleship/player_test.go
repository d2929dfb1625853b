package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	"github.com/saeidalz13/seabattle/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_TakeMove(t *testing.T) {
	tests := []struct {
		name      string
		targets   []Coordinates
		wantAgain bool
		rejected  int
		outcome   ShotOutcome
	}{
		{
			name:      "hit grants another move",
			targets:   []Coordinates{{0, 0}},
			wantAgain: true,
			outcome:   ShotHit,
		},
		{
			name:    "miss ends the move",
			targets: []Coordinates{{5, 5}},
			outcome: ShotMiss,
		},
		{
			name:     "out of bounds is retried",
			targets:  []Coordinates{{6, 0}, {-1, 2}, {5, 5}},
			rejected: 2,
			outcome:  ShotMiss,
		},
		{
			name:      "already targeted is retried",
			targets:   []Coordinates{{4, 4}, {0, 1}},
			wantAgain: true,
			rejected:  1,
			outcome:   ShotHit,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			enemy := NewDefaultGrid()
			require.NoError(t, enemy.PlaceShip(NewShip(3, NewCoordinates(0, 0), OrientationHorizontal)))
			enemy.ResetUsageTracking()
			// used by the "already targeted" case
			enemy.ApplyShot(NewCoordinates(4, 4))

			notifier := &recordingNotifier{}
			m := NewMatchFromGrids("test", NewDefaultGrid(), enemy, newScriptedTargeter(test.targets...), newScriptedTargeter(), notifier)

			again, err := m.Human().TakeMove()
			require.NoError(t, err)
			assert.Equal(t, test.wantAgain, again)
			assert.Len(t, notifier.rejected, test.rejected)
			require.Len(t, notifier.resolved, 1)
			assert.Equal(t, test.outcome, notifier.resolved[0])
		})
	}
}

func TestPlayer_TakeMoveReportsRejectionKind(t *testing.T) {
	enemy := NewDefaultGrid()
	enemy.ApplyShot(NewCoordinates(1, 1))

	notifier := &recordingNotifier{}
	m := NewMatchFromGrids("test", NewDefaultGrid(), enemy,
		newScriptedTargeter(NewCoordinates(9, 9), NewCoordinates(1, 1), NewCoordinates(2, 2)),
		newScriptedTargeter(), notifier)

	_, err := m.Human().TakeMove()
	require.NoError(t, err)
	require.Len(t, notifier.rejected, 2)
	assert.True(t, errors.Is(notifier.rejected[0], cerr.ErrOutOfBounds))
	assert.True(t, errors.Is(notifier.rejected[1], cerr.ErrAlreadyTargeted))
}

func TestPlayer_TakeMoveTargeterError(t *testing.T) {
	p := NewPlayer(PlayerNameHuman, true, NewDefaultGrid(), NewDefaultGrid(), newScriptedTargeter())

	again, err := p.TakeMove()
	assert.False(t, again)
	assert.ErrorIs(t, err, errScriptDone)
}

func TestRandomTargeter_StaysInBounds(t *testing.T) {
	g := NewDefaultGrid()
	rt := NewRandomTargeter(random.NewSeededProvider(11), g.Size())

	for i := 0; i < 500; i++ {
		c, err := rt.NextTarget()
		require.NoError(t, err)
		require.False(t, g.IsOutOfBounds(c), "x=%d y=%d", c.X, c.Y)
	}
}
