package battleship

import (
	"github.com/saeidalz13/seabattle/internal/random"
)

const (
	PlayerNameHuman    = "Player"
	PlayerNameComputer = "Computer"
)

// Targeter is where a player's moves come from. An error means
// the source itself failed (e.g. input was closed), not that the
// target was bad; bad targets are rejected by the grid.
type Targeter interface {
	NextTarget() (Coordinates, error)
}

// RandomTargeter picks a uniformly random in-bounds cell.
type RandomTargeter struct {
	rng  random.Provider
	size int
}

var _ Targeter = (*RandomTargeter)(nil)

func NewRandomTargeter(rng random.Provider, gridSize int) *RandomTargeter {
	return &RandomTargeter{rng: rng, size: gridSize}
}

func (rt *RandomTargeter) NextTarget() (Coordinates, error) {
	x := rt.rng.IntInclusive(0, rt.size-1)
	y := rt.rng.IntInclusive(0, rt.size-1)
	return NewCoordinates(x, y), nil
}

type Player struct {
	name         string
	isHuman      bool
	defenceGrid  *Grid
	attackGrid   *Grid
	targeter     Targeter
	currentMatch *Match
}

// NewPlayer creates a player defending defenceGrid and
// firing at attackGrid, which is the opponent's grid.
func NewPlayer(name string, isHuman bool, defenceGrid, attackGrid *Grid, targeter Targeter) *Player {
	return &Player{
		name:        name,
		isHuman:     isHuman,
		defenceGrid: defenceGrid,
		attackGrid:  attackGrid,
		targeter:    targeter,
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsHuman() bool {
	return p.isHuman
}

func (p *Player) DefenceGrid() *Grid {
	return p.defenceGrid
}

func (p *Player) AttackGrid() *Grid {
	return p.attackGrid
}

func (p *Player) IsLoser() bool {
	return p.defenceGrid.SunkCount() >= len(FleetLengths)
}

func (p *Player) notifier() Notifier {
	if p.currentMatch == nil || p.currentMatch.notifier == nil {
		return NopNotifier{}
	}
	return p.currentMatch.notifier
}

// TakeMove fires at the opponent until a shot lands on a valid
// cell. Rejected targets are reported and do not use up the move.
// It returns true when the player gets to move again.
func (p *Player) TakeMove() (bool, error) {
	n := p.notifier()

	for {
		target, err := p.targeter.NextTarget()
		if err != nil {
			return false, err
		}
		n.TargetChosen(p.currentMatch, p, target)

		outcome := p.attackGrid.ApplyShot(target)
		if !outcome.IsValid() {
			n.ShotRejected(p.currentMatch, p, target, outcome.Err(target))
			continue
		}

		n.ShotResolved(p.currentMatch, p, target, outcome)
		return outcome.GrantsExtraTurn(), nil
	}
}
