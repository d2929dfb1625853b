package battleship

import (
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// ShotOutcome is the result of firing at a grid. The last two
// values reject the shot and leave the grid untouched.
type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
	ShotOutOfBounds
	ShotAlreadyTargeted
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotMiss:
		return "Miss"
	case ShotHit:
		return "Hit"
	case ShotSunk:
		return "Sunk"
	case ShotOutOfBounds:
		return "OutOfBounds"
	case ShotAlreadyTargeted:
		return "AlreadyTargeted"
	default:
		return "Unknown"
	}
}

func (o ShotOutcome) IsValid() bool {
	return o == ShotMiss || o == ShotHit || o == ShotSunk
}

// A sinking shot does not grant another move, only a plain hit does.
func (o ShotOutcome) GrantsExtraTurn() bool {
	return o == ShotHit
}

// Err returns the rejection error for target, nil for valid outcomes.
func (o ShotOutcome) Err(target Coordinates) error {
	switch o {
	case ShotOutOfBounds:
		return cerr.ErrXorYOutOfGridBound(target.X, target.Y)
	case ShotAlreadyTargeted:
		return cerr.ErrPositionAlreadyTargeted(target.X, target.Y)
	default:
		return nil
	}
}
