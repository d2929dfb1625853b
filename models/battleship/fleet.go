package battleship

import (
	"errors"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/seabattle/internal/error"
	"github.com/saeidalz13/seabattle/internal/random"
)

// One triple, two doubles and four single-cell ships.
var FleetLengths = [...]int{3, 2, 2, 1, 1, 1, 1}

// Shared by all ships of one generation pass, not per ship.
const MaxPlacementAttempts int = 2000

// TryGenerateGrid places the whole fleet on a fresh default grid
// at random. Bows are drawn from [0, size] on purpose; candidates
// hanging off the board are rejected by PlaceShip like any other.
func TryGenerateGrid(rng random.Provider) (*Grid, error) {
	grid := NewDefaultGrid()
	attempts := 0

	for _, length := range FleetLengths {
		for {
			attempts++
			if attempts > MaxPlacementAttempts {
				return nil, cerr.ErrFleetExhausted(MaxPlacementAttempts)
			}

			bow := NewCoordinates(
				rng.IntInclusive(0, grid.Size()),
				rng.IntInclusive(0, grid.Size()),
			)
			orientation := Orientation(rng.IntInclusive(0, 1))

			err := grid.PlaceShip(NewShip(length, bow, orientation))
			if err == nil {
				break
			}
			if !errors.Is(err, cerr.ErrInvalidPlacement) {
				return nil, err
			}
		}
	}

	grid.ResetUsageTracking()
	return grid, nil
}

// GenerateGrid keeps trying whole boards until one fits.
func GenerateGrid(rng random.Provider) *Grid {
	for try := 1; ; try++ {
		grid, err := TryGenerateGrid(rng)
		if err == nil {
			return grid
		}
		log.Debug("discarding board", "try", try, "err", err)
	}
}
