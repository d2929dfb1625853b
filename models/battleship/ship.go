package battleship

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "Horizontal"
	case OrientationVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

type Ship struct {
	length      int
	bow         Coordinates
	orientation Orientation
	strength    int
}

func NewShip(length int, bow Coordinates, orientation Orientation) *Ship {
	return &Ship{
		length:      length,
		bow:         bow,
		orientation: orientation,
		strength:    length,
	}
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Strength() int {
	return sh.strength
}

func (sh *Ship) IsSunk() bool {
	return sh.strength == 0
}

// Cells returns the coordinates the ship occupies, starting at
// the bow. Horizontal ships grow along Y, vertical ones along X.
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.orientation == OrientationHorizontal {
			cells[i] = sh.bow.offset(0, i)
		} else {
			cells[i] = sh.bow.offset(i, 0)
		}
	}
	return cells
}

func (sh *Ship) IsHitBy(c Coordinates) bool {
	for _, cell := range sh.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

// only the owning grid calls this
func (sh *Ship) takeHit() {
	if sh.strength > 0 {
		sh.strength--
	}
}
