package battleship

import (
	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const GridSizeDefault int = 6

type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Grid is one side's board. The used set holds every cell that can
// no longer be picked: during setup that is ship cells and their
// buffers, during play the cells already fired upon.
type Grid struct {
	size      int
	concealed bool
	sunkCount int
	cells     [][]CellState
	used      *swiss.Map[Coordinates, struct{}]
	ships     []*Ship
}

func NewGrid(size int) *Grid {
	cells := make([][]CellState, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]CellState, size)
	}

	return &Grid{
		size:  size,
		cells: cells,
		used:  newUsedSet(size),
		ships: make([]*Ship, 0, len(FleetLengths)),
	}
}

func NewDefaultGrid() *Grid {
	return NewGrid(GridSizeDefault)
}

func newUsedSet(size int) *swiss.Map[Coordinates, struct{}] {
	return swiss.NewMap[Coordinates, struct{}](uint32(size * size))
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) Concealed() bool {
	return g.concealed
}

func (g *Grid) SetConcealed(concealed bool) {
	g.concealed = concealed
}

func (g *Grid) SunkCount() int {
	return g.sunkCount
}

func (g *Grid) Ships() []*Ship {
	return g.ships
}

func (g *Grid) AllSunk() bool {
	return len(g.ships) > 0 && g.sunkCount == len(g.ships)
}

func (g *Grid) IsOutOfBounds(c Coordinates) bool {
	return c.X < 0 || c.X >= g.size || c.Y < 0 || c.Y >= g.size
}

func (g *Grid) IsUsed(c Coordinates) bool {
	return g.used.Has(c)
}

// CellAt returns the real state of c, regardless of concealment.
func (g *Grid) CellAt(c Coordinates) CellState {
	if g.IsOutOfBounds(c) {
		return CellEmpty
	}
	return g.cells[c.X][c.Y]
}

// View returns a copy of the cell states as an outside viewer
// sees them. Concealed grids report ship cells as empty.
func (g *Grid) View() [][]CellState {
	view := make([][]CellState, g.size)
	for x := range g.cells {
		view[x] = make([]CellState, g.size)
		for y, state := range g.cells[x] {
			if g.concealed && state == CellShip {
				state = CellEmpty
			}
			view[x][y] = state
		}
	}
	return view
}

// PlaceShip adds ship to the grid and reserves the buffer around it.
// Nothing is changed when any of its cells is out of bounds, on
// another ship or inside another ship's buffer.
func (g *Grid) PlaceShip(ship *Ship) error {
	cells := ship.Cells()
	for _, c := range cells {
		if g.IsOutOfBounds(c) || g.used.Has(c) {
			return cerr.ErrShipPlacement(c.X, c.Y)
		}
	}

	for _, c := range cells {
		g.cells[c.X][c.Y] = CellShip
		g.used.Put(c, struct{}{})
	}
	g.ships = append(g.ships, ship)
	g.contour(ship, false)

	return nil
}

// ResetUsageTracking forgets the placement bookkeeping so shots
// start from a clean slate.
func (g *Grid) ResetUsageTracking() {
	g.used = newUsedSet(g.size)
}

func (g *Grid) ApplyShot(c Coordinates) ShotOutcome {
	if g.IsOutOfBounds(c) {
		return ShotOutOfBounds
	}
	if g.used.Has(c) {
		return ShotAlreadyTargeted
	}
	g.used.Put(c, struct{}{})

	for _, ship := range g.ships {
		if !ship.IsHitBy(c) {
			continue
		}

		ship.takeHit()
		g.cells[c.X][c.Y] = CellHit

		if ship.IsSunk() {
			g.sunkCount++
			g.contour(ship, true)
			return ShotSunk
		}
		return ShotHit
	}

	g.cells[c.X][c.Y] = CellMiss
	return ShotMiss
}

// contour marks the in-bounds, unused neighbours of every ship cell
// as used. With reveal set they are also shown as misses.
func (g *Grid) contour(ship *Ship, reveal bool) {
	for _, c := range ship.Cells() {
		for _, o := range neighbourOffsets {
			n := c.offset(o[0], o[1])
			if g.IsOutOfBounds(n) || g.used.Has(n) {
				continue
			}
			if reveal {
				g.cells[n.X][n.Y] = CellMiss
			}
			g.used.Put(n, struct{}{})
		}
	}
}
