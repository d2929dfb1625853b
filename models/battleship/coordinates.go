package battleship

import "fmt"

// Coordinates are 0-indexed; X is the row and Y the column.
// Players type them 1-indexed, see FromHuman and Human.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func FromHuman(x, y int) Coordinates {
	return Coordinates{X: x - 1, Y: y - 1}
}

func (c Coordinates) Human() (int, int) {
	return c.X + 1, c.Y + 1
}

func (c Coordinates) String() string {
	x, y := c.Human()
	return fmt.Sprintf("%d %d", x, y)
}

func (c Coordinates) offset(dx, dy int) Coordinates {
	return Coordinates{X: c.X + dx, Y: c.Y + dy}
}

// 8-neighbourhood, used for the buffer zone around ships
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
