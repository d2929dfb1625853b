package console

import (
	"fmt"
	"strings"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const (
	SymbolEmpty = "O"
	SymbolShip  = "■"
	SymbolHit   = "X"
	SymbolMiss  = "."
)

func symbol(state mb.CellState) string {
	switch state {
	case mb.CellShip:
		return SymbolShip
	case mb.CellHit:
		return SymbolHit
	case mb.CellMiss:
		return SymbolMiss
	default:
		return SymbolEmpty
	}
}

// RenderGrid draws g with 1-indexed row and column headers. Ship
// cells of a concealed grid are drawn as water.
func RenderGrid(g *mb.Grid) string {
	var sb strings.Builder

	sb.WriteString("  |")
	for y := 1; y <= g.Size(); y++ {
		fmt.Fprintf(&sb, " %d |", y)
	}

	for x, row := range g.View() {
		fmt.Fprintf(&sb, "\n%d |", x+1)
		for _, state := range row {
			fmt.Fprintf(&sb, " %s |", symbol(state))
		}
	}
	return sb.String()
}
