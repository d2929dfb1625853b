package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const (
	msgPrompt        = "Your move: "
	msgWrongTokens   = "Enter 2 coordinates"
	msgNotNumbers    = "Coordinates must be numbers"
	msgReadingFailed = "read move"
)

// InputTargeter reads the human's moves as "x y", 1-indexed.
// Malformed lines are answered with a hint and asked again; range
// checks are left to the grid.
type InputTargeter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ mb.Targeter = (*InputTargeter)(nil)

func NewInputTargeter(in io.Reader, out io.Writer) *InputTargeter {
	return &InputTargeter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (it *InputTargeter) NextTarget() (mb.Coordinates, error) {
	for {
		fmt.Fprint(it.out, msgPrompt)

		if !it.scanner.Scan() {
			if err := it.scanner.Err(); err != nil {
				return mb.Coordinates{}, fmt.Errorf("%s: %w", msgReadingFailed, err)
			}
			return mb.Coordinates{}, io.EOF
		}

		c, hint := ParseMove(it.scanner.Text())
		if hint != "" {
			fmt.Fprintln(it.out, hint)
			continue
		}
		return c, nil
	}
}

// ParseMove turns "x y" into coordinates. On failure the second
// value is the hint to show the player.
func ParseMove(line string) (mb.Coordinates, string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mb.Coordinates{}, msgWrongTokens
	}

	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return mb.Coordinates{}, msgNotNumbers
	}

	return mb.FromHuman(x, y), ""
}
