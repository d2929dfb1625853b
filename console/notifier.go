package console

import (
	"errors"
	"fmt"
	"io"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const greeting = `-------------------------------
  Welcome to Sea Battle!
  Enter your move as "x y",
  x is the row, y the column.
-------------------------------`

func Greet(w io.Writer) {
	fmt.Fprintln(w, greeting)
}

// Notifier prints the match to a terminal.
type Notifier struct {
	out io.Writer
}

var _ mb.Notifier = (*Notifier)(nil)

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) TurnStarted(m *mb.Match, p *mb.Player) {
	human, computer := m.Human(), m.Computer()

	fmt.Fprintf(n.out, "\n%s's board\n%s\n", human.Name(), RenderGrid(human.DefenceGrid()))
	fmt.Fprintf(n.out, "%s's board\n%s\n", computer.Name(), RenderGrid(computer.DefenceGrid()))

	if p.IsHuman() {
		fmt.Fprintln(n.out, "Your turn")
	} else {
		fmt.Fprintf(n.out, "%s's turn\n", p.Name())
	}
}

// The human already sees what they typed, only echo the computer.
func (n *Notifier) TargetChosen(m *mb.Match, p *mb.Player, target mb.Coordinates) {
	if p.IsHuman() {
		return
	}
	fmt.Fprintf(n.out, "%s fires at: %s\n", p.Name(), target)
}

func (n *Notifier) ShotResolved(m *mb.Match, p *mb.Player, target mb.Coordinates, outcome mb.ShotOutcome) {
	switch outcome {
	case mb.ShotSunk:
		fmt.Fprintln(n.out, "Ship sunk!")
	case mb.ShotHit:
		fmt.Fprintln(n.out, "Hit!")
	default:
		fmt.Fprintln(n.out, "Miss")
	}
}

func (n *Notifier) ShotRejected(m *mb.Match, p *mb.Player, target mb.Coordinates, err error) {
	if errors.Is(err, cerr.ErrOutOfBounds) {
		fmt.Fprintln(n.out, "That shot is off the board!")
		return
	}
	fmt.Fprintln(n.out, "That cell was already fired at")
}

func (n *Notifier) MatchEnded(m *mb.Match, winner *mb.Player) {
	fmt.Fprintf(n.out, "\n%s's board\n%s\n", m.Human().Name(), RenderGrid(m.Human().DefenceGrid()))
	fmt.Fprintf(n.out, "%s's board\n%s\n", m.Computer().Name(), RenderGrid(m.Computer().DefenceGrid()))
	fmt.Fprintf(n.out, "%s won!\n", winner.Name())
}
