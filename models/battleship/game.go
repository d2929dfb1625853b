package battleship

import (
	"github.com/saeidalz13/seabattle/internal/random"
)

// Match runs the turn loop between the human player and the
// computer. The human moves on even move counts, the computer on
// odd ones; a hit replays the same player's turn.
type Match struct {
	uuid       string
	isFinished bool
	moveCount  int
	shots      int
	human      *Player
	computer   *Player
	winner     *Player
	notifier   Notifier
}

// NewMatch generates both boards from rng. The computer's board is
// concealed and the computer fires at random with the same rng.
func NewMatch(uuid string, rng random.Provider, humanTargeter Targeter, notifier Notifier) *Match {
	humanGrid := GenerateGrid(rng)
	computerGrid := GenerateGrid(rng)
	computerGrid.SetConcealed(true)

	return NewMatchFromGrids(
		uuid,
		humanGrid,
		computerGrid,
		humanTargeter,
		NewRandomTargeter(rng, computerGrid.Size()),
		notifier,
	)
}

// NewMatchFromGrids builds a match on boards that are already set up.
func NewMatchFromGrids(
	uuid string,
	humanGrid, computerGrid *Grid,
	humanTargeter, computerTargeter Targeter,
	notifier Notifier,
) *Match {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	m := &Match{
		uuid:     uuid,
		human:    NewPlayer(PlayerNameHuman, true, humanGrid, computerGrid, humanTargeter),
		computer: NewPlayer(PlayerNameComputer, false, computerGrid, humanGrid, computerTargeter),
		notifier: notifier,
	}
	m.human.currentMatch = m
	m.computer.currentMatch = m

	return m
}

func (m *Match) Uuid() string {
	return m.uuid
}

func (m *Match) IsFinished() bool {
	return m.isFinished
}

func (m *Match) Winner() *Player {
	return m.winner
}

// Shots counts every resolved shot, extra turns included.
func (m *Match) Shots() int {
	return m.shots
}

func (m *Match) Human() *Player {
	return m.human
}

func (m *Match) Computer() *Player {
	return m.computer
}

// returns a slice of players in the order of human then computer.
func (m *Match) Players() []*Player {
	return []*Player{m.human, m.computer}
}

func (m *Match) ActivePlayer() *Player {
	if m.moveCount%2 == 0 {
		return m.human
	}
	return m.computer
}

// Step plays a single move and reports whether the match is over.
func (m *Match) Step() (bool, error) {
	if m.isFinished {
		return true, nil
	}

	active := m.ActivePlayer()
	m.notifier.TurnStarted(m, active)

	again, err := active.TakeMove()
	if err != nil {
		return false, err
	}
	m.shots++

	m.moveCount++
	if again {
		m.moveCount--
	}

	if winner := m.checkWinner(); winner != nil {
		m.isFinished = true
		m.winner = winner
		m.notifier.MatchEnded(m, winner)
		return true, nil
	}
	return false, nil
}

// Run plays until one fleet is destroyed and returns the winner.
func (m *Match) Run() (*Player, error) {
	for {
		done, err := m.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return m.winner, nil
		}
	}
}

func (m *Match) checkWinner() *Player {
	if m.computer.IsLoser() {
		return m.human
	}
	if m.human.IsLoser() {
		return m.computer
	}
	return nil
}
