package battleship

// Notifier receives everything that happens during a match so it
// can be shown somewhere. Implementations must not mutate the match.
type Notifier interface {
	TurnStarted(m *Match, p *Player)
	TargetChosen(m *Match, p *Player, target Coordinates)
	ShotResolved(m *Match, p *Player, target Coordinates, outcome ShotOutcome)
	ShotRejected(m *Match, p *Player, target Coordinates, err error)
	MatchEnded(m *Match, winner *Player)
}

type NopNotifier struct{}

var _ Notifier = NopNotifier{}

func (NopNotifier) TurnStarted(*Match, *Player) {}
func (NopNotifier) TargetChosen(*Match, *Player, Coordinates) {}
func (NopNotifier) ShotResolved(*Match, *Player, Coordinates, ShotOutcome) {}
func (NopNotifier) ShotRejected(*Match, *Player, Coordinates, error) {}
func (NopNotifier) MatchEnded(*Match, *Player) {}

// MultiNotifier forwards every event to each notifier in order.
type MultiNotifier []Notifier

var _ Notifier = MultiNotifier(nil)

func (mn MultiNotifier) TurnStarted(m *Match, p *Player) {
	for _, n := range mn {
		n.TurnStarted(m, p)
	}
}

func (mn MultiNotifier) TargetChosen(m *Match, p *Player, target Coordinates) {
	for _, n := range mn {
		n.TargetChosen(m, p, target)
	}
}

func (mn MultiNotifier) ShotResolved(m *Match, p *Player, target Coordinates, outcome ShotOutcome) {
	for _, n := range mn {
		n.ShotResolved(m, p, target, outcome)
	}
}

func (mn MultiNotifier) ShotRejected(m *Match, p *Player, target Coordinates, err error) {
	for _, n := range mn {
		n.ShotRejected(m, p, target, err)
	}
}

func (mn MultiNotifier) MatchEnded(m *Match, winner *Player) {
	for _, n := range mn {
		n.MatchEnded(m, winner)
	}
}
