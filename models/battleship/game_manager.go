package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/seabattle/internal/error"
	"github.com/saeidalz13/seabattle/internal/random"
)

type MatchManager interface {
	CreateMatch(rng random.Provider, humanTargeter Targeter, notifier Notifier) *Match
	GetMatch(matchUuid string) (*Match, error)
	TerminateMatch(matchUuid string)
}

type BattleshipMatchManager struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

var _ MatchManager = (*BattleshipMatchManager)(nil)

func NewBattleshipMatchManager() *BattleshipMatchManager {
	return &BattleshipMatchManager{
		matches: make(map[string]*Match, 10),
	}
}

func (bmm *BattleshipMatchManager) CreateMatch(rng random.Provider, humanTargeter Targeter, notifier Notifier) *Match {
	matchUuid := uuid.NewString()[:6]
	match := NewMatch(matchUuid, rng, humanTargeter, notifier)

	bmm.mu.Lock()
	bmm.matches[matchUuid] = match
	bmm.mu.Unlock()

	return match
}

func (bmm *BattleshipMatchManager) GetMatch(matchUuid string) (*Match, error) {
	bmm.mu.RLock()
	match, prs := bmm.matches[matchUuid]
	bmm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotExists(matchUuid)
	}

	return match, nil
}

func (bmm *BattleshipMatchManager) TerminateMatch(matchUuid string) {
	bmm.mu.Lock()
	delete(bmm.matches, matchUuid)
	bmm.mu.Unlock()
}
