// Package random provides the randomness source used by fleet generation
// and the automated player. It is injected so matches can be replayed from
// a seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Provider supplies uniformly distributed integers.
type Provider interface {
	// IntInclusive returns a value in [min, max], both ends included.
	IntInclusive(min, max int) int
}

type SeededProvider struct {
	seed int64
	rng  *rand.Rand
}

var _ Provider = (*SeededProvider)(nil)

func NewSeededProvider(seed int64) *SeededProvider {
	return &SeededProvider{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewProvider seeds from crypto/rand when seed is 0.
func NewProvider(seed int64) (*SeededProvider, error) {
	if seed != 0 {
		return NewSeededProvider(seed), nil
	}

	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededProvider(seed), nil
}

func (p *SeededProvider) Seed() int64 {
	return p.seed
}

func (p *SeededProvider) IntInclusive(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.rng.Intn(max-min+1)
}

func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
