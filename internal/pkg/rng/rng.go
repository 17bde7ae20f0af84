// Package rng provides seedable dice.Roller implementations so combat
// resolution is reproducible in tests.
package rng

import (
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pocketrpg/battle-core/internal/errors"
)

// Seeded implements dice.Roller on top of a seedable math/rand source.
// It is not safe for concurrent use; a combat session is single-writer.
type Seeded struct {
	r *rand.Rand
}

var _ dice.Roller = (*Seeded)(nil)

// NewSeeded creates a roller seeded with the given value. Equal seeds
// produce identical roll sequences.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // #nosec G404 -- game randomness, not crypto
}

// Roll returns a uniform value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return s.r.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Fixed implements dice.Roller returning a constant value clamped to the
// die size. Useful for pinning jitter and crit rolls in tests.
type Fixed struct {
	Value int
}

var _ dice.Roller = (*Fixed)(nil)

// Roll returns the fixed value, clamped to [1, size]
func (f *Fixed) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	v := f.Value
	if v < 1 {
		v = 1
	}
	if v > size {
		v = size
	}
	return v, nil
}

// RollN rolls count fixed dice
func (f *Fixed) RollN(count, size int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := f.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Scripted implements dice.Roller replaying a predetermined sequence.
// Each scripted value is clamped to the requested die size; the sequence
// wraps around when exhausted.
type Scripted struct {
	Rolls []int
	next  int
}

var _ dice.Roller = (*Scripted)(nil)

// NewScripted creates a roller replaying the given values in order
func NewScripted(rolls ...int) *Scripted {
	return &Scripted{Rolls: rolls}
}

// Roll returns the next scripted value clamped to [1, size]
func (s *Scripted) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	if len(s.Rolls) == 0 {
		return 1, nil
	}
	v := s.Rolls[s.next%len(s.Rolls)]
	s.next++
	if v < 1 {
		v = 1
	}
	if v > size {
		v = size
	}
	return v, nil
}

// RollN rolls count scripted dice
func (s *Scripted) RollN(count, size int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
