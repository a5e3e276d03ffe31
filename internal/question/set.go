package question

import (
	"iter"
	"math/rand/v2"
)

// Set is the ordered list of pairs asked during one session.
type Set struct {
	pairs []Pair
}

// NewSet wraps pairs in display order without copying or validating them.
func NewSet(pairs []Pair) *Set {
	return &Set{pairs: pairs}
}

// Len returns the number of questions in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pairs)
}

// Shuffle permutes the set in place. A nil r uses the package-level source.
func (s *Set) Shuffle(r *rand.Rand) {
	if s == nil || len(s.pairs) < 2 {
		return
	}
	swap := func(i, j int) {
		s.pairs[i], s.pairs[j] = s.pairs[j], s.pairs[i]
	}
	if r == nil {
		rand.Shuffle(len(s.pairs), swap)
		return
	}
	r.Shuffle(len(s.pairs), swap)
}

// All yields each pair with its zero-based position.
func (s *Set) All() iter.Seq2[int, Pair] {
	return func(yield func(int, Pair) bool) {
		if s == nil {
			return
		}
		for i, pair := range s.pairs {
			if !yield(i, pair) {
				return
			}
		}
	}
}

