package question

import (
	"math/rand/v2"
	"sort"
	"testing"
)

// collect drains the set's iterator into a slice.
func collect(set *Set) []Pair {
	var out []Pair
	for _, pair := range set.All() {
		out = append(out, pair)
	}
	return out
}

func samplePairs(n int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{Question: string(rune('a' + i)), Answer: string(rune('A' + i))}
	}
	return pairs
}

// TestSetAllPreservesOrder verifies iteration follows load order.
func TestSetAllPreservesOrder(t *testing.T) {
	pairs := samplePairs(4)
	set := NewSet(pairs)
	if set.Len() != 4 {
		t.Fatalf("expected len 4, got %d", set.Len())
	}
	index := 0
	for i, pair := range set.All() {
		if i != index {
			t.Fatalf("expected index %d, got %d", index, i)
		}
		if pair != pairs[i] {
			t.Fatalf("pair %d = %+v, want %+v", i, pair, pairs[i])
		}
		index++
	}
	if index != 4 {
		t.Fatalf("expected 4 iterations, got %d", index)
	}
}

// TestSetAllStopsEarly verifies the iterator honors an early break.
func TestSetAllStopsEarly(t *testing.T) {
	set := NewSet(samplePairs(5))
	seen := 0
	for range set.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("expected 2 iterations, got %d", seen)
	}
}

// TestSetShuffleIsPermutation verifies shuffling keeps the same multiset of questions.
func TestSetShuffleIsPermutation(t *testing.T) {
	pairs := samplePairs(20)
	pairs = append(pairs, pairs[3])
	before := questionsOf(pairs)

	set := NewSet(append([]Pair(nil), pairs...))
	set.Shuffle(rand.New(rand.NewPCG(1, 2)))
	after := questionsOf(collect(set))

	if len(after) != len(before) {
		t.Fatalf("expected len %d, got %d", len(before), len(after))
	}
	sort.Strings(before)
	sort.Strings(after)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("multiset differs at %d: %q vs %q", i, before[i], after[i])
		}
	}
}

// TestSetShuffleReorders verifies a seeded shuffle changes the order of a large set.
func TestSetShuffleReorders(t *testing.T) {
	pairs := samplePairs(20)
	set := NewSet(append([]Pair(nil), pairs...))
	set.Shuffle(rand.New(rand.NewPCG(7, 11)))
	same := true
	for i, pair := range set.All() {
		if pair != pairs[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected shuffled order to differ from the original")
	}
}

// TestSetShuffleNilSource verifies the package source is used when none is given.
func TestSetShuffleNilSource(t *testing.T) {
	set := NewSet(samplePairs(6))
	set.Shuffle(nil)
	if set.Len() != 6 {
		t.Fatalf("expected len 6, got %d", set.Len())
	}
}

// TestEmptySet verifies empty and nil sets are usable.
func TestEmptySet(t *testing.T) {
	var nilSet *Set
	if nilSet.Len() != 0 {
		t.Fatalf("expected nil set to be empty")
	}
	set := NewSet(nil)
	set.Shuffle(nil)
	for range set.All() {
		t.Fatalf("expected no iterations")
	}
}

func questionsOf(pairs []Pair) []string {
	out := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, pair.Question)
	}
	return out
}
