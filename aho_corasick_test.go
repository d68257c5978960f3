package fuzzytrie

import (
	"sort"
	"testing"
)

func TestMatchMultiplicity(t *testing.T) {
	ac := NewAhoCorasickFromPairs(pairsOf(
		p("aaaa", 1),
		p("aa", 3),
		p("a", 4),
		p("ab", 5),
		p("aba", 6),
		p("caa", 7),
	))

	var got []int
	ac.Match(seqOf("aaaaabc"), func(_ int, label int) {
		got = append(got, label)
	})

	sort.Ints(got)
	want := []int{1, 1, 3, 3, 3, 3, 4, 4, 4, 4, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Match emitted %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Match emitted %v, want %v", got, want)
		}
	}
}

func TestMatchEmptyText(t *testing.T) {
	ac := NewAhoCorasickFromPairs(pairsOf(p("a", 1)))

	var got []int
	ac.Match(nil, func(_ int, label int) { got = append(got, label) })
	if len(got) != 0 {
		t.Errorf("Match on empty text emitted %v, want nothing", got)
	}
}

func TestMatchNoOccurrences(t *testing.T) {
	ac := NewAhoCorasickFromPairs(pairsOf(p("xyz", 1)))

	var got []int
	ac.Match(seqOf("abcdef"), func(_ int, label int) { got = append(got, label) })
	if len(got) != 0 {
		t.Errorf("Match of unrelated text emitted %v, want nothing", got)
	}
}

func TestMatchOverlapping(t *testing.T) {
	ac := NewAhoCorasickFromPairs(pairsOf(p("aa", 1)))

	var got []int
	ac.Match(seqOf("aaaa"), func(_ int, label int) { got = append(got, label) })

	want := 3 // "aa" occurs at offsets 0, 1, 2 in "aaaa"
	if len(got) != want {
		t.Errorf("Match(aa in aaaa) emitted %d matches, want %d", len(got), want)
	}
}

func TestMatchRetainsTrieQueries(t *testing.T) {
	ac := NewAhoCorasickFromPairs(pairsOf(p("qwerty", 1), p("qwe", 2)))

	if got, ok := ac.Find(seqOf("qwe")); !ok || got != 2 {
		t.Errorf("Find(qwe) on AhoCorasick = (%v, %v), want (2, true)", got, ok)
	}
}
