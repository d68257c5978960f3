package fuzzytrie

import (
	"slices"
	"sort"
	"testing"
)

func pairsOf(entries ...Pair[byte, int]) []Pair[byte, int] {
	return entries
}

func seqOf(s string) []byte {
	return []byte(s)
}

func p(sequence string, label int) Pair[byte, int] {
	return Pair[byte, int]{Sequence: seqOf(sequence), Label: label}
}

func TestEmptyTrie(t *testing.T) {
	tr := NewFromPairs[byte, int](nil)

	if !tr.Empty() {
		t.Error("fresh trie should be empty")
	}
	if tr.Size() != 0 {
		t.Errorf("Size() = %d, want 0", tr.Size())
	}
	if _, ok := tr.Find(seqOf("anything")); ok {
		t.Error("Find on empty trie should fail")
	}

	ac := NewAhoCorasickFromPairs[byte, int](nil)
	var matched []int
	ac.Match(seqOf("x"), func(_ int, label int) { matched = append(matched, label) })
	if len(matched) != 0 {
		t.Errorf("Match on empty automaton emitted %v, want nothing", matched)
	}
}

func TestExactFind(t *testing.T) {
	tr := NewFromPairs(pairsOf(
		p("qwerty", 1),
		p("asdfgh", 2),
		p("qwe", 3),
		p("rty", 4),
	))

	if got, ok := tr.Find(seqOf("qwerty")); !ok || got != 1 {
		t.Errorf("Find(qwerty) = (%v, %v), want (1, true)", got, ok)
	}
	if got, ok := tr.Find(seqOf("qwe")); !ok || got != 3 {
		t.Errorf("Find(qwe) = (%v, %v), want (3, true)", got, ok)
	}
	if _, ok := tr.Find(seqOf("qwert")); ok {
		t.Error("Find(qwert) should fail: no such pattern")
	}
}

func TestFirstWinsDuplicates(t *testing.T) {
	tr := NewFromPairs(pairsOf(
		p("qwerty", 11),
		p("qwerty", 22),
		p("qwe", 33),
		p("qwe", 44),
	))

	if tr.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tr.Size())
	}
	if got, _ := tr.Find(seqOf("qwerty")); got != 11 {
		t.Errorf("Find(qwerty) = %v, want 11 (first writer wins)", got)
	}
	if got, _ := tr.Find(seqOf("qwe")); got != 33 {
		t.Errorf("Find(qwe) = %v, want 33 (first writer wins)", got)
	}
}

func TestFindPrefix(t *testing.T) {
	tr := NewFromPairs(pairsOf(
		p("ab", 1),
		p("abc", 2),
		p("abd", 3),
		p("b", 4),
	))

	var sink SliceSink[int]
	tr.FindPrefix(seqOf("ab"), &sink)
	sort.Ints(sink.Items)
	if !slices.Equal(sink.Items, []int{1, 2, 3}) {
		t.Errorf("FindPrefix(ab) = %v, want [1 2 3]", sink.Items)
	}

	var none SliceSink[int]
	tr.FindPrefix(seqOf("xyz"), &none)
	if len(none.Items) != 0 {
		t.Errorf("FindPrefix(xyz) = %v, want nothing", none.Items)
	}
}

func TestValuesInsertionOrder(t *testing.T) {
	tr := NewFromPairs(pairsOf(p("c", 1), p("a", 2), p("b", 3)))
	if !slices.Equal(tr.Values(), []int{1, 2, 3}) {
		t.Errorf("Values() = %v, want [1 2 3] (first-occurrence order)", tr.Values())
	}
}

func TestFindEmptySequence(t *testing.T) {
	tr := NewFromPairs(pairsOf(p("", 1), p("a", 2)))
	if got, ok := tr.Find(seqOf("")); !ok || got != 1 {
		t.Errorf("Find(\"\") = (%v, %v), want (1, true)", got, ok)
	}
}
