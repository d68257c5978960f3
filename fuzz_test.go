package fuzzytrie

import "testing"

// FuzzTrieRoundTrip checks that every inserted sequence is found again
// with its originally attached label, for arbitrary byte sequences.
func FuzzTrieRoundTrip(f *testing.F) {
	f.Add("hello", 1)
	f.Add("", 2)
	f.Add("aaaa", 3)
	f.Add("qwerty", 4)

	f.Fuzz(func(t *testing.T, sequence string, label int) {
		tr := NewFromPairs(pairsOf(Pair[byte, int]{Sequence: []byte(sequence), Label: label}))

		got, ok := tr.Find([]byte(sequence))
		if !ok {
			t.Fatalf("Find(%q) failed after inserting it", sequence)
		}
		if got != label {
			t.Fatalf("Find(%q) = %d, want %d", sequence, got, label)
		}
	})
}

// FuzzAhoCorasickNoPanic checks that construction and Match never
// panic over arbitrary patterns and text, and that every emitted label
// corresponds to a real occurrence.
func FuzzAhoCorasickNoPanic(f *testing.F) {
	f.Add("a", "aaaa")
	f.Add("ab", "ababab")
	f.Add("", "anything")
	f.Add("xyz", "abcxyzabc")

	f.Fuzz(func(t *testing.T, pattern, text string) {
		if len(pattern) > 64 || len(text) > 256 {
			return
		}
		ac := NewAhoCorasickFromPairs(pairsOf(p2(pattern, 1)))

		var occurrences int
		ac.Match([]byte(text), func(_ int, _ int) { occurrences++ })

		want := countOccurrences(text, pattern)
		if pattern != "" && occurrences != want {
			t.Fatalf("Match(%q) on %q emitted %d occurrences, want %d", pattern, text, occurrences, want)
		}
	})
}

func p2(sequence string, label int) Pair[byte, int] {
	return Pair[byte, int]{Sequence: []byte(sequence), Label: label}
}

func countOccurrences(text, pattern string) int {
	if pattern == "" {
		return 0
	}
	count := 0
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			count++
		}
	}
	return count
}
