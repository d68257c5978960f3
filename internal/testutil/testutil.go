// Package testutil provides shared helpers for fuzzytrie's tests and
// fuzz targets: a brute-force reference implementation of weighted
// Levenshtein distance to check the trie's incremental DP against, and
// generators for random dictionaries and queries over a small alphabet.
package testutil

import (
	"math/rand"
	"testing"
)

// BruteForceLevenshtein computes the weighted edit distance between a
// and b by the textbook O(len(a)*len(b)) dynamic-programming table,
// independent of any trie structure. Tests use it as an oracle against
// FindLevenshtein's incremental row computation.
func BruteForceLevenshtein[Symbol comparable](
	a, b []Symbol,
	insertionOrDeletion func(Symbol) int,
	replacement func(a, b Symbol) int,
) int {
	rows := make([][]int, len(a)+1)
	for i := range rows {
		rows[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		rows[i][0] = rows[i-1][0] + insertionOrDeletion(a[i-1])
	}
	for j := 1; j <= len(b); j++ {
		rows[0][j] = rows[0][j-1] + insertionOrDeletion(b[j-1])
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			substitution := rows[i-1][j-1] + replacement(a[i-1], b[j-1])
			deletion := rows[i-1][j] + insertionOrDeletion(a[i-1])
			insertion := rows[i][j-1] + insertionOrDeletion(b[j-1])
			m := substitution
			if deletion < m {
				m = deletion
			}
			if insertion < m {
				m = insertion
			}
			rows[i][j] = m
		}
	}
	return rows[len(a)][len(b)]
}

// UnitCost is the insertion/deletion cost function used by
// BruteForceLevenshtein's callers when they want the default unit
// metric rather than a custom one; UnitReplacement is its substitution
// counterpart.
func UnitCost(byte) int { return 1 }

// UnitReplacement returns 0 for equal symbols and 1 otherwise.
func UnitReplacement(a, b byte) int {
	if a == b {
		return 0
	}
	return 1
}

// RandomWord returns a random byte string of length n drawn from
// alphabet.
func RandomWord(rng *rand.Rand, alphabet string, n int) []byte {
	w := make([]byte, n)
	for i := range w {
		w[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return w
}

// RandomDictionary returns count random words of length 1..maxLen over
// alphabet, in generation order. The same word can appear more than
// once.
func RandomDictionary(rng *rand.Rand, alphabet string, count, maxLen int) []string {
	words := make([]string, count)
	for i := range words {
		n := 1 + rng.Intn(maxLen)
		words[i] = string(RandomWord(rng, alphabet, n))
	}
	return words
}

// NewRand returns a deterministic random source seeded from t's name,
// so a failing property-based test reports a reproducible seed.
func NewRand(t *testing.T) *rand.Rand {
	t.Helper()
	var seed int64
	for _, c := range t.Name() {
		seed = seed*31 + int64(c)
	}
	return rand.New(rand.NewSource(seed))
}
