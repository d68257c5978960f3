// Package ranking implements the candidate-ranking heuristic
// cmd/searchranker exposes over HTTP: scanning posted text for
// dictionary terms and combining their per-term hit counts into a
// single document score. This is explicitly the kind of collaborator
// the core matching structure stays ignorant of — it only consumes
// Match.
package ranking

import "fuzzytrie"

// Scorer combines Aho-Corasick term matches against a text into a
// weighted document score.
type Scorer struct {
	automaton *fuzzytrie.AhoCorasick[byte, string]
	weights   map[string]float64
}

// NewScorer builds a Scorer from a term dictionary and its weights.
// Terms without an explicit weight default to 1.0.
func NewScorer(terms []string, weights map[string]float64) *Scorer {
	pairs := make([]fuzzytrie.Pair[byte, string], len(terms))
	for i, term := range terms {
		pairs[i] = fuzzytrie.Pair[byte, string]{Sequence: []byte(term), Label: term}
	}
	return &Scorer{
		automaton: fuzzytrie.NewAhoCorasickFromPairs(pairs),
		weights:   weights,
	}
}

// Score scans text once and returns the sum, over every occurrence of
// every dictionary term, of that term's weight — i.e. a term occurring
// three times contributes three times its weight.
func (s *Scorer) Score(text []byte) float64 {
	var total float64
	s.automaton.Match(text, func(_ int, term string) {
		w, ok := s.weights[term]
		if !ok {
			w = 1.0
		}
		total += w
	})
	return total
}

// Hits scans text once and returns the occurrence count of every
// dictionary term that appears at least once, keyed by term.
func (s *Scorer) Hits(text []byte) map[string]int {
	hits := make(map[string]int)
	s.automaton.Match(text, func(_ int, term string) {
		hits[term]++
	})
	return hits
}
