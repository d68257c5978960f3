package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorerScoresWeightedOccurrences(t *testing.T) {
	s := NewScorer([]string{"cat", "dog"}, map[string]float64{"cat": 2, "dog": 1})

	score := s.Score([]byte("the cat sat near the dog and another cat"))
	assert.InDelta(t, 5.0, score, 0.0001) // two "cat" hits (2*2) + one "dog" hit (1)
}

func TestScorerDefaultsUnweightedTermsToOne(t *testing.T) {
	s := NewScorer([]string{"fox"}, map[string]float64{})

	score := s.Score([]byte("a quick fox jumps"))
	assert.InDelta(t, 1.0, score, 0.0001)
}

func TestScorerHitsCountsPerTerm(t *testing.T) {
	s := NewScorer([]string{"aa"}, map[string]float64{"aa": 1})

	hits := s.Hits([]byte("aaaa"))
	assert.Equal(t, 3, hits["aa"])
}

func TestScorerNoOccurrences(t *testing.T) {
	s := NewScorer([]string{"xyz"}, map[string]float64{"xyz": 5})

	score := s.Score([]byte("nothing matches here"))
	assert.InDelta(t, 0.0, score, 0.0001)
}
