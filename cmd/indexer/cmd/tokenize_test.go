package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeStandardLowercasesAndSplitsOnWordBoundaries(t *testing.T) {
	terms, err := tokenize("standard", "The Quick-Brown fox_2 jumps!")
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "quick", "brown", "fox_2", "jumps"}, terms)
}

func TestTokenizeWhitespacePreservesCase(t *testing.T) {
	terms, err := tokenize("whitespace", "  Hello   World  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "World"}, terms)
}

func TestTokenizeKeywordReturnsWholeInput(t *testing.T) {
	terms, err := tokenize("keyword", "a whole document")
	require.NoError(t, err)
	assert.Equal(t, []string{"a whole document"}, terms)
}

func TestTokenizeKeywordEmptyInputReturnsNothing(t *testing.T) {
	terms, err := tokenize("keyword", "")
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestTokenizeUnknownModeFails(t *testing.T) {
	_, err := tokenize("nonsense", "text")
	require.Error(t, err)
}
