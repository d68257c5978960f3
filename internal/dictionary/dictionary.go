// Package dictionary parses the plain-text dictionary formats the CLI
// collaborators share: one "label\tsequence" pair per line for indexer
// and spellsuggest (Load), and one "term\tweight" pair per line for
// searchranker (LoadWeighted).
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMissingSeparator is returned when a non-blank line has no tab
// separating its label from its sequence.
var ErrMissingSeparator = errors.New("dictionary line has no tab separator")

// ErrInvalidWeight is returned by LoadWeighted when a line's weight
// column does not parse as a float.
var ErrInvalidWeight = errors.New("dictionary weight column is not a number")

// Entry is one labeled pattern read from a dictionary file.
type Entry struct {
	Label    string
	Sequence []byte
}

// Load parses r line by line into Entries. Blank lines (after
// trimming surrounding whitespace) are skipped. Every other line must
// contain at least one tab; everything before the first tab is the
// label, everything after is the sequence.
func Load(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		label, sequence, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingSeparator)
		}
		entries = append(entries, Entry{Label: label, Sequence: []byte(sequence)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return entries, nil
}

// LoadWeighted parses r as "term\tweight" lines into a term-to-weight
// map, the format cmd/searchranker loads its scoring dictionary from.
func LoadWeighted(r io.Reader) (map[string]float64, error) {
	weights := make(map[string]float64)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		term, weightStr, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingSeparator)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrInvalidWeight, weightStr)
		}
		weights[term] = weight
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return weights, nil
}

// FromTerms builds Entries out of plain terms (no explicit label
// column), using each term as its own label — the shape cmd/indexer's
// --from-text mode produces after tokenizing a text corpus.
func FromTerms(terms []string) []Entry {
	entries := make([]Entry, len(terms))
	for i, term := range terms {
		entries[i] = Entry{Label: term, Sequence: []byte(term)}
	}
	return entries
}
