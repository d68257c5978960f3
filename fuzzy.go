package fuzzytrie

import (
	"cmp"
	"slices"
)

// closeFrame is one entry on the explicit traversal stack
// visitCloseStates drives: the trie state it refers to and the dynamic
// programming row of edit distances between query's every prefix and
// the trie prefix state represents.
type closeFrame[Distance Number] struct {
	state State
	row   []Distance
}

// fillInitialRow builds the row for the root state: the cost of
// turning the empty trie prefix into each prefix of query by pure
// insertion.
func fillInitialRow[Symbol comparable, Distance Number](query []Symbol, params LevenshteinParams[Symbol, Distance]) []Distance {
	row := make([]Distance, len(query)+1)
	for j := 1; j <= len(query); j++ {
		row[j] = row[j-1] + params.InsertionOrDeletionCost(query[j-1])
	}
	return row
}

// fillRow extends prevRow (the row of a trie state) across one more
// trie transition labeled symbol, following the standard weighted
// Levenshtein recurrence: substitution, deletion of symbol, or
// insertion of the next query symbol, whichever is cheapest.
func fillRow[Symbol comparable, Distance Number](symbol Symbol, prevRow []Distance, query []Symbol, params LevenshteinParams[Symbol, Distance]) []Distance {
	row := make([]Distance, len(query)+1)
	row[0] = prevRow[0] + params.InsertionOrDeletionCost(symbol)
	for j := 1; j <= len(query); j++ {
		substitution := prevRow[j-1] + params.ReplacementCost(query[j-1], symbol)
		deletion := prevRow[j] + params.InsertionOrDeletionCost(symbol)
		insertion := row[j-1] + params.InsertionOrDeletionCost(query[j-1])
		row[j] = min3(substitution, deletion, insertion)
	}
	return row
}

func rowMin[Distance Number](row []Distance) Distance {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// visitCloseStates walks every trie state reachable within
// params.DistanceLimit of query, via depth-first traversal with an
// explicit stack, pruning any branch whose row can no longer produce
// a value within the limit. visit is called once per close state with
// the final-column distance (distance between query and the full trie
// prefix that state represents).
func visitCloseStates[Symbol comparable, Label cmp.Ordered, Distance Number](
	t *Trie[Symbol, Label],
	query []Symbol,
	params LevenshteinParams[Symbol, Distance],
	visit func(state State, distance Distance),
) {
	stack := []closeFrame[Distance]{{state: t.fsm.Root(), row: fillInitialRow(query, params)}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(frame.state, frame.row[len(frame.row)-1])

		t.fsm.VisitTransitions(frame.state, func(symbol Symbol, dest State) {
			childRow := fillRow(symbol, frame.row, query, params)
			if rowMin(childRow) <= params.DistanceLimit {
				stack = append(stack, closeFrame[Distance]{state: dest, row: childRow})
			}
		})
	}
}

// FindLevenshtein writes to out every label in t whose sequence is
// within params.DistanceLimit of query under params' costs, each
// paired with the distance at which it was found.
func FindLevenshtein[Symbol comparable, Label cmp.Ordered, Distance Number](
	t *Trie[Symbol, Label],
	query []Symbol,
	params LevenshteinParams[Symbol, Distance],
	out Sink[Match[Label, Distance]],
) {
	visitCloseStates(t, query, params, func(state State, distance Distance) {
		if distance > params.DistanceLimit {
			return
		}
		idx := t.acceptValueIndex[state]
		if idx < 0 {
			return
		}
		out.Put(Match[Label, Distance]{Label: t.values[idx], Distance: distance})
	})
}

// FindLevenshteinDefault is FindLevenshtein with unit insertion,
// deletion, and substitution costs.
func FindLevenshteinDefault[Symbol comparable, Label cmp.Ordered, Distance Number](
	t *Trie[Symbol, Label],
	query []Symbol,
	limit Distance,
	out Sink[Match[Label, Distance]],
) {
	FindLevenshtein(t, query, DefaultLevenshtein[Symbol, Distance](limit), out)
}

// FindLevenshteinUnbounded is FindLevenshtein with unit costs and no
// distance limit: every label in t is reported, paired with its exact
// edit distance from query.
func FindLevenshteinUnbounded[Symbol comparable, Label cmp.Ordered, Distance Number](
	t *Trie[Symbol, Label],
	query []Symbol,
	out Sink[Match[Label, Distance]],
) {
	FindLevenshtein(t, query, DefaultLevenshteinUnbounded[Symbol, Distance](), out)
}

// FindPrefixLevenshtein writes to out the label of every sequence in t
// that has some prefix within params.DistanceLimit of query, each
// paired with the distance at which its containing state was reached.
// If a label is reachable through more than one close state, only the
// minimum of its candidate distances survives: candidates are sorted
// by (label, distance) before deduplication, so the first entry kept
// for a label is its smallest distance.
func FindPrefixLevenshtein[Symbol comparable, Label cmp.Ordered, Distance Number](
	t *Trie[Symbol, Label],
	query []Symbol,
	params LevenshteinParams[Symbol, Distance],
	out Sink[Match[Label, Distance]],
) {
	var candidates []Match[Label, Distance]
	visitCloseStates(t, query, params, func(state State, distance Distance) {
		if distance > params.DistanceLimit {
			return
		}
		for _, idx := range t.reachable[state] {
			candidates = append(candidates, Match[Label, Distance]{Label: t.values[idx], Distance: distance})
		}
	})

	slices.SortStableFunc(candidates, func(a, b Match[Label, Distance]) int {
		if c := cmp.Compare(a.Label, b.Label); c != 0 {
			return c
		}
		return cmp.Compare(a.Distance, b.Distance)
	})

	for i, c := range candidates {
		if i > 0 && candidates[i-1].Label == c.Label {
			continue
		}
		out.Put(c)
	}
}

// FindPrefixLevenshteinDefault is FindPrefixLevenshtein with unit
// insertion, deletion, and substitution costs.
func FindPrefixLevenshteinDefault[Symbol comparable, Label cmp.Ordered, Distance Number](
	t *Trie[Symbol, Label],
	query []Symbol,
	limit Distance,
	out Sink[Match[Label, Distance]],
) {
	FindPrefixLevenshtein(t, query, DefaultLevenshtein[Symbol, Distance](limit), out)
}

// FindPrefixLevenshteinUnbounded is FindPrefixLevenshtein with unit
// costs and no distance limit.
func FindPrefixLevenshteinUnbounded[Symbol comparable, Label cmp.Ordered, Distance Number](
	t *Trie[Symbol, Label],
	query []Symbol,
	out Sink[Match[Label, Distance]],
) {
	FindPrefixLevenshtein(t, query, DefaultLevenshteinUnbounded[Symbol, Distance](), out)
}
