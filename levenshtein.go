package fuzzytrie

import "math"

// Number is the set of arithmetic types usable as a distance in a
// weighted Levenshtein comparison. Both integer and floating-point
// distance types are supported; penalties summed along a traversal
// must stay within the range of the chosen type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Infinity returns the largest finite-or-not value representable by
// Distance, for use as an effectively unbounded DistanceLimit.
func Infinity[Distance Number]() Distance {
	var zero Distance
	switch any(zero).(type) {
	case int:
		return any(int(math.MaxInt)).(Distance)
	case int8:
		return any(int8(math.MaxInt8)).(Distance)
	case int16:
		return any(int16(math.MaxInt16)).(Distance)
	case int32:
		return any(int32(math.MaxInt32)).(Distance)
	case int64:
		return any(int64(math.MaxInt64)).(Distance)
	case uint:
		return any(uint(math.MaxUint)).(Distance)
	case uint8:
		return any(uint8(math.MaxUint8)).(Distance)
	case uint16:
		return any(uint16(math.MaxUint16)).(Distance)
	case uint32:
		return any(uint32(math.MaxUint32)).(Distance)
	case uint64:
		return any(uint64(math.MaxUint64)).(Distance)
	case float32:
		return any(float32(math.MaxFloat32)).(Distance)
	case float64:
		return any(float64(math.MaxFloat64)).(Distance)
	}
	return zero
}

// LevenshteinParams configures a fuzzy search: the distance beyond
// which candidates are discarded, and the per-symbol costs of the two
// edit operations. Construct one with DefaultLevenshtein or
// NewLevenshteinParams rather than the struct literal, since the cost
// functions have no useful zero value.
type LevenshteinParams[Symbol comparable, Distance Number] struct {
	// DistanceLimit is the threshold beyond which a candidate is
	// discarded from both find and find-prefix results.
	DistanceLimit Distance

	// InsertionOrDeletionCost prices inserting symbol into, or
	// deleting it from, whichever side of the comparison it is
	// missing from. Insertion and deletion share one function because
	// the distance is symmetric.
	InsertionOrDeletionCost func(symbol Symbol) Distance

	// ReplacementCost prices transforming a into b. It must return
	// the zero value when a and b are equal under whatever equality
	// the caller cares about.
	ReplacementCost func(a, b Symbol) Distance
}

// NewLevenshteinParams builds a LevenshteinParams with explicit cost
// functions.
func NewLevenshteinParams[Symbol comparable, Distance Number](
	limit Distance,
	insertionOrDeletion func(Symbol) Distance,
	replacement func(a, b Symbol) Distance,
) LevenshteinParams[Symbol, Distance] {
	return LevenshteinParams[Symbol, Distance]{
		DistanceLimit:           limit,
		InsertionOrDeletionCost: insertionOrDeletion,
		ReplacementCost:         replacement,
	}
}

// DefaultLevenshtein builds a LevenshteinParams with the given limit
// and unit costs: every insertion, deletion, and substitution costs 1,
// and substituting a symbol for itself costs 0.
func DefaultLevenshtein[Symbol comparable, Distance Number](limit Distance) LevenshteinParams[Symbol, Distance] {
	return NewLevenshteinParams[Symbol, Distance](
		limit,
		func(Symbol) Distance { return Distance(1) },
		func(a, b Symbol) Distance {
			if a == b {
				return Distance(0)
			}
			return Distance(1)
		},
	)
}

// DefaultLevenshteinUnbounded is DefaultLevenshtein with the distance
// limit set to Infinity, i.e. unit costs and no pruning by distance.
func DefaultLevenshteinUnbounded[Symbol comparable, Distance Number]() LevenshteinParams[Symbol, Distance] {
	return DefaultLevenshtein[Symbol, Distance](Infinity[Distance]())
}

func min3[Distance Number](a, b, c Distance) Distance {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
