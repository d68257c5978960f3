package fuzzytrie

import (
	"cmp"
	"iter"
)

// attribute holds the per-state metadata a Trie needs beyond the bare
// FSM: whether a state is accepting. Aho-Corasick adds suffix links on
// top of this, kept alongside rather than inside this struct so the
// trie layer stays ignorant of the link layer.
type attribute struct {
	isAccept bool
}

// Trie is a prefix tree over sequences of Symbol, layered on an FSM,
// where every accepting state carries a Label. It supports exact
// membership, exact prefix enumeration, and (via the free functions
// FindLevenshtein and FindPrefixLevenshtein) approximate search bounded
// by a weighted Levenshtein distance.
//
// A Trie is built once and never mutated afterward; all of its methods
// are read-only and safe to call concurrently from multiple goroutines.
type Trie[Symbol comparable, Label cmp.Ordered] struct {
	fsm *FSM[Symbol]

	// Parallel arrays indexed by State; all three always have the
	// same length as fsm.Size().
	attributes       []attribute
	reachable        [][]int
	acceptValueIndex []int

	values []Label
}

// newEmptyTrie returns a Trie containing only the root, unlabeled.
func newEmptyTrie[Symbol comparable, Label cmp.Ordered]() *Trie[Symbol, Label] {
	return &Trie[Symbol, Label]{
		fsm:              NewFSM[Symbol](),
		attributes:       []attribute{{}},
		reachable:        [][]int{nil},
		acceptValueIndex: []int{-1},
	}
}

// New builds a Trie from an iterable of (sequence, label) pairs. If
// the same sequence appears more than once, the label of its first
// occurrence wins and later occurrences are ignored.
func New[Symbol comparable, Label cmp.Ordered](pairs iter.Seq2[[]Symbol, Label]) *Trie[Symbol, Label] {
	t := newEmptyTrie[Symbol, Label]()
	t.buildFrom(pairs)
	return t
}

// Pair is a labeled sequence, the element NewFromPairs builds a Trie
// or AhoCorasick from.
type Pair[Symbol comparable, Label any] struct {
	Sequence []Symbol
	Label    Label
}

// NewFromPairs builds a Trie from a plain slice of pairs, for callers
// who would rather not construct an iter.Seq2 by hand.
func NewFromPairs[Symbol comparable, Label cmp.Ordered](pairs []Pair[Symbol, Label]) *Trie[Symbol, Label] {
	return New[Symbol, Label](func(yield func([]Symbol, Label) bool) {
		for _, p := range pairs {
			if !yield(p.Sequence, p.Label) {
				return
			}
		}
	})
}

func (t *Trie[Symbol, Label]) buildFrom(pairs iter.Seq2[[]Symbol, Label]) {
	pairs(func(sequence []Symbol, label Label) bool {
		state := t.insert(sequence)
		idx, created := t.attachValue(state, label)
		if created {
			t.visitSourcesOfPath(sequence, func(s State) {
				t.attachReachable(s, idx)
			})
			t.attachReachable(state, idx)
		}
		return true
	})
}

// insert grows the trie so that sequence is represented, reusing
// whatever prefix of it already has transitions, and returns the state
// it terminates in.
func (t *Trie[Symbol, Label]) insert(sequence []Symbol) State {
	state, pos := t.traverse(t.fsm.Root(), sequence)
	for _, symbol := range sequence[pos:] {
		next, created := t.fsm.AddTransition(state, symbol)
		if created {
			t.attributes = append(t.attributes, attribute{})
			t.reachable = append(t.reachable, nil)
			t.acceptValueIndex = append(t.acceptValueIndex, -1)
		}
		state = next
	}
	return state
}

// traverse follows transitions from state along sequence as far as
// they exist, returning the state reached and the number of symbols
// consumed. If the full sequence is consumed, the returned count
// equals len(sequence).
func (t *Trie[Symbol, Label]) traverse(state State, sequence []Symbol) (State, int) {
	i := 0
	for i < len(sequence) {
		next, ok := t.fsm.Next(state, sequence[i])
		if !ok {
			break
		}
		state = next
		i++
	}
	return state, i
}

// visitSourcesOfPath calls visit for every state on the path from the
// root to (but not including) the state sequence terminates in.
func (t *Trie[Symbol, Label]) visitSourcesOfPath(sequence []Symbol, visit func(State)) {
	state := t.fsm.Root()
	for _, symbol := range sequence {
		visit(state)
		next, _ := t.fsm.Next(state, symbol)
		state = next
	}
}

// attachValue labels state with value, unless it is already labeled,
// in which case the earlier label is kept. Returns the value's index
// into the value table and whether a new label was attached.
func (t *Trie[Symbol, Label]) attachValue(state State, value Label) (int, bool) {
	if idx := t.acceptValueIndex[state]; idx >= 0 {
		return idx, false
	}
	idx := len(t.values)
	t.values = append(t.values, value)
	t.acceptValueIndex[state] = idx
	t.attributes[state].isAccept = true
	return idx, true
}

func (t *Trie[Symbol, Label]) attachReachable(state State, valueIndex int) {
	t.reachable[state] = append(t.reachable[state], valueIndex)
}

// Size returns the number of distinct labeled sequences in the trie.
func (t *Trie[Symbol, Label]) Size() int {
	return len(t.values)
}

// Empty reports whether the trie holds no labeled sequences.
func (t *Trie[Symbol, Label]) Empty() bool {
	return len(t.values) == 0
}

// Values returns the label table in first-occurrence insertion order.
// Callers must not mutate the returned slice.
func (t *Trie[Symbol, Label]) Values() []Label {
	return t.values
}

// Find looks up sequence and returns its label and true if the trie
// accepts it, or the zero Label and false otherwise.
func (t *Trie[Symbol, Label]) Find(sequence []Symbol) (Label, bool) {
	state, pos := t.traverse(t.fsm.Root(), sequence)
	if pos == len(sequence) {
		if idx := t.acceptValueIndex[state]; idx >= 0 {
			return t.values[idx], true
		}
	}
	var zero Label
	return zero, false
}

// FindPrefix writes to out the label of every sequence in the trie
// that has prefix as a prefix (including equality). If no sequence in
// the trie starts with prefix, out receives nothing.
func (t *Trie[Symbol, Label]) FindPrefix(prefix []Symbol, out Sink[Label]) {
	state, pos := t.traverse(t.fsm.Root(), prefix)
	if pos != len(prefix) {
		return
	}
	t.collectReachable(state, out)
}

func (t *Trie[Symbol, Label]) collectReachable(state State, out Sink[Label]) {
	for _, idx := range t.reachable[state] {
		out.Put(t.values[idx])
	}
}
