package fuzzytrie

import (
	"cmp"
	"iter"
)

// noLink marks the absence of an accept-suffix-link: no proper suffix
// of this state's path is itself accepting.
const noLink State = ^State(0)

// AhoCorasick is a Trie augmented with suffix links, letting Match
// scan a whole text for every occurrence of every pattern in one pass
// instead of re-searching from the root at each position.
//
// Like Trie, an AhoCorasick is built once and is safe for concurrent
// read-only use afterward.
type AhoCorasick[Symbol comparable, Label cmp.Ordered] struct {
	*Trie[Symbol, Label]

	// Parallel to Trie's own per-state arrays, indexed by State.
	suffixLink       []State
	acceptSuffixLink []State
}

// NewAhoCorasick builds an AhoCorasick from an iterable of (sequence,
// label) pairs, with the same first-wins duplicate handling as New.
func NewAhoCorasick[Symbol comparable, Label cmp.Ordered](pairs iter.Seq2[[]Symbol, Label]) *AhoCorasick[Symbol, Label] {
	ac := &AhoCorasick[Symbol, Label]{Trie: newEmptyTrie[Symbol, Label]()}
	ac.Trie.buildFrom(pairs)
	ac.buildLinks()
	return ac
}

// NewAhoCorasickFromPairs builds an AhoCorasick from a plain slice of
// pairs.
func NewAhoCorasickFromPairs[Symbol comparable, Label cmp.Ordered](pairs []Pair[Symbol, Label]) *AhoCorasick[Symbol, Label] {
	return NewAhoCorasick[Symbol, Label](func(yield func([]Symbol, Label) bool) {
		for _, p := range pairs {
			if !yield(p.Sequence, p.Label) {
				return
			}
		}
	})
}

// buildLinks computes suffixLink and acceptSuffixLink for every state
// by breadth-first traversal from the root, so that a state's parent
// always has its own links computed before the state does.
func (ac *AhoCorasick[Symbol, Label]) buildLinks() {
	size := ac.fsm.Size()
	ac.suffixLink = make([]State, size)
	ac.acceptSuffixLink = make([]State, size)
	ac.acceptSuffixLink[Root] = noLink

	queue := []State{Root}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		ac.fsm.VisitTransitions(s, func(symbol Symbol, child State) {
			if s == Root {
				ac.suffixLink[child] = Root
			} else {
				ac.suffixLink[child] = ac.acNext(ac.suffixLink[s], symbol)
			}

			link := ac.suffixLink[child]
			if ac.attributes[link].isAccept {
				ac.acceptSuffixLink[child] = link
			} else {
				ac.acceptSuffixLink[child] = ac.acceptSuffixLink[link]
			}

			queue = append(queue, child)
		})
	}
}

// acNext is the automaton's failure-aware transition function: the
// state reached from state on symbol, falling back along suffix links
// until a transition exists or the root is reached.
func (ac *AhoCorasick[Symbol, Label]) acNext(state State, symbol Symbol) State {
	cur := state
	for {
		if dest, ok := ac.fsm.Next(cur, symbol); ok {
			return dest
		}
		if cur == Root {
			return Root
		}
		cur = ac.suffixLink[cur]
	}
}

// Match scans text once and calls visit for every (position, label)
// where position is the index one past the end of an occurrence of
// the pattern carrying label. A position with several matching
// patterns of different lengths calls visit once per pattern, longest
// first.
func (ac *AhoCorasick[Symbol, Label]) Match(text []Symbol, visit func(position int, label Label)) {
	state := Root
	for i, symbol := range text {
		state = ac.acNext(state, symbol)
		ac.collectMatching(state, i+1, visit)
	}
}

func (ac *AhoCorasick[Symbol, Label]) collectMatching(state State, position int, visit func(int, Label)) {
	if idx := ac.acceptValueIndex[state]; idx >= 0 {
		visit(position, ac.values[idx])
	}
	for link := ac.acceptSuffixLink[state]; link != noLink; link = ac.acceptSuffixLink[link] {
		visit(position, ac.values[ac.acceptValueIndex[link]])
	}
}
