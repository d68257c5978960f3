// Package fuzzytrie implements multi-pattern approximate string
// matching over a finite alphabet of comparable symbols.
//
// Given a dictionary of labeled sequences, Trie supports exact
// membership (Find), exact prefix enumeration (FindPrefix), and
// weighted-Levenshtein approximate search (FindLevenshtein,
// FindPrefixLevenshtein). AhoCorasick extends Trie with a Match
// operation that finds every dictionary occurrence in a text in a
// single pass.
//
// Both types are built once, from an iterable of (sequence, label)
// pairs, and are immutable and safe for concurrent read-only use
// afterward. Neither supports deletion, persistence, or concurrent
// mutation.
package fuzzytrie
