// Package fuzzy implements approximate string matching over Levenshtein
// edit distance: a distance kernel, an incremental automaton (scalar and
// bit-parallel variants behind one contract), and a trie index built on top
// of it. A separate BK-tree index (bktree.go) provides a second approximate
// lookup strategy based on triangle-inequality pruning instead of automaton
// co-walking.
package fuzzy

// State is one row of the Levenshtein dynamic-programming matrix for a fixed
// pattern, evolved one query codepoint at a time. Step never mutates the
// receiver: callers (in particular the trie, which branches a shared parent
// state into many children) rely on being able to hold a state and derive
// several independent successors from it.
type State interface {
	// Step consumes one query codepoint and returns the resulting state.
	Step(c rune) State

	// Distance returns the edit distance between the pattern and the query
	// consumed so far.
	Distance() int

	// CanMatch reports whether some continuation of the query could still
	// bring the distance to the pattern down to maxEdits or below.
	CanMatch(maxEdits int) bool
}

// Automaton is a fixed pattern ready to be driven by a stream of query
// codepoints. Two implementations exist (scalar and bit-vector); callers
// that only need the distance/can-match contract are written against this
// interface and never need to know which one they hold.
type Automaton interface {
	// Start returns the initial state: the pattern consumed against an
	// empty query.
	Start() State
}

// NewAutomaton builds an Automaton over pattern, choosing the bit-parallel
// Myers/Hyyrö implementation when pattern fits in a 64-bit word and falling
// back to the scalar row otherwise. Callers should always go through this
// constructor rather than instantiating a variant directly, so that pattern
// length is the only thing that decides which path runs.
func NewAutomaton(pattern string) Automaton {
	runes := []rune(pattern)
	if len(runes) <= 64 {
		return newBitVectorAutomaton(runes)
	}
	return newScalarAutomaton(runes)
}

// isBitVectorPattern reports which path NewAutomaton(pattern) would select,
// for telemetry tagging without constructing the automaton twice.
func isBitVectorPattern(pattern string) bool {
	return len([]rune(pattern)) <= 64
}

// scalarAutomaton holds the immutable pattern; every state it produces
// borrows this slice and must not outlive it.
type scalarAutomaton struct {
	pattern []rune
}

func newScalarAutomaton(pattern []rune) *scalarAutomaton {
	return &scalarAutomaton{pattern: pattern}
}

func (a *scalarAutomaton) Start() State {
	row := make([]int, len(a.pattern)+1)
	for i := range row {
		row[i] = i
	}
	return scalarState{pattern: a.pattern, row: row}
}

// scalarState is the row-based implementation of State: row[i] is the
// distance between the query consumed so far and the length-i prefix of
// the pattern.
type scalarState struct {
	pattern []rune
	row     []int
}

func (s scalarState) Step(c rune) State {
	next := make([]int, len(s.row))
	next[0] = s.row[0] + 1
	for i := 1; i < len(next); i++ {
		sub := s.row[i-1]
		if s.pattern[i-1] != c {
			sub++
		}
		del := s.row[i] + 1
		add := next[i-1] + 1
		next[i] = minInt(sub, minInt(del, add))
	}
	return scalarState{pattern: s.pattern, row: next}
}

func (s scalarState) Distance() int {
	return s.row[len(s.row)-1]
}

func (s scalarState) CanMatch(maxEdits int) bool {
	min := s.row[0]
	for _, v := range s.row[1:] {
		if v < min {
			min = v
		}
	}
	return min <= maxEdits
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
