/*
Package fuzzy implements approximate string matching over Levenshtein edit
distance: a distance kernel, a pair of incremental automata behind one
contract, and two dictionary indexes built on top of them.

# Overview

The package is three pieces of tightly coupled machinery, in dependency
order:

 1. A distance kernel (Distance, Extract) computing codepoint-level edit
    distance between two complete strings.
 2. An incremental automaton (Automaton, State) that fixes one string as a
    pattern and streams the other in one codepoint at a time, maintaining a
    row of the Levenshtein DP matrix. Two implementations share the same
    contract: a scalar row for any pattern length, and a bit-parallel
    Myers/Hyyrö automaton for patterns of at most 64 codepoints.
 3. Two indexes over a static dictionary: Trie, which co-walks the automaton
    down a prefix tree and prunes subtrees it proves can't hold a match, and
    BKTree, which prunes by the triangle inequality over precomputed
    distances instead.

# Distance

Distance returns the edit distance between two strings, counted in
codepoints:

	d := fuzzy.Distance("kitten", "sitting") // 3

Extract finds the closest of several candidates to a query by linear scan:

	distance, index, ok := fuzzy.Extract("kittin", []string{"kitten", "sitting", "kitchen"})
	// distance=1, index=0, ok=true

# Automaton

NewAutomaton builds a reusable automaton over a fixed pattern; State.Step
streams query codepoints through it without mutating the state it was
called on, so a caller can branch many independent continuations from one
shared parent state (the trie traversal below depends on this):

	automaton := fuzzy.NewAutomaton("kitten")
	state := automaton.Start()
	for _, c := range "sitting" {
		state = state.Step(c)
	}
	state.Distance()       // 3
	state.CanMatch(2)       // false

NewAutomaton picks the bit-parallel path whenever the pattern fits in a
64-bit word and falls back to the scalar row otherwise; callers never see
which one they hold.

# Indexes

Trie and BKTree both expose Insert, Get, Contains, Values, and FindOne, and
both are safe for concurrent reads once built (Insert requires exclusive
access):

	dict := fuzzy.NewTrie("kitten", "sitting", "kitchen")
	match, distance, ok := dict.FindOne("kittin", 2)
	// match="kitten", distance=1, ok=true

	bk := fuzzy.NewBKTree("book", "books", "boo", "boon", "cook", "cake")
	match, distance, ok = bk.FindOne("bo", 2)
	// match="boo", distance=1, ok=true

Pass fuzzy.Unbounded as the budget to search without an a priori distance
ceiling. Both indexes return ok=false when nothing in the dictionary falls
within budget of the query, or when the index is empty.

# Concurrency

The package does no I/O and spawns no goroutines; every operation runs to
completion on the calling thread. Built indexes are read-safe for
concurrent FindOne/Get/Contains/Values calls; Insert is not synchronized and
must not race with reads or other inserts.

# Telemetry (optional)

The package supports opt-in counter-only telemetry, disabled by default
(zero overhead) and safe to enable at any point during the program's
lifetime:

	sys, _ := telemetry.NewSystem(telemetry.DefaultConfig())
	fuzzy.EnableTelemetry(sys)

	_ = fuzzy.Distance("hello", "world")
	// Emits foundry_fuzzy_distance_calls_total
	// Emits foundry_fuzzy_bitvector_path_total (pattern fit in 64 bits)
	// Emits foundry_fuzzy_string_length_bucket{bucket=tiny}

Metrics emitted (see telemetry/metrics for the canonical names):
  - distance calls, split by which automaton path served them
  - string length bucket of the longer operand
  - FindOne calls on either index, and how often they found nothing
  - Insert calls on either index, and how often they were no-op duplicates

No histograms are emitted: Distance and FindOne sit on a hot path, and
timing every call would dominate the cost it's measuring.

# Algorithm notes

The scalar automaton is the textbook Wagner-Fischer row recurrence, one
mutable-looking (but non-mutating, for the trie's sake) row update per
codepoint. The bit-parallel automaton packs that row's adjacent-column
deltas into two 64-bit words (VP, VN) per the Myers/Hyyrö formulation, so a
row update costs a handful of word operations instead of O(pattern length)
scalar ones; CanMatch recovers the row minimum by replaying those deltas
from the row-0 baseline (offset) without ever materializing the full row.

References:
  - Levenshtein distance: https://en.wikipedia.org/wiki/Levenshtein_distance
  - Myers, G. (1999), "A fast bit-vector algorithm for approximate string
    matching based on dynamic programming"
  - Burkhard, W. & Keller, R. (1973), "Some approaches to best-match file
    searching"
*/
package fuzzy
