package fuzzy

// Distance returns the Levenshtein edit distance between a and b, counted in
// codepoints (not bytes): the minimum number of single-codepoint insertions,
// deletions, or substitutions needed to turn a into b.
//
// Equal strings short-circuit to 0 without building an automaton. Otherwise
// the shorter-or-at-most-64-codepoint string is chosen as the automaton's
// pattern (so the bit-parallel path runs whenever either string fits in a
// machine word) and the other is streamed through it one codepoint at a
// time.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	pattern, text := ra, rb
	if (len(ra) < len(rb) || len(ra) > 64) && len(rb) <= 64 {
		pattern, text = rb, ra
	}

	bitVector := len(pattern) <= 64
	var automaton Automaton
	if bitVector {
		automaton = newBitVectorAutomaton(pattern)
	} else {
		automaton = newScalarAutomaton(pattern)
	}

	state := automaton.Start()
	for _, c := range text {
		state = state.Step(c)
	}

	emitDistanceCounters(a, b, bitVector)
	return state.Distance()
}

// Extract performs a linear scan over candidates and returns the distance
// and index of the one closest to query under Distance. Ties are broken by
// first occurrence. ok is false iff candidates is empty.
func Extract(query string, candidates []string) (distance int, index int, ok bool) {
	if len(candidates) == 0 {
		return 0, 0, false
	}

	bestIndex := 0
	bestDistance := Distance(query, candidates[0])
	for i := 1; i < len(candidates); i++ {
		d := Distance(query, candidates[i])
		if d < bestDistance {
			bestDistance = d
			bestIndex = i
		}
	}

	return bestDistance, bestIndex, true
}
