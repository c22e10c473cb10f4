package fuzzy

import (
	"github.com/fulmenhq/matchkit/telemetry"
	"github.com/fulmenhq/matchkit/telemetry/metrics"
)

// telemetrySystem holds the optional telemetry system for fuzzy operations.
// nil if telemetry is disabled (default).
var telemetrySystem *telemetry.System

// EnableTelemetry enables counter-only telemetry for distance, automaton, and
// index operations in this package.
//
// Counters track:
//   - Distance calls and which automaton path served them (bit-vector vs scalar)
//   - String length distribution (bucketed)
//   - FindOne calls and the no-match rate
//   - Index inserts and duplicate-word inserts
//
// Does NOT include operation-duration histograms: distance and index lookups
// sit on a hot path and a timer around every call would dominate the cost it
// measures.
//
// Example usage:
//
//	sys, _ := telemetry.NewSystem(telemetry.DefaultConfig())
//	fuzzy.EnableTelemetry(sys)
//	d := fuzzy.Distance("kitten", "sitting")
func EnableTelemetry(sys *telemetry.System) {
	telemetrySystem = sys
}

// DisableTelemetry disables telemetry for fuzzy operations.
func DisableTelemetry() {
	telemetrySystem = nil
}

func isTelemetryEnabled() bool {
	return telemetrySystem != nil
}

// emitCounter emits a counter metric if telemetry is enabled. Safe to call
// even when telemetry is disabled (no-op); errors are swallowed since a
// telemetry hiccup must never fail a distance calculation or a lookup.
func emitCounter(name string, value float64, tags map[string]string) {
	if !isTelemetryEnabled() {
		return
	}
	_ = telemetrySystem.Counter(name, value, tags)
}

// lengthBucket categorizes codepoint length for performance analysis.
func lengthBucket(s string) string {
	n := len([]rune(s))
	switch {
	case n == 0:
		return "empty"
	case n <= 10:
		return "tiny"
	case n <= 50:
		return "short"
	case n <= 200:
		return "medium"
	case n <= 1000:
		return "long"
	default:
		return "very_long"
	}
}

// emitDistanceCounters records a Distance call: the call itself, the string
// length bucket of the longer operand, and which automaton path served it.
func emitDistanceCounters(a, b string, bitVector bool) {
	emitCounter(metrics.FuzzyDistanceCallsTotal, 1, nil)

	bucket := lengthBucket(a)
	if len([]rune(b)) > len([]rune(a)) {
		bucket = lengthBucket(b)
	}
	emitCounter(metrics.FuzzyStringLengthBucket, 1, map[string]string{metrics.TagBucket: bucket})

	if bitVector {
		emitCounter(metrics.FuzzyBitVectorPathTotal, 1, nil)
	} else {
		emitCounter(metrics.FuzzyScalarPathTotal, 1, nil)
	}
}

// emitFindOneCounters records a FindOne call on a Trie or BK-tree index and
// whether it found a match within budget.
func emitFindOneCounters(index string, found bool) {
	emitCounter(metrics.FuzzyFindOneCallsTotal, 1, map[string]string{metrics.TagIndex: index})
	if !found {
		emitCounter(metrics.FuzzyFindOneNoMatchTotal, 1, map[string]string{metrics.TagIndex: index})
	}
}

// emitInsertCounters records an Insert call on a Trie or BK-tree index and
// whether it was a no-op duplicate of an existing entry.
func emitInsertCounters(index string, duplicate bool) {
	emitCounter(metrics.FuzzyInsertsTotal, 1, map[string]string{metrics.TagIndex: index})
	if duplicate {
		emitCounter(metrics.FuzzyDuplicateInsertTotal, 1, map[string]string{metrics.TagIndex: index})
	}
}
