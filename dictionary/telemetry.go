package dictionary

import (
	"time"

	"github.com/fulmenhq/matchkit/telemetry"
	"github.com/fulmenhq/matchkit/telemetry/metrics"
)

// telemetrySystem holds the optional telemetry system for manifest loading.
// nil if telemetry is disabled (default).
var telemetrySystem *telemetry.System

// EnableTelemetry enables counter/histogram telemetry for LoadManifest in
// this package.
//
// Counters and histograms track:
//   - manifest load attempts and failures (validation, I/O, decode)
//   - word count of successfully loaded manifests
//   - load latency
//
// Example usage:
//
//	sys, _ := telemetry.NewSystem(telemetry.DefaultConfig())
//	dictionary.EnableTelemetry(sys)
//	m, _ := dictionary.LoadManifest("words.yaml", nil)
func EnableTelemetry(sys *telemetry.System) {
	telemetrySystem = sys
}

// DisableTelemetry disables telemetry for this package.
func DisableTelemetry() {
	telemetrySystem = nil
}

func isTelemetryEnabled() bool {
	return telemetrySystem != nil
}

func emitLoadCounter(name string, value float64, tags map[string]string) {
	if !isTelemetryEnabled() {
		return
	}
	_ = telemetrySystem.Counter(name, value, tags)
}

func emitLoadHistogram(name string, d time.Duration, tags map[string]string) {
	if !isTelemetryEnabled() {
		return
	}
	_ = telemetrySystem.Histogram(name, d, tags)
}

// emitLoadSuccess records a successful LoadManifest call: the attempt, the
// word count, and the time it took.
func emitLoadSuccess(path string, words int, elapsed time.Duration) {
	format := formatTag(path)
	emitLoadCounter(metrics.DictionaryLoadTotal, 1, map[string]string{metrics.TagFormat: format, metrics.TagResult: metrics.StatusSuccess})
	emitLoadCounter(metrics.DictionaryWordsTotal, float64(words), map[string]string{metrics.TagFormat: format})
	emitLoadHistogram(metrics.DictionaryLoadMs, elapsed, map[string]string{metrics.TagFormat: format})
}

// emitLoadFailure records a failed LoadManifest call, tagged with the stage
// at which it failed (read, parse, validate, decode, checksum).
func emitLoadFailure(path string, stage string) {
	format := formatTag(path)
	emitLoadCounter(metrics.DictionaryLoadTotal, 1, map[string]string{metrics.TagFormat: format, metrics.TagResult: metrics.StatusFailure})
	emitLoadCounter(metrics.DictionaryLoadErrorsTotal, 1, map[string]string{metrics.TagFormat: format, metrics.TagErrorType: stage})
}

func formatTag(path string) string {
	if isYAMLPath(path) {
		return "yaml"
	}
	return "json"
}
