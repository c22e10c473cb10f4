package dictionary

import (
	"path/filepath"
	"testing"

	"github.com/fulmenhq/matchkit/telemetry"
	"github.com/fulmenhq/matchkit/telemetry/metrics"
	teltest "github.com/fulmenhq/matchkit/telemetry/testing"
)

func TestTelemetry_Disabled_ByDefault(t *testing.T) {
	if isTelemetryEnabled() {
		t.Error("telemetry should be disabled by default")
	}
}

func TestTelemetry_LoadManifest_SuccessCounters(t *testing.T) {
	collector := teltest.NewFakeCollector()
	sys, err := telemetry.NewSystem(&telemetry.Config{Enabled: true, Emitter: collector})
	if err != nil {
		t.Fatalf("failed to create telemetry system: %v", err)
	}
	EnableTelemetry(sys)
	defer DisableTelemetry()

	dir := t.TempDir()
	path := writeManifest(t, dir, "colors.yaml", "words:\n  - red\n  - green\n")

	if _, err := LoadManifest(path, nil); err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}

	if !collector.HasMetric(metrics.DictionaryLoadTotal) {
		t.Error("expected a load counter to be emitted")
	}
	if !collector.HasMetric(metrics.DictionaryWordsTotal) {
		t.Error("expected a words-loaded counter to be emitted")
	}
	if !collector.HasMetric(metrics.DictionaryLoadMs) {
		t.Error("expected a load latency histogram to be emitted")
	}
	if collector.HasMetric(metrics.DictionaryLoadErrorsTotal) {
		t.Error("did not expect a load error counter on success")
	}
}

func TestTelemetry_LoadManifest_FailureCounters(t *testing.T) {
	collector := teltest.NewFakeCollector()
	sys, err := telemetry.NewSystem(&telemetry.Config{Enabled: true, Emitter: collector})
	if err != nil {
		t.Fatalf("failed to create telemetry system: %v", err)
	}
	EnableTelemetry(sys)
	defer DisableTelemetry()

	dir := t.TempDir()
	path := writeManifest(t, dir, "bad.json", `{"name": "colors"}`)

	if _, err := LoadManifest(path, nil); err == nil {
		t.Fatal("expected an error for a manifest missing words")
	}

	if !collector.HasMetric(metrics.DictionaryLoadErrorsTotal) {
		t.Error("expected a load error counter to be emitted")
	}
}

func TestTelemetry_LoadManifest_MissingFileCounters(t *testing.T) {
	collector := teltest.NewFakeCollector()
	sys, err := telemetry.NewSystem(&telemetry.Config{Enabled: true, Emitter: collector})
	if err != nil {
		t.Fatalf("failed to create telemetry system: %v", err)
	}
	EnableTelemetry(sys)
	defer DisableTelemetry()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LoadManifest(path, nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	if !collector.HasMetric(metrics.DictionaryLoadErrorsTotal) {
		t.Error("expected a load error counter to be emitted for a read failure")
	}
}
