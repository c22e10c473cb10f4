package fulhash

import (
	"strings"
	"testing"

	"github.com/fulmenhq/matchkit/telemetry"
	"github.com/fulmenhq/matchkit/telemetry/metrics"
	teltesting "github.com/fulmenhq/matchkit/telemetry/testing"
)

func TestHash_TelemetryEmission(t *testing.T) {
	collector := teltesting.NewFakeCollector()
	telSys, err := telemetry.NewSystem(&telemetry.Config{Enabled: true, Emitter: collector})
	if err != nil {
		t.Fatalf("failed to create telemetry system: %v", err)
	}
	telemetry.SetGlobalSystem(telSys)
	defer telemetry.SetGlobalSystem(nil)

	tests := []struct {
		name       string
		opts       []Option
		wantMetric string
		wantAlg    string
	}{
		{"xxh3-128", []Option{WithAlgorithm(XXH3_128)}, metrics.FulHashOperationsTotalXXH3128, "xxh3-128"},
		{"sha256", []Option{WithAlgorithm(SHA256)}, metrics.FulHashOperationsTotalSHA256, "sha256"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector.Reset()

			if _, err := Hash([]byte("test data"), tt.opts...); err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			algMetrics := collector.GetMetricsByName(tt.wantMetric)
			if len(algMetrics) != 1 {
				t.Fatalf("expected 1 %s metric, got %d", tt.wantMetric, len(algMetrics))
			}
			if algMetrics[0].Tags[metrics.TagAlgorithm] != tt.wantAlg {
				t.Errorf("expected algorithm tag %s, got %s", tt.wantAlg, algMetrics[0].Tags[metrics.TagAlgorithm])
			}

			bytesMetrics := collector.GetMetricsByName(metrics.FulHashBytesHashedTotal)
			if len(bytesMetrics) != 1 {
				t.Errorf("expected 1 %s metric, got %d", metrics.FulHashBytesHashedTotal, len(bytesMetrics))
			}

			opMetrics := collector.GetMetricsByName(metrics.FulHashOperationMs)
			if len(opMetrics) != 1 {
				t.Errorf("expected 1 %s metric, got %d", metrics.FulHashOperationMs, len(opMetrics))
			}
		})
	}
}

func TestHashString_TelemetryEmission(t *testing.T) {
	collector := teltesting.NewFakeCollector()
	telSys, err := telemetry.NewSystem(&telemetry.Config{Enabled: true, Emitter: collector})
	if err != nil {
		t.Fatalf("failed to create telemetry system: %v", err)
	}
	telemetry.SetGlobalSystem(telSys)
	defer telemetry.SetGlobalSystem(nil)

	if _, err := HashString("test string"); err != nil {
		t.Fatalf("HashString() error = %v", err)
	}

	if !collector.HasMetric(metrics.FulHashHashStringTotal) {
		t.Errorf("expected %s to be recorded", metrics.FulHashHashStringTotal)
	}
	if !collector.HasMetric(metrics.FulHashOperationsTotalXXH3128) {
		t.Errorf("expected %s to be recorded", metrics.FulHashOperationsTotalXXH3128)
	}
}

func TestHashReader_TelemetryEmission(t *testing.T) {
	collector := teltesting.NewFakeCollector()
	telSys, err := telemetry.NewSystem(&telemetry.Config{Enabled: true, Emitter: collector})
	if err != nil {
		t.Fatalf("failed to create telemetry system: %v", err)
	}
	telemetry.SetGlobalSystem(telSys)
	defer telemetry.SetGlobalSystem(nil)

	if _, err := HashReader(strings.NewReader("test data from reader")); err != nil {
		t.Fatalf("HashReader() error = %v", err)
	}

	if !collector.HasMetric(metrics.FulHashOperationsTotalXXH3128) {
		t.Errorf("expected %s to be recorded", metrics.FulHashOperationsTotalXXH3128)
	}
	if !collector.HasMetric(metrics.FulHashBytesHashedTotal) {
		t.Errorf("expected %s to be recorded", metrics.FulHashBytesHashedTotal)
	}
}

func TestHash_TelemetryDisabled(t *testing.T) {
	telemetry.SetGlobalSystem(nil)

	if _, err := Hash([]byte("test")); err != nil {
		t.Fatalf("Hash() should work without telemetry: %v", err)
	}
	if _, err := HashString("test"); err != nil {
		t.Fatalf("HashString() should work without telemetry: %v", err)
	}
	if _, err := HashReader(strings.NewReader("test")); err != nil {
		t.Fatalf("HashReader() should work without telemetry: %v", err)
	}
}
