// Package testing provides an in-memory telemetry.MetricsEmitter for use in
// other packages' tests, so they can assert on emitted counters/histograms
// without standing up a real metrics backend.
package testing

import (
	"sync"
	"time"

	"github.com/fulmenhq/matchkit/telemetry"
)

// RecordedMetric captures a single metric emission observed by a FakeCollector.
type RecordedMetric struct {
	Name      string
	Type      telemetry.MetricType
	Value     interface{}
	Tags      map[string]string
	Unit      string
	Timestamp time.Time
}

// FakeCollector implements telemetry.MetricsEmitter, recording every call for
// later inspection by a test.
type FakeCollector struct {
	mu      sync.RWMutex
	metrics []RecordedMetric
}

// NewFakeCollector returns an empty collector.
func NewFakeCollector() *FakeCollector {
	return &FakeCollector{metrics: make([]RecordedMetric, 0)}
}

func (fc *FakeCollector) Counter(name string, value float64, tags map[string]string) error {
	fc.record(RecordedMetric{Name: name, Type: telemetry.TypeCounter, Value: value, Tags: copyTags(tags)})
	return nil
}

func (fc *FakeCollector) Gauge(name string, value float64, tags map[string]string) error {
	fc.record(RecordedMetric{Name: name, Type: telemetry.TypeGauge, Value: value, Tags: copyTags(tags)})
	return nil
}

func (fc *FakeCollector) Histogram(name string, value time.Duration, tags map[string]string) error {
	fc.record(RecordedMetric{Name: name, Type: telemetry.TypeHistogram, Value: value, Tags: copyTags(tags), Unit: "ms"})
	return nil
}

func (fc *FakeCollector) HistogramSummary(name string, summary telemetry.HistogramSummary, tags map[string]string) error {
	fc.record(RecordedMetric{Name: name, Type: telemetry.TypeHistogram, Value: summary, Tags: copyTags(tags), Unit: "ms"})
	return nil
}

func (fc *FakeCollector) record(m RecordedMetric) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	m.Timestamp = time.Now()
	fc.metrics = append(fc.metrics, m)
}

// GetMetrics returns a snapshot of every metric recorded so far.
func (fc *FakeCollector) GetMetrics() []RecordedMetric {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	result := make([]RecordedMetric, len(fc.metrics))
	copy(result, fc.metrics)
	return result
}

// GetMetricsByName returns every recorded metric with the given name.
func (fc *FakeCollector) GetMetricsByName(name string) []RecordedMetric {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	var result []RecordedMetric
	for _, m := range fc.metrics {
		if m.Name == name {
			result = append(result, m)
		}
	}
	return result
}

// CountMetricsByName returns how many times a metric name was recorded.
func (fc *FakeCollector) CountMetricsByName(name string) int {
	return len(fc.GetMetricsByName(name))
}

// HasMetric reports whether a metric name was recorded at least once.
func (fc *FakeCollector) HasMetric(name string) bool {
	return fc.CountMetricsByName(name) > 0
}

// Reset clears all recorded metrics.
func (fc *FakeCollector) Reset() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.metrics = fc.metrics[:0]
}

func copyTags(tags map[string]string) map[string]string {
	if tags == nil {
		return nil
	}
	result := make(map[string]string, len(tags))
	for k, v := range tags {
		result[k] = v
	}
	return result
}
