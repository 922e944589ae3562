package sim

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// MetricsSink records every completed request. It is shared by all client
// workers plus the single reporter; the counter is never reset during a run.
type MetricsSink struct {
	count atomic.Int64

	mu    sync.Mutex
	n     int64
	total time.Duration
	min   time.Duration
	max   time.Duration
}

// NewMetricsSink creates an empty sink.
func NewMetricsSink() *MetricsSink {
	return &MetricsSink{}
}

// Observe folds one completed request's latency into the sink.
func (s *MetricsSink) Observe(d time.Duration) {
	s.count.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	s.total += d
	if s.n == 1 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
}

// Count returns the number of completed requests so far. Lock-free and
// monotonically non-decreasing, safe to poll from the reporter.
func (s *MetricsSink) Count() int64 {
	return s.count.Load()
}

// LatencySnapshot is a point-in-time copy of the latency aggregate.
type LatencySnapshot struct {
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Avg returns the mean observed latency, or zero before any observation.
func (s LatencySnapshot) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Snapshot returns a consistent copy of the latency aggregate.
func (s *MetricsSink) Snapshot() LatencySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LatencySnapshot{
		Count: s.n,
		Total: s.total,
		Min:   s.min,
		Max:   s.max,
	}
}

// Summary logs the end-of-run aggregate.
func (s *MetricsSink) Summary() {
	snap := s.Snapshot()
	logrus.Infof("completed %d requests (latency avg=%s min=%s max=%s)",
		snap.Count, snap.Avg(), snap.Min, snap.Max)
}
