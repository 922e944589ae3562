package sim

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Reporter polls the sink once per interval and logs the per-tick delta of
// completed requests. A request finishing within a tick may be counted in
// that tick or the next, never twice and never dropped.
type Reporter struct {
	sink     *MetricsSink
	interval time.Duration
}

// NewReporter creates a reporter polling sink every interval.
func NewReporter(sink *MetricsSink, interval time.Duration) *Reporter {
	return &Reporter{
		sink:     sink,
		interval: interval,
	}
}

// Run loops until ctx is cancelled. The sleep is shortened by the time
// already spent in the tick so cumulative drift does not compound.
func (r *Reporter) Run(ctx context.Context) {
	var last int64
	for {
		tick := time.Now()

		count := r.sink.Count()
		logrus.Infof("%d req/sec", count-last)
		last = count

		sleep := r.interval - time.Since(tick)
		if sleep < 0 {
			sleep = 0
		}
		t := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			t.Stop()
			logrus.Info("goodbye")
			return
		case <-t.C:
		}
	}
}
