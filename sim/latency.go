package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// LatencyModel produces a simulated response delay for one request.
// Models are shared by every client worker, so implementations must be
// safe for concurrent use.
type LatencyModel interface {
	// Response returns the next simulated delay. Always >= 0.
	Response() time.Duration

	// String describes the model and its parameters for the startup log.
	String() string
}

// lockedRand guards a *rand.Rand shared across worker goroutines.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// expovariate converts one uniform draw into an exponentially-distributed
// delay with the given mean. A degenerate draw is clamped so Log never
// sees zero.
func expovariate(u float64, average time.Duration) time.Duration {
	if u <= 0 {
		u = math.SmallestNonzeroFloat64
	}
	return time.Duration(-math.Log(u) * float64(average))
}

// ExpovariateModel draws exponentially-distributed delays around a mean.
type ExpovariateModel struct {
	average time.Duration
	rng     *lockedRand
}

// NewExpovariateModel creates an exponential latency model with the given
// mean delay.
func NewExpovariateModel(average time.Duration, seed int64) *ExpovariateModel {
	return &ExpovariateModel{
		average: average,
		rng:     newLockedRand(seed),
	}
}

func (m *ExpovariateModel) Response() time.Duration {
	return expovariate(m.rng.Float64(), m.average)
}

func (m *ExpovariateModel) String() string {
	return fmt.Sprintf("expovariate{avg=%s}", m.average)
}

// UniformModel draws delays uniformly distributed on [0, average).
type UniformModel struct {
	average time.Duration
	rng     *lockedRand
}

// NewUniformModel creates a uniform latency model bounded by average.
func NewUniformModel(average time.Duration, seed int64) *UniformModel {
	return &UniformModel{
		average: average,
		rng:     newLockedRand(seed),
	}
}

func (m *UniformModel) Response() time.Duration {
	return time.Duration(m.rng.Float64() * float64(m.average))
}

func (m *UniformModel) String() string {
	return fmt.Sprintf("uniform{avg=%s}", m.average)
}

// DegradingModel responds in average normally but takes 100x longer during
// a recurring degradation window. With period P and duration D (seconds),
// the model is degraded whenever 0 < elapsed mod P < D; the second at
// which each cycle starts is healthy.
type DegradingModel struct {
	average  time.Duration
	period   int64 // seconds
	duration int64 // seconds

	start    time.Time
	now      func() time.Time
	degraded atomic.Bool
}

// NewDegradingModel creates a periodically-degrading latency model.
// duration must be less than period.
func NewDegradingModel(average time.Duration, period, duration int64) *DegradingModel {
	return newDegradingModel(average, period, duration, time.Now)
}

func newDegradingModel(average time.Duration, period, duration int64, now func() time.Time) *DegradingModel {
	return &DegradingModel{
		average:  average,
		period:   period,
		duration: duration,
		start:    now(),
		now:      now,
	}
}

func (m *DegradingModel) Response() time.Duration {
	elapsed := m.now().UnixMilli()/1000 - m.start.UnixMilli()/1000
	mod := elapsed % m.period

	if mod > 0 && mod < m.duration {
		// CompareAndSwap logs each edge exactly once even when workers race.
		if m.degraded.CompareAndSwap(false, true) {
			logrus.Infof("%s entering degraded state", m)
		}
		return 100 * m.average
	}

	if m.degraded.CompareAndSwap(true, false) {
		logrus.Infof("%s back to healthy", m)
	}
	return m.average
}

func (m *DegradingModel) String() string {
	return fmt.Sprintf("degrading{avg=%s per=%ds dur=%ds}", m.average, m.period, m.duration)
}
