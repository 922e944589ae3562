package sim

import (
	"math"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"gonum.org/v1/gonum/stat"
)

// TestExpovariateModel_NonNegative verifies every draw is >= 0.
func TestExpovariateModel_NonNegative(t *testing.T) {
	model := NewExpovariateModel(10*time.Millisecond, 1)

	for i := 0; i < 10000; i++ {
		if d := model.Response(); d < 0 {
			t.Fatalf("Response() = %v, want >= 0", d)
		}
	}
}

// TestExpovariate_DegenerateDraw verifies a uniform draw at or arbitrarily
// close to zero never produces a negative, infinite, or NaN delay.
func TestExpovariate_DegenerateDraw(t *testing.T) {
	for _, u := range []float64{0, math.SmallestNonzeroFloat64, 1e-300} {
		d := expovariate(u, 10*time.Millisecond)
		if d < 0 {
			t.Errorf("expovariate(%g) = %v, want >= 0", u, d)
		}
		ms := float64(d.Milliseconds())
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			t.Errorf("expovariate(%g) = %v, want finite", u, d)
		}
	}
}

// TestExpovariateModel_MeanConverges verifies the sample mean approaches
// the configured average.
func TestExpovariateModel_MeanConverges(t *testing.T) {
	// GIVEN an expovariate model with a 10ms mean
	average := 10 * time.Millisecond
	model := NewExpovariateModel(average, 7)

	// WHEN drawing many samples
	samples := make([]float64, 50000)
	for i := range samples {
		samples[i] = float64(model.Response())
	}

	// THEN the sample mean is within 5% of the mean
	mean := stat.Mean(samples, nil)
	want := float64(average)
	if math.Abs(mean-want)/want > 0.05 {
		t.Errorf("sample mean = %v, want within 5%% of %v", time.Duration(mean), average)
	}
}

// TestUniformModel_Range verifies draws stay within [0, average).
func TestUniformModel_Range(t *testing.T) {
	average := 10 * time.Millisecond
	model := NewUniformModel(average, 3)

	for i := 0; i < 10000; i++ {
		d := model.Response()
		if d < 0 || d > average {
			t.Fatalf("Response() = %v, want in [0, %v]", d, average)
		}
	}
}

// TestDegradingModel_WindowPattern verifies the degradation window for
// period=60 duration=20: second 0 of each cycle is healthy, seconds 1-19
// are degraded, seconds 20-59 are healthy, and the pattern repeats.
func TestDegradingModel_WindowPattern(t *testing.T) {
	// GIVEN a degrading model on a manual clock
	average := 10 * time.Millisecond
	clock := newStepClock()
	model := newDegradingModel(average, 60, 20, clock.now)

	// WHEN stepping through two full periods one second at a time
	for sec := int64(0); sec <= 120; sec++ {
		clock.sec = sec
		got := model.Response()

		// THEN only 0 < sec mod 60 < 20 responds at 100x
		mod := sec % 60
		want := average
		if mod > 0 && mod < 20 {
			want = 100 * average
		}
		if got != want {
			t.Errorf("second %d: Response() = %v, want %v", sec, got, want)
		}
	}
}

// TestDegradingModel_TransitionLogsOnce verifies each healthy<->degraded
// edge logs exactly once, not once per call.
func TestDegradingModel_TransitionLogsOnce(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	clock := newStepClock()
	model := newDegradingModel(10*time.Millisecond, 60, 20, clock.now)

	// Healthy at second 0, then three degraded calls, then recovery.
	for _, sec := range []int64{0, 1, 2, 3, 20, 21} {
		clock.sec = sec
		model.Response()
	}

	if got := len(hook.Entries); got != 2 {
		t.Fatalf("got %d transition log entries, want 2", got)
	}
}
