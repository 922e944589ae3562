package sim

import (
	"fmt"
	"time"
)

// fixedModel always responds with the same delay. Used to make server and
// workload tests deterministic.
type fixedModel struct {
	delay time.Duration
}

func (m *fixedModel) Response() time.Duration {
	return m.delay
}

func (m *fixedModel) String() string {
	return fmt.Sprintf("fixed{delay=%s}", m.delay)
}

// stepClock is a manually advanced clock for the degrading model tests.
type stepClock struct {
	base time.Time
	sec  int64
}

func newStepClock() *stepClock {
	return &stepClock{base: time.Unix(1_700_000_000, 0)}
}

func (c *stepClock) now() time.Time {
	return c.base.Add(time.Duration(c.sec) * time.Second)
}
