package sim

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// WorkloadGenerator drives a fixed pool of client workers against a
// routing strategy at full saturation: each worker issues its next request
// as soon as the previous one completes. There is no queue and no
// backpressure, the point is to measure sustained throughput under
// constant offered load.
type WorkloadGenerator struct {
	strategy Strategy
	workers  int
	wg       sync.WaitGroup
}

// NewWorkloadGenerator creates a generator with the given pool size.
func NewWorkloadGenerator(strategy Strategy, workers int) *WorkloadGenerator {
	return &WorkloadGenerator{
		strategy: strategy,
		workers:  workers,
	}
}

// Start launches the worker goroutines. Each worker keeps one Client
// identity for its whole lifetime and loops until ctx is cancelled.
func (g *WorkloadGenerator) Start(ctx context.Context) {
	logrus.Infof("starting %d client workers", g.workers)
	for i := 0; i < g.workers; i++ {
		client := NewClient(i)
		g.wg.Add(1)
		go func() {
			defer g.wg.Done()
			for ctx.Err() == nil {
				g.strategy.Request(ctx, client)
			}
		}()
	}
}

// Wait blocks until every worker has drained.
func (g *WorkloadGenerator) Wait() {
	g.wg.Wait()
}
