package sim

import (
	"context"
	"time"
)

// Server wraps a LatencyModel. Identity is the model itself; servers are
// immutable after construction and the server list never changes during a
// run.
type Server struct {
	model LatencyModel
	sink  *MetricsSink
}

// NewServer creates a server backed by the given latency model, recording
// every request into sink.
func NewServer(model LatencyModel, sink *MetricsSink) *Server {
	return &Server{
		model: model,
		sink:  sink,
	}
}

// Request blocks the caller for the modeled delay and records the elapsed
// time into the sink exactly once. Cancellation mid-sleep is a passthrough:
// the elapsed-so-far time is still recorded and the call returns normally.
func (s *Server) Request(ctx context.Context) {
	start := time.Now()
	defer func() {
		s.sink.Observe(time.Since(start))
	}()

	delay := s.model.Response()
	if delay <= 0 {
		return
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (s *Server) String() string {
	return s.model.String()
}
