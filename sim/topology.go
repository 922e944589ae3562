package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTopology builds the fixed three-server cluster: two expovariate
// servers with close but distinct means, and one server that degrades for
// 20 seconds out of every 60. Per-model seeds are offset from the master
// seed so the models draw independently.
func DefaultTopology(sink *MetricsSink, seed int64) []*Server {
	servers := []*Server{
		NewServer(NewExpovariateModel(10*time.Millisecond, seed), sink),
		NewServer(NewExpovariateModel(11*time.Millisecond, seed+1), sink),
		NewServer(NewDegradingModel(10*time.Millisecond, 60, 20), sink),
	}
	logrus.Infof("servers: %v", servers)
	return servers
}
