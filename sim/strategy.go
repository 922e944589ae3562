package sim

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Strategy routes one request to exactly one server and invokes it.
type Strategy interface {
	Request(ctx context.Context, c Client)
}

// NewStrategy selects a routing strategy by name, case-insensitively.
// Any name other than "random" falls back to affinity; the log line makes
// the effective choice visible when the name was a typo.
func NewStrategy(name string, servers []*Server, seed int64) Strategy {
	if strings.EqualFold(name, "random") {
		logrus.Info("using random strategy")
		return NewRandomStrategy(servers, seed)
	}
	logrus.Info("using affinity strategy")
	return NewAffinityStrategy(servers)
}

// RandomStrategy naively picks a random server for every request.
type RandomStrategy struct {
	servers []*Server
	rng     *lockedRand
}

// NewRandomStrategy creates a random strategy over the fixed server list.
func NewRandomStrategy(servers []*Server, seed int64) *RandomStrategy {
	return &RandomStrategy{
		servers: servers,
		rng:     newLockedRand(seed),
	}
}

// Request sends the request to a random server.
func (s *RandomStrategy) Request(ctx context.Context, c Client) {
	s.servers[s.pick()].Request(ctx)
}

// pick floors a uniform draw scaled by the server count. Float64 is
// strictly below 1, so the index never reaches len(servers).
func (s *RandomStrategy) pick() int {
	return int(s.rng.Float64() * float64(len(s.servers)))
}

// AffinityStrategy consistently routes each client to the same server,
// chosen by hashing the client's token modulo the server count.
type AffinityStrategy struct {
	servers []*Server
}

// NewAffinityStrategy creates an affinity strategy over the fixed server
// list.
func NewAffinityStrategy(servers []*Server) *AffinityStrategy {
	return &AffinityStrategy{servers: servers}
}

// Request sends the request to the server the client has affinity with.
func (s *AffinityStrategy) Request(ctx context.Context, c Client) {
	s.servers[s.index(c)].Request(ctx)
}

// index derives a stable server index from the client token via fnv-1a.
func (s *AffinityStrategy) index(c Client) int {
	h := fnv.New64a()
	h.Write(c.Token[:])
	return int(h.Sum64() % uint64(len(s.servers)))
}
