package sim

import "github.com/google/uuid"

// Client is the stable identity of one workload worker. The token is fixed
// for the worker's lifetime, which is what makes affinity routing sticky.
type Client struct {
	ID    int
	Token uuid.UUID
}

// NewClient creates a client identity for worker id.
func NewClient(id int) Client {
	return Client{
		ID:    id,
		Token: uuid.New(),
	}
}
