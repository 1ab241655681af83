package service

import (
	"sync"
	"time"
)

// idGenerator derives order ids from the creation timestamp in milliseconds.
// Two submissions in the same millisecond would collide, so the generator
// bumps past the last issued id, keeping ids unique and monotonic.
type idGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDGenerator() *idGenerator {
	return &idGenerator{now: time.Now}
}

func (g *idGenerator) next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
