package theatre

import (
	"sync"
)

// latch is the death latch: a one-way alive→dead transition that
// releases every current and future waiter. Tripping twice is a no-op.
type latch struct {
	once sync.Once
	dead chan struct{}
}

func newLatch() *latch {
	return &latch{dead: make(chan struct{})}
}

func (l *latch) trip() {
	l.once.Do(func() {
		close(l.dead)
	})
}

func (l *latch) wait() {
	<-l.dead
}
