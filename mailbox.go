package theatre

import (
	"sync"
)

// envelope is the tagged value carried by a mailbox: either a user
// message to deliver or a stop marker enqueued by Kill.
type envelope[T any] struct {
	message T
	stop    bool
}

// mailbox is an unbounded multi-producer single-consumer FIFO queue.
// Unlike a channel it never blocks or rejects a put for lack of space,
// which keeps Tell and Kill non-blocking for callers.
//
// A mailbox moves through two one-way transitions: closed, once the
// last strong handle releases its sender reference, and dead, once the
// worker goroutine has exited. Only dead rejects puts; a closed mailbox
// still accepts them so that a graceful drain can sweep up racing sends.
type mailbox[T any] struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	queue    []envelope[T]
	closed   bool
	dead     bool
}

func newMailbox[T any]() *mailbox[T] {
	mb := &mailbox[T]{}
	mb.nonEmpty = sync.NewCond(&mb.mu)
	return mb
}

func (mb *mailbox[T]) put(env envelope[T]) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.dead {
		return ErrDeadActor
	}
	mb.queue = append(mb.queue, env)
	mb.nonEmpty.Signal()
	return nil
}

// get blocks until an envelope is available or the mailbox is closed
// with nothing left to read. It reports false only in the latter case,
// which the worker treats as an implicit stop signal.
func (mb *mailbox[T]) get() (envelope[T], bool) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for len(mb.queue) == 0 && !mb.closed {
		mb.nonEmpty.Wait()
	}
	return mb.popLocked()
}

// tryGet is the non-blocking variant of get used while draining.
func (mb *mailbox[T]) tryGet() (envelope[T], bool) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.popLocked()
}

func (mb *mailbox[T]) popLocked() (envelope[T], bool) {
	if len(mb.queue) == 0 {
		var zero envelope[T]
		return zero, false
	}
	env := mb.queue[0]
	mb.queue[0] = envelope[T]{}
	mb.queue = mb.queue[1:]
	return env, true
}

// close marks the sending side exhausted and wakes a blocked get.
func (mb *mailbox[T]) close() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.closed = true
	mb.nonEmpty.Broadcast()
}

// die is called exactly once, by the exiting worker. Pending envelopes
// are released and all future puts fail with ErrDeadActor.
func (mb *mailbox[T]) die() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.dead = true
	mb.closed = true
	mb.queue = nil
	mb.nonEmpty.Broadcast()
}
