// Package theatre implements a minimal actor runtime. Each actor owns
// a single background goroutine that serially interprets messages taken
// from a private unbounded mailbox. Handles decouple message producers
// from the actor: Tell enqueues a message, Kill requests termination,
// and Wait blocks until the worker has fully stopped.
//
// Termination mode is fixed at construction: a graceful actor drains
// and interprets everything already queued before dying, a disgraceful
// one discards it, and a suicidal one stops itself when its interpreter
// asks to.
package theatre

import (
	"sync/atomic"
)

// drainMode decides what happens to messages still queued when the
// worker observes a stop condition.
type drainMode int

const (
	// drainPending interprets every queued delivery before dying.
	drainPending drainMode = iota
	// drainNothing discards queued deliveries unread.
	drainNothing
)

// core is the triple shared by all handles of one actor: the mailbox,
// the termination flag, and the death latch. Exactly one worker
// goroutine is associated with a core for its entire lifetime.
type core[T any] struct {
	mailbox  *mailbox[T]
	dying    atomic.Bool
	death    *latch
	senders  atomic.Int64
	settings *settings
}

// release drops one strong sender reference. When the last one goes
// the mailbox closes, which the worker observes as an implicit stop.
func (c *core[T]) release() {
	if c.senders.Add(-1) == 0 {
		c.mailbox.close()
	}
}

// run is the worker loop. It blocks on the mailbox, dispatches each
// delivery to the interpreter step, and checks the termination flag
// only between interpretations. On any stop condition it applies the
// drain mode, then marks the mailbox dead and trips the death latch.
// The deferred transition runs even if an interpretation panics, so
// Wait can never be left dangling.
func (c *core[T]) run(step func(T) bool, mode drainMode) {
	defer func() {
		c.mailbox.die()
		c.death.trip()
	}()
	for {
		env, ok := c.mailbox.get()
		if !ok || env.stop {
			break
		}
		if c.interpret(step, env.message) {
			// Self-termination is always immediate.
			return
		}
		if c.dying.Load() {
			break
		}
	}
	if mode == drainPending {
		for {
			env, ok := c.mailbox.tryGet()
			if !ok {
				break
			}
			if env.stop {
				continue
			}
			c.interpret(step, env.message)
		}
	}
}

// interpret invokes the step with one message, converting a panic into
// a report so a single bad message cannot take the worker down.
func (c *core[T]) interpret(step func(T) bool, message T) (die bool) {
	defer func() {
		if reason := recover(); reason != nil {
			c.settings.reportPanic(reason)
		}
	}()
	return step(message)
}

// Actor is a strong, cloneable handle to a running actor. Any clone
// may kill or wait; killing via one clone terminates the actor for
// all of them.
type Actor[T any] struct {
	core  *core[T]
	spent atomic.Bool
}

// Tell enqueues a message for interpretation. It never blocks. It
// returns ErrDeadActor iff the worker has already exited, or this
// particular handle was consumed by Wait.
func (a *Actor[T]) Tell(message T) error {
	if a.spent.Load() {
		return ErrDeadActor
	}
	return a.core.mailbox.put(envelope[T]{message: message})
}

// Kill sets the termination flag and best-effort enqueues a stop
// marker. It is idempotent and never blocks; killing an actor that is
// already dying or dead is a no-op, not an error.
func (a *Actor[T]) Kill() {
	a.core.dying.Store(true)
	_ = a.core.mailbox.put(envelope[T]{stop: true})
}

// Wait blocks until the actor's worker has fully stopped, returning
// immediately if it already has. Wait is terminal on the handle: it
// releases the handle's sender reference, so further Tell calls on
// this handle fail. Once every strong handle has been released the
// mailbox closes and the worker dies on its own, which means Wait
// returns even when nobody ever calls Kill.
func (a *Actor[T]) Wait() {
	if a.spent.CompareAndSwap(false, true) {
		a.core.release()
	}
	a.core.death.wait()
}

// Clone returns a new strong handle aliasing the same actor. It must
// be taken before the handle is consumed by Wait.
func (a *Actor[T]) Clone() *Actor[T] {
	a.core.senders.Add(1)
	return &Actor[T]{core: a.core}
}

// Weak returns a send-only handle to the same actor. A weak handle
// holds no reference to the termination flag or the death latch, so
// it has no way to affect or observe the actor's lifecycle, and it
// does not keep the mailbox open.
func (a *Actor[T]) Weak() *WeakActor[T] {
	return &WeakActor[T]{mailbox: a.core.mailbox}
}

// WeakActor is a send-only alias of an actor handle.
type WeakActor[T any] struct {
	mailbox *mailbox[T]
}

// Tell enqueues a message, exactly like Actor.Tell.
func (w *WeakActor[T]) Tell(message T) error {
	return w.mailbox.put(envelope[T]{message: message})
}

func spawn[T any](step func(T) bool, mode drainMode, options []Option) *Actor[T] {
	c := &core[T]{
		mailbox:  newMailbox[T](),
		death:    newLatch(),
		settings: newSettings(options),
	}
	c.senders.Store(1)
	go c.run(step, mode)
	return &Actor[T]{core: c}
}

// NewGraceful starts an actor that, once killed, interprets every
// message already queued before dying. The worker goroutine becomes
// the sole owner of the interpreter.
func NewGraceful[T any](interpreter Interpreter[T], options ...Option) *Actor[T] {
	step := func(message T) bool {
		interpreter.Process(message)
		return false
	}
	return spawn(step, drainPending, options)
}

// NewDisgraceful starts an actor that, once killed, discards queued
// messages unread and dies promptly. The worker goroutine becomes the
// sole owner of the interpreter.
func NewDisgraceful[T any](interpreter Interpreter[T], options ...Option) *Actor[T] {
	step := func(message T) bool {
		interpreter.Process(message)
		return false
	}
	return spawn(step, drainNothing, options)
}

// NewSuicidal starts an actor whose interpreter may terminate it by
// returning true from Process. Self-termination is immediate: queued
// messages are discarded. The handle's Kill and Wait work as usual.
func NewSuicidal[T any](interpreter SuicidalInterpreter[T], options ...Option) *Actor[T] {
	return spawn(interpreter.Process, drainNothing, options)
}
