package theatre

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestMailbox(t *testing.T) {
	t.Run("delivers-in-fifo-order", func(t *testing.T) {
		c := qt.New(t)
		mb := newMailbox[int]()
		for k := 0; k < 3; k++ {
			c.Assert(mb.put(envelope[int]{message: k}), qt.IsNil)
		}
		for k := 0; k < 3; k++ {
			env, ok := mb.get()
			c.Assert(ok, qt.IsTrue)
			c.Assert(env.message, qt.Equals, k)
		}
	})

	t.Run("try-get-on-empty-reports-nothing", func(t *testing.T) {
		c := qt.New(t)
		mb := newMailbox[int]()
		_, ok := mb.tryGet()
		c.Assert(ok, qt.IsFalse)
	})

	t.Run("close-wakes-a-blocked-get", func(t *testing.T) {
		c := qt.New(t)
		mb := newMailbox[int]()
		woken := make(chan bool)
		go func() {
			_, ok := mb.get()
			woken <- ok
		}()
		time.Sleep(50 * time.Millisecond)
		mb.close()
		select {
		case ok := <-woken:
			c.Assert(ok, qt.IsFalse)
		case <-time.After(2 * time.Second):
			c.Fatal("get stayed blocked after close")
		}
	})

	t.Run("close-does-not-reject-puts", func(t *testing.T) {
		// A graceful drain must still be able to sweep up sends that
		// race with the last handle release.
		c := qt.New(t)
		mb := newMailbox[int]()
		mb.close()
		c.Assert(mb.put(envelope[int]{message: 7}), qt.IsNil)
		env, ok := mb.tryGet()
		c.Assert(ok, qt.IsTrue)
		c.Assert(env.message, qt.Equals, 7)
	})

	t.Run("die-rejects-puts", func(t *testing.T) {
		c := qt.New(t)
		mb := newMailbox[int]()
		c.Assert(mb.put(envelope[int]{message: 1}), qt.IsNil)
		mb.die()
		c.Assert(mb.put(envelope[int]{message: 2}), qt.ErrorIs, ErrDeadActor)
		_, ok := mb.tryGet()
		c.Assert(ok, qt.IsFalse)
	})
}

func TestLatch(t *testing.T) {
	t.Run("releases-current-and-future-waiters", func(t *testing.T) {
		c := qt.New(t)
		l := newLatch()
		released := make(chan struct{}, 2)
		go func() {
			l.wait()
			released <- struct{}{}
		}()
		time.Sleep(50 * time.Millisecond)
		l.trip()
		l.trip() // Tripping twice is a no-op.
		go func() {
			l.wait()
			released <- struct{}{}
		}()
		for k := 0; k < 2; k++ {
			select {
			case <-released:
			case <-time.After(2 * time.Second):
				c.Fatal("a latch waiter was not released")
			}
		}
	})
}
