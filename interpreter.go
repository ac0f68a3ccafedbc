package theatre

import (
	"fmt"
)

type (
	// Interpreter keeps the business logic of how an actor handles
	// messages. Process is called once per delivered message, always
	// from the actor's worker goroutine, so implementations may hold
	// unsynchronized mutable state.
	Interpreter[T any] interface {
		Process(message T)
	}

	// SuicidalInterpreter is an Interpreter variant that can request
	// its own termination: returning true from Process stops the
	// actor immediately, discarding any queued messages.
	SuicidalInterpreter[T any] interface {
		Process(message T) bool
	}
)

// InterpreterFunc adapts a plain function to the Interpreter interface.
type InterpreterFunc[T any] func(message T)

func (f InterpreterFunc[T]) Process(message T) {
	f(message)
}

// Echo is a stateless sample interpreter that prints every message
// it receives to standard output.
type Echo[T any] struct{}

func (Echo[T]) Process(message T) {
	fmt.Println(message)
}
