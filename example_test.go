package theatre_test

import (
	"github.com/Yannissss/theatre"
)

func ExampleEcho() {
	actor := theatre.NewGraceful[string](theatre.Echo[string]{})
	_ = actor.Tell("Hello, World!")
	actor.Kill()
	actor.Wait()
	// Output: Hello, World!
}
