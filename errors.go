package theatre

type _Error string

func (e _Error) Error() string {
	return string(e)
}

// ErrDeadActor is returned by Tell when the actor's worker
// has already exited and can no longer accept messages.
const ErrDeadActor = _Error("actor is dead")
