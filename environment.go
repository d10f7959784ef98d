package coroutine

// Environment is the Execution Environment of spec §3/§4.3: the state a
// running body can reach beyond its own packed arguments — its temporary
// arena and a back-reference to its own handle. It's built once by
// [Handle.Init], just before the post-init handshake, and lives for as long
// as the handle is initialized.
type Environment[A any] struct {
	handle *Handle[A]
	arena  Arena
}

// Handle returns the coroutine's own handle, the same pointer the body was
// called with.
func (e *Environment[A]) Handle() *Handle[A] { return e.handle }

// Arena returns the coroutine's temporary storage.
func (e *Environment[A]) Arena() *Arena { return &e.arena }
