package coroutine

import (
	"errors"
	"fmt"
)

// Contract violations (spec §7, class 1). Each is returned by the operation
// whose contract was broken; none of them is ever returned from inside a
// running coroutine body, since nothing propagates across a Run/Yield
// boundary (see [Handle.Run]).
var (
	// ErrAlreadyInitialized is returned by [Handle.Init] when called on a
	// handle that is already initialized and not yet deinitialized.
	ErrAlreadyInitialized = errors.New("coroutine: handle already initialized")

	// ErrNotInitialized is returned by [Handle.Run] when called on a handle
	// for which [Handle.Init] has not (yet, or any longer) succeeded.
	ErrNotInitialized = errors.New("coroutine: handle not initialized")

	// ErrAlreadyDone is returned by [Handle.Run] when the coroutine's body
	// has already returned.
	ErrAlreadyDone = errors.New("coroutine: handle already done")

	// ErrWrongThread is returned by [Handle.Run] when called from a
	// goroutine other than the one that called [Handle.Init].
	ErrWrongThread = errors.New("coroutine: run from a thread other than the one that initialized the coroutine")

	// ErrNotInCoroutine is the panic value raised by [Yield] when called
	// from outside any running coroutine body, or for a handle that is not
	// the one currently running on the calling thread.
	ErrNotInCoroutine = errors.New("coroutine: yield called outside of the owning coroutine's body")
)

// Resource failures (spec §7, class 2). The original C design treats these
// as hard, unrecoverable aborts; a Go library instead returns them, which is
// the idiomatic way for a Go API to surface OS resource exhaustion.
var (
	// ErrAllocFailed is returned by [Handle.Init] when the stack provider
	// could not reserve or commit memory for an owned stack.
	ErrAllocFailed = errors.New("coroutine: stack allocation failed")

	// ErrMapFailed wraps a failure from the underlying mmap/VirtualAlloc
	// call.
	ErrMapFailed = errors.New("coroutine: memory map failed")

	// ErrProtectFailed wraps a failure from the underlying mprotect/
	// VirtualProtect call used to install guard pages.
	ErrProtectFailed = errors.New("coroutine: memory protect failed")

	// ErrUnmapFailed wraps a failure from the underlying munmap/
	// VirtualFree call made during [Handle.Deinit].
	ErrUnmapFailed = errors.New("coroutine: memory unmap failed")
)

// ErrDiagnosticsDisabled is returned by [Handle.CheckStackUsage] when the
// module was built without the coroutine_watermark build tag (spec §4.7).
var ErrDiagnosticsDisabled = errors.New("coroutine: built without the coroutine_watermark diagnostic")

// StackOverflowSuspected is returned by [Handle.Deinit] when sentinel
// scanning finds that the entire usable stack has been touched — a strong
// hint, not a guarantee, that the stack was overrun (spec §4.7).
// [Handle.CheckStackUsage] reports the same finding through its overflow
// result rather than as an error. The true guarantee against overflow comes
// from guard pages, not this diagnostic.
type StackOverflowSuspected struct {
	// TouchedBytes is the number of bytes from the top of the usable stack
	// down to, and including, the lowest byte that no longer holds the
	// sentinel fill byte.
	TouchedBytes uintptr
	// Ratio is TouchedBytes divided by the usable stack size, in [0,1].
	Ratio float64
}

func (e *StackOverflowSuspected) Error() string {
	return fmt.Sprintf("coroutine: stack overflow suspected: %d bytes touched (%.1f%% of usable stack)",
		e.TouchedBytes, e.Ratio*100)
}
