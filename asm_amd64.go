//go:build amd64

package coroutine

import "unsafe"

// switchContext performs one Context Switch (spec §4.2): it captures the
// resuming side's state into from, loads the symmetric state out of to, and
// jmps to to.rip. It never returns through the normal call mechanism — it
// returns only when some later switch targets the from context again, at
// which point execution resumes right after the switchContext call that
// captured it, with its Go-level call frame (and everything captured in
// from) exactly as it was.
//
// switchContext must not be inlined: the compiler must not assume any
// caller-saved register survives it, since it's handwritten assembly that
// clobbers the machine in ways the Go compiler cannot see through.
//
//go:noescape
//go:nosplit
func switchContext(from, to *context)

// trampoline is the synthetic entry point a freshly Init'd coroutine's
// Machine Context targets (spec §4.3); see switch_sysv_amd64.s /
// switch_windows_amd64.s. It is never called directly from Go — only
// reached via a JMP loaded from trampolineAddr — so it takes no arguments.
//
//go:noescape
func trampoline()

// trampolineAddr returns the address of the first-resume-only trampoline
// (spec §4.3), used by setEntry to build the synthetic Machine Context.
//
//go:noescape
func trampolineAddr() uintptr

// goEntry is called, via the trampoline, the first time a coroutine's
// synthetic context is switched into. h is the *Handle[A] pointer preloaded
// into r13 by setEntry; goEntryDispatch recovers its concrete type and runs
// the post-init handshake and, later, the body (spec §4.3).
//
//go:nosplit
func goEntry(h unsafe.Pointer) {
	goEntryDispatch(h)
}
