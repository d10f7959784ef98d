package coroutine

import "unsafe"

// goEntryDispatch is where every coroutine's trampoline lands in Go code
// (spec §4.3). p is the address of a Handle[A]'s embedded handleBase —
// setEntry preloaded it into a callee-saved register the trampoline knows
// to read, and handleBase being Handle's first field means that address and
// &Handle[A]{} are the same pointer.
//
// There's no type parameter here because there can't be: the trampoline
// only has a bare pointer, not a type. enterFn closes over the concrete
// Handle[A] at New time, so recovering it is just a field read.
func goEntryDispatch(p unsafe.Pointer) {
	hb := (*handleBase)(p)
	hb.enterFn()
}
