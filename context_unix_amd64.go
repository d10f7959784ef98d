//go:build (linux || darwin) && amd64

package coroutine

// context is the Machine Context of spec §3/§4.2 for the System V AMD64
// ABI: instruction pointer, stack pointer, frame pointer, the callee-saved
// general-purpose registers, MXCSR and the x87 control word.
//
// R14 is deliberately absent. The SysV ABI lists it as callee-saved, but the
// Go runtime reserves R14 on amd64 as the current-g register: every piece of
// compiler-generated code assumes R14 always points at the running
// goroutine's g. A coroutine switch never changes which goroutine is
// running, only which stack region it's using, so R14 must stay exactly
// where the runtime left it. Saving and restoring it here would only
// reintroduce its own unmodified value, so it's simply left alone.
//
// Field order is load-bearing: switch_sysv_amd64.s addresses every field by
// its constant byte offset below, not by name.
type context struct {
	rip   uintptr // +0
	rsp   uintptr // +8
	rbp   uintptr // +16
	rbx   uintptr // +24
	r12   uintptr // +32
	r13   uintptr // +40
	r15   uintptr // +48
	mxcsr uint32  // +56
	fpcw  uint16  // +60
	_pad  uint16
}

// Offsets into context, mirrored in switch_sysv_amd64.s. Keep in sync.
const (
	ctxRIP   = 0
	ctxRSP   = 8
	ctxRBP   = 16
	ctxRBX   = 24
	ctxR12   = 32
	ctxR13   = 40
	ctxR15   = 48
	ctxMXCSR = 56
	ctxFPCW  = 60
	ctxSize  = 64 // rounded by the Go compiler; switch code never depends on sizeof
)

// setEntry prepares ctx as the synthetic Machine Context built by Init: the
// first switch into it lands in the trampoline with the coroutine stack
// pointer loaded and the handle pointer preloaded into a callee-saved
// register the trampoline knows to read (spec §4.3).
func (c *context) setEntry(sp uintptr, handle uintptr, stackLo, stackHi uintptr) {
	_, _ = stackLo, stackHi // no TIB equivalent outside Windows
	assertf(sp&(stackAlignment-1) == 0, "setEntry: sp %#x is not 16-byte aligned", sp)
	*c = context{}
	c.rip = trampolineAddr()
	c.rsp = sp
	c.r13 = handle
}
