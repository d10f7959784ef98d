package coroutine

// context is the Machine Context of spec §3/§4.2 for the Windows x64 ABI:
// the System V set plus rdi/rsi (non-volatile on Windows, volatile on
// SysV), the callee-saved XMM registers xmm6-xmm15, and the four TIB stack
// fields read from gs:[0x30] (spec §4.2/§6).
//
// R14 is absent for the same reason as on the Unix build: the Go runtime
// reserves it as the current-g register on amd64 regardless of OS, so a
// coroutine switch (which never changes the running goroutine, only its
// active stack region) must never touch it.
//
// Field order is load-bearing: switch_windows_amd64.s addresses every field
// by its constant byte offset below, not by name.
type context struct {
	rip   uintptr // +0
	rsp   uintptr // +8
	rbp   uintptr // +16
	rbx   uintptr // +24
	rdi   uintptr // +32
	rsi   uintptr // +40
	r12   uintptr // +48
	r13   uintptr // +56
	r15   uintptr // +64
	mxcsr uint32  // +72
	fpcw  uint16  // +76
	_pad  uint16
	xmm6  [16]byte // +80
	xmm7  [16]byte // +96
	xmm8  [16]byte // +112
	xmm9  [16]byte // +128
	xmm10 [16]byte // +144
	xmm11 [16]byte // +160
	xmm12 [16]byte // +176
	xmm13 [16]byte // +192
	xmm14 [16]byte // +208
	xmm15 [16]byte // +224

	stackBase    uintptr // +240 TIB StackBase,         gs:[0x30]+0x08
	stackLimit   uintptr // +248 TIB StackLimit,        gs:[0x30]+0x10
	deallocStack uintptr // +256 TIB DeallocationStack, gs:[0x30]+0x1478
	fiberStorage uintptr // +264 TIB FiberStorage,      gs:[0x30]+0x20
}

// Offsets into context, mirrored in switch_windows_amd64.s. Keep in sync.
const (
	ctxRIP          = 0
	ctxRSP          = 8
	ctxRBP          = 16
	ctxRBX          = 24
	ctxRDI          = 32
	ctxRSI          = 40
	ctxR12          = 48
	ctxR13          = 56
	ctxR15          = 64
	ctxMXCSR        = 72
	ctxFPCW         = 76
	ctxXMM6         = 80
	ctxStackBase    = 240
	ctxStackLimit   = 248
	ctxDeallocStack = 256
	ctxFiberStorage = 264
	ctxSize         = 272
)

// setEntry prepares ctx as the synthetic Machine Context built by Init
// (spec §4.3): rip targets the trampoline, rsp is the coroutine stack's
// initial 16-byte-aligned top, r13 preloads the handle pointer, and the TIB
// fields describe the coroutine's own stack so the OS and debugger see
// correct bounds once this context is switched to.
func (c *context) setEntry(sp uintptr, handle uintptr, stackLo, stackHi uintptr) {
	assertf(sp&(stackAlignment-1) == 0, "setEntry: sp %#x is not 16-byte aligned", sp)
	assertf(stackLo < stackHi, "setEntry: stackLo %#x is not below stackHi %#x", stackLo, stackHi)
	*c = context{}
	c.rip = trampolineAddr()
	c.rsp = sp
	c.r13 = handle
	c.stackBase = stackHi
	c.stackLimit = stackLo
	c.deallocStack = stackLo
	c.fiberStorage = 0
}
