// Package coroutine implements asymmetric stackful coroutines for x86-64
// user space on Windows, Linux and macOS.
//
// A [Handle] is a callable body of code that runs on its own private stack.
// When the body voluntarily suspends by calling [Yield], control returns to
// whoever most recently called [Handle.Run]; the next Run resumes the body
// at the instruction right after that Yield, with every local variable in
// the body's frame intact. Only one coroutine runs at a time per owning
// thread — this is cooperative, not preemptive, multitasking, and there is
// no scheduler: the caller of Run is the scheduler.
//
// # The Context-Switch Engine
//
// Everything interesting lives in the context-switch engine: allocating and
// optionally guarding a private stack (see [WithStackSize],
// [WithGuardPages], [WithBuffer]), building a synthetic machine context that
// can be "returned into" on the first Run, and saving/restoring the exact
// set of non-volatile registers mandated by the platform ABI — including the
// x87 control word, MXCSR, and on Windows the four Thread Information Block
// stack fields — across every switch. This is handwritten Plan9 assembly;
// none of it can be expressed in portable Go.
//
// # Basic Use
//
//	type fibArgs struct{ out *uint64 }
//
//	proc := func(h *coroutine.Handle[fibArgs], a fibArgs) {
//		var x, y uint64 = 0, 1
//		for {
//			*a.out = x
//			coroutine.Yield(h)
//			x, y = y, x+y
//		}
//	}
//
//	h := coroutine.New(proc)
//	var n uint64
//	_ = h.Init(fibArgs{out: &n}, coroutine.WithStackSize(64*1024))
//	defer h.Deinit()
//	for i := 0; i < 10; i++ {
//		_ = h.Run()
//	}
//
// # Thread Affinity
//
// A coroutine is pinned to the goroutine that calls [Handle.Init], from the
// moment Init performs its post-init handshake. Calling [Handle.Run] from
// any other goroutine is a contract violation ([ErrWrongThread]). There is
// no migration and no symmetric transfer between peer coroutines — only the
// goroutine that resumed a coroutine can be the target of its next Yield.
//
// If the stack-switching and OS-thread identity need to line up exactly —
// for an API that must run on a specific OS thread, not just a specific
// goroutine — call [runtime.LockOSThread] before [Handle.Init] in the
// goroutine that will own the coroutine.
//
// # No Unwinding Across The Boundary
//
// Because the switch routine jumps rather than calls, neither side's
// deferred cleanup runs through the other stack. A body that holds
// resources beyond its per-coroutine temporary [Arena] must release them
// before its last Yield or return — [Handle.Deinit] releases the stack, but
// never runs anything inside the body. See [Handle.Deinit] for details.
//
// # Diagnostics
//
// Built with the coroutine_watermark tag, [Handle.CheckStackUsage] reports
// a high-watermark estimate of stack usage via sentinel-byte scanning. It is
// advisory; the real guarantee against overflow is the guard page installed
// by [WithGuardPages] (on by default).
package coroutine
