package coroutine

import "unsafe"

// Proc is the body of a coroutine (spec §4.5's packed-argument procedure):
// h is the coroutine's own handle, for calling [Yield]; args is the packed
// argument record the caller passed to [Handle.Init]. A mismatched argument
// type is a compile error, the Go-native analogue of the C variant's
// BadArity static assertion.
type Proc[A any] func(h *Handle[A], args A)

// handleBase holds everything about a coroutine that doesn't depend on its
// argument type A. It's embedded as the first field of [Handle], so a
// pointer to a Handle and a pointer to its handleBase share one address —
// the trampoline hands that address back to Go as a bare unsafe.Pointer,
// and enterFn (a closure fixed at New time, closing over the concrete
// Handle[A]) is how a non-generic entry point reaches generic code (spec
// §6's getg-based technique solves the stack-bounds half of this problem;
// this solves the "recover the concrete type" half).
type handleBase struct {
	callerCtx context
	coroCtx   context

	region        stackRegion
	stack         ownedStack
	hasOwnedStack bool
	borrowedStack []byte // retains a WithBuffer slice so the GC can't reclaim it while region aliases it

	initialized bool
	running     bool
	bodyStarted bool
	done        bool

	ownerG     unsafe.Pointer // the *rtg that called Init, for ErrWrongThread
	runningOnG unsafe.Pointer // the *rtg currently inside Run, for Yield's check

	enterFn func()

	watermark watermarkState
}

// Handle is a coroutine handle (spec §3's Coroutine Handle / Data Model):
// one goroutine-affine, asymmetric, stackful coroutine, created with [New],
// prepared with [Init], driven with [Run], and torn down with [Deinit].
//
// A zero Handle is not usable; only [New] produces one.
type Handle[A any] struct {
	handleBase

	proc  Proc[A]
	args  A
	env   Environment[A]
	crash *bodyCrash
}

// New creates an uninitialized coroutine handle for proc. Call [Handle.Init]
// before the first [Handle.Run].
func New[A any](proc Proc[A]) *Handle[A] {
	h := &Handle[A]{proc: proc}
	h.enterFn = h.enter
	return h
}

// Init prepares h to run: it provisions a stack (owned, unless [WithBuffer]
// supplies one), builds the temporary arena, constructs the synthetic
// Machine Context targeting the trampoline, and primes the coroutine by
// switching into it once so the post-init handshake runs before the first
// real [Handle.Run] (spec §4.3's two-step entry: Init only primes, it never
// runs the body).
//
// Init pins h to the calling goroutine: every subsequent [Handle.Run] must
// be called from the same goroutine, or it fails with [ErrWrongThread].
func (h *Handle[A]) Init(args A, opts ...Option) error {
	if h.initialized {
		return ErrAlreadyInitialized
	}

	cfg := defaultStackConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		region  stackRegion
		owned   ownedStack
		isOwned bool
	)
	if cfg.buffer != nil {
		r, err := clipBorrowedBuffer(cfg.buffer)
		if err != nil {
			return err
		}
		region = r
		h.borrowedStack = cfg.buffer
	} else {
		st, err := allocOwnedStack(cfg)
		if err != nil {
			return err
		}
		region = st.usable
		owned = st
		isOwned = true
	}

	h.region = region
	h.stack = owned
	h.hasOwnedStack = isOwned
	h.args = args
	h.env = Environment[A]{handle: h, arena: newArena(cfg.arenaSize)}
	h.ownerG = getg()
	h.done = false
	h.bodyStarted = false

	fillWatermark(&h.watermark, region)

	sp := alignDown(region.hi, stackAlignment)
	h.coroCtx.setEntry(sp, uintptr(unsafe.Pointer(&h.handleBase)), region.lo, region.hi)

	h.initialized = true

	// Prime: run the post-init handshake on the coroutine's own stack, then
	// come straight back. The body itself doesn't run until the first
	// caller-visible Run.
	h.running = true
	h.runningOnG = h.ownerG
	bounds := captureGoroutineStackBounds()
	setGoroutineStackBounds(region)
	switchContext(&h.callerCtx, &h.coroCtx)
	restoreGoroutineStackBounds(bounds)
	h.running = false

	return nil
}

// Run resumes h: if this is the first call after [Init], it starts the
// body; otherwise it resumes the body right after its last [Yield]. Run
// blocks until the body yields or returns.
//
// By default, if the body returns during this call, Run deinitializes h
// before returning, matching spec §4.4's `deinit_when_done := true` default.
// Pass [WithDeinitWhenDone](false) to keep h initialized so its final state
// (stack usage, output arguments) can be inspected before an explicit
// [Handle.Deinit].
func (h *Handle[A]) Run(opts ...RunOption) error {
	if !h.initialized {
		return ErrNotInitialized
	}
	if h.done {
		return ErrAlreadyDone
	}
	if getg() != h.ownerG {
		return ErrWrongThread
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h.running = true
	h.runningOnG = h.ownerG
	bounds := captureGoroutineStackBounds()
	setGoroutineStackBounds(h.region)
	switchContext(&h.callerCtx, &h.coroCtx)
	restoreGoroutineStackBounds(bounds)
	h.running = false

	runErr := error(nil)
	if h.crash != nil {
		runErr = h.crash
	}

	if h.done && cfg.deinitWhenDone {
		if err := h.Deinit(); err != nil && runErr == nil {
			runErr = err
		}
	}

	return runErr
}

// Yield suspends the coroutine currently running h, returning control to
// whichever call to [Handle.Run] resumed it. It must be called from inside
// h's own body, on the goroutine that's running it; any other use is a
// contract violation and panics with [ErrNotInCoroutine].
func Yield[A any](h *Handle[A]) {
	if !h.running || getg() != h.runningOnG {
		panic(ErrNotInCoroutine)
	}
	assertf(h.initialized, "Yield: handle is running but not initialized")
	switchContext(&h.coroCtx, &h.callerCtx)
}

// IsDone reports whether h's body has returned.
func (h *Handle[A]) IsDone() bool { return h.done }

// IsInitialized reports whether h currently holds live resources — true
// from a successful [Init] until the matching [Deinit].
func (h *Handle[A]) IsInitialized() bool { return h.initialized }

// Env returns h's Execution Environment: its temporary arena and a
// back-reference to h itself. It's valid only while h is initialized.
func (h *Handle[A]) Env() *Environment[A] { return &h.env }

// Deinit releases h's resources. It's idempotent: calling it on a handle
// that's already deinitialized, or was never initialized, is a no-op. If
// the watermark diagnostic build is active and the sentinel scan finds the
// coroutine's whole usable stack touched, Deinit still releases everything
// but returns a [StackOverflowSuspected] error (spec §4.7).
func (h *Handle[A]) Deinit() error {
	if !h.initialized {
		return nil
	}

	overflow := checkWatermark(&h.watermark, h.region)

	if h.hasOwnedStack {
		if err := freeOwnedStack(h.stack); err != nil {
			return err
		}
	}

	h.initialized = false
	h.done = false
	h.crash = nil
	h.borrowedStack = nil

	return overflow
}

// enter is the generic entry point reached, through goEntryDispatch and
// enterFn, the first time h's synthetic Machine Context is switched into
// (spec §4.3). Later switches into h's context do not pass through the
// trampoline again: they resume right after the switchContext call that last
// left the coroutine, here or in [Yield]. It never returns through the
// normal Go call mechanism: it only ever leaves by switching back to the
// caller.
func (h *Handle[A]) enter() {
	if !h.bodyStarted {
		h.bodyStarted = true
		switchContext(&h.coroCtx, &h.callerCtx)
	}

	assertf(!h.done, "enter: re-entered a handle whose body already returned")

	h.crash = guardBody(func() {
		h.proc(h, h.args)
	})
	h.done = true
	switchContext(&h.coroCtx, &h.callerCtx)
}
