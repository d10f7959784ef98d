package coroutine

// Option configures a [Handle] at [Handle.Init], replacing the C original's
// compile-time parameters (spec §4.8) with per-handle settings resolved at
// Init time — each Handle picks its own stack size, guard pages and arena
// size independently, which the spec never forbids.
type Option func(*stackConfig)

// WithStackSize overrides [DefaultStackSize] for one handle's owned stack.
// It has no effect combined with [WithBuffer], which supplies the stack
// memory directly.
func WithStackSize(n uintptr) Option {
	return func(c *stackConfig) { c.requestedSize = n }
}

// WithGuardPages toggles GUARD_PAGES (spec §4.8) for one handle's owned
// stack; guard pages are on by default. Has no effect combined with
// [WithBuffer]: a caller-supplied buffer is never mprotect'd or
// VirtualProtect'd.
func WithGuardPages(enabled bool) Option {
	return func(c *stackConfig) { c.guardPages = enabled }
}

// WithArenaSize overrides [DefaultArenaSize] (spec §4.8's
// TEMPORARY_STORAGE_SIZE) for one handle's temporary arena.
func WithArenaSize(n uintptr) Option {
	return func(c *stackConfig) { c.arenaSize = n }
}

// WithBuffer supplies the coroutine's stack memory directly (spec §4.1's
// caller-supplied-stack variant), bypassing the stack provider. The buffer
// is never released by [Handle.Deinit] and is never guard-paged; the caller
// must keep it alive for as long as the handle stays initialized.
func WithBuffer(buf []byte) Option {
	return func(c *stackConfig) { c.buffer = buf }
}

// runConfig is [Handle.Run]'s per-call configuration (spec §4.4's
// `run(handle, deinit_when_done := true)`).
type runConfig struct {
	deinitWhenDone bool
}

func defaultRunConfig() runConfig {
	return runConfig{deinitWhenDone: true}
}

// RunOption configures one call to [Handle.Run].
type RunOption func(*runConfig)

// WithDeinitWhenDone overrides Run's default of deinitializing the handle
// automatically when the body returns during that Run (spec §4.4's
// `deinit_when_done` parameter). Pass false to inspect a just-finished
// handle — its [Handle.IsDone], [Handle.CheckStackUsage], and so on — before
// calling [Handle.Deinit] explicitly.
func WithDeinitWhenDone(enabled bool) RunOption {
	return func(c *runConfig) { c.deinitWhenDone = enabled }
}
