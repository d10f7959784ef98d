//go:build !coroutine_debug

package coroutine

// debugEnabled mirrors spec §4.8's ASSERT knob: without the coroutine_debug
// tag, assertions compile away to nothing, the same way the Go runtime
// itself gates raceenabled-style checks.
const debugEnabled = false

func assertf(cond bool, format string, args ...any) {}
