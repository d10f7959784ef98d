//go:build coroutine_debug

package coroutine

import "fmt"

// debugEnabled mirrors spec §4.8's ASSERT knob: built with the
// coroutine_debug tag, assert panics on a violated invariant instead of
// silently continuing into undefined behavior.
const debugEnabled = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("coroutine: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
