package coroutine

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// bodyCrash records an unrecovered panic (or runtime.Goexit) from inside a
// coroutine body. Per spec §7, nothing propagates across a Run/Yield
// boundary on its own — a crash is instead captured here and reported to
// the caller of [Handle.Run] as an error, the nearest Go-idiomatic analogue
// of "the coroutine remains suspended and deinit will still release its
// stack, but state beyond the handle is undefined."
type bodyCrash struct {
	value any
	stack []byte
}

func (c *bodyCrash) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "coroutine: body panicked: %v\n\n", c.value)
	b.Write(c.stack)
	return b.String()
}

func (c *bodyCrash) Unwrap() error {
	if err, ok := c.value.(error); ok {
		return err
	}
	return nil
}

// guardBody runs f, converting any panic or runtime.Goexit escaping it into
// a non-nil *bodyCrash instead of letting it unwind through the entry shim
// and the asm trampoline below it, which cannot be unwound.
func guardBody(f func()) (crash *bodyCrash) {
	completed := false
	defer func() {
		if completed {
			return
		}
		v := recover()
		if v == nil {
			crash = &bodyCrash{value: "runtime.Goexit called from within a coroutine body", stack: debug.Stack()}
			return
		}
		crash = &bodyCrash{value: v, stack: debug.Stack()}
	}()
	f()
	completed = true
	return nil
}
