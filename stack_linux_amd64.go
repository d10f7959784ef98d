package coroutine

import "golang.org/x/sys/unix"

// unixStackMapFlag adds MAP_STACK (0x20000) on Linux, a hint that the
// mapping backs a thread/coroutine stack; it changes no observable
// behavior but is the flag spec §6 calls out explicitly.
const unixStackMapFlag = unix.MAP_STACK
