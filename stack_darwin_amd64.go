package coroutine

// unixStackMapFlag: macOS has no MAP_STACK flag (that hint is Linux-only);
// a plain anonymous-private mapping is all mmap(2) supports or needs here.
const unixStackMapFlag = 0
