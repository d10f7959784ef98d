package coroutine

// CheckStackUsage reports how much of h's stack the coroutine has touched,
// via the sentinel-fill watermark diagnostic of spec §4.7: the stack is
// filled with a recognizable byte pattern at Init, and the lowest address at
// which that pattern no longer holds marks how deep execution has actually
// reached.
//
// It's only meaningful when built with the coroutine_watermark build tag;
// otherwise, on an initialized handle, it reports (false, 0, 0,
// [ErrDiagnosticsDisabled]), so
// callers don't need a separate build-tagged code path of their own just to
// call it.
func (h *Handle[A]) CheckStackUsage() (overflow bool, touchedBytes uintptr, ratio float64, err error) {
	if !h.initialized {
		return false, 0, 0, ErrNotInitialized
	}
	touched, r, ok := measureWatermark(h.region)
	if !ok {
		return false, 0, 0, ErrDiagnosticsDisabled
	}
	return touched == h.region.size(), touched, r, nil
}
