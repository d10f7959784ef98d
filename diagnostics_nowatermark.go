//go:build !coroutine_watermark

package coroutine

type watermarkState struct{}

func fillWatermark(_ *watermarkState, _ stackRegion) {}

func checkWatermark(_ *watermarkState, _ stackRegion) error { return nil }

func measureWatermark(_ stackRegion) (touched uintptr, ratio float64, ok bool) {
	return 0, 0, false
}
