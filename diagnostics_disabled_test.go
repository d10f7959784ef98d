//go:build !coroutine_watermark

package coroutine_test

import (
	"errors"
	"testing"

	coroutine "github.com/osor-io/osor-coroutine"
)

// Without the coroutine_watermark build tag, CheckStackUsage exists but is
// inert — callers don't need a separate code path just to call it.
func TestCheckStackUsageDisabledByDefault(t *testing.T) {
	h := coroutine.New(func(h *coroutine.Handle[struct{}], _ struct{}) {})
	if err := h.Init(struct{}{}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer h.Deinit()

	_, _, _, err := h.CheckStackUsage()
	if !errors.Is(err, coroutine.ErrDiagnosticsDisabled) {
		t.Errorf("CheckStackUsage error = %v, want ErrDiagnosticsDisabled", err)
	}
}
