//go:build coroutine_watermark

package coroutine_test

import (
	"errors"
	"testing"

	coroutine "github.com/osor-io/osor-coroutine"
)

// deepRecursion keeps roughly 256 bytes of live stack per level across n
// levels of recursion, so a caller can drive how much of a coroutine's
// stack gets touched without depending on compiler-specific frame sizes too
// precisely.
func deepRecursion(n int) {
	if n <= 0 {
		return
	}
	var pad [256]byte
	pad[0] = byte(n)
	deepRecursion(n - 1)
	_ = pad
}

func TestCheckStackUsageReportsTouchedBytes(t *testing.T) {
	h := coroutine.New(func(h *coroutine.Handle[struct{}], _ struct{}) {
		deepRecursion(4)
	})
	if err := h.Init(struct{}{}, coroutine.WithStackSize(64*1024)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer h.Deinit()

	if err := h.Run(coroutine.WithDeinitWhenDone(false)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	_, touched, ratio, err := h.CheckStackUsage()
	if err != nil {
		t.Fatalf("CheckStackUsage: %v", err)
	}
	if touched == 0 {
		t.Error("expected some stack usage to be reported")
	}
	if ratio <= 0 || ratio > 1 {
		t.Errorf("ratio out of range: %v", ratio)
	}
}

// TestDeinitReportsOverflowSuspected drives a small, guard-page-free stack
// to exhaustion and expects Deinit to flag it. Guard pages are
// deliberately disabled here: the watermark diagnostic is a heuristic, not
// the safety mechanism, and this test wants to exercise the heuristic
// without risking the process actually faulting on the same run.
func TestDeinitReportsOverflowSuspected(t *testing.T) {
	h := coroutine.New(func(h *coroutine.Handle[struct{}], _ struct{}) {
		deepRecursion(100)
	})
	if err := h.Init(struct{}{}, coroutine.WithStackSize(4096), coroutine.WithGuardPages(false)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := h.Run(coroutine.WithDeinitWhenDone(false)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var overflow *coroutine.StackOverflowSuspected
	err := h.Deinit()
	if err == nil {
		t.Fatal("expected Deinit to report suspected overflow on an exhausted tiny stack")
	}
	if !errors.As(err, &overflow) {
		t.Errorf("Deinit error is not a StackOverflowSuspected: %v", err)
	}
}
