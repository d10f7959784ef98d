package coroutine

import "testing"

func TestAlignUpDown(t *testing.T) {
	if got := alignUp(1, 16); got != 16 {
		t.Errorf("alignUp(1, 16) = %d, want 16", got)
	}
	if got := alignUp(16, 16); got != 16 {
		t.Errorf("alignUp(16, 16) = %d, want 16", got)
	}
	if got := alignDown(31, 16); got != 16 {
		t.Errorf("alignDown(31, 16) = %d, want 16", got)
	}
	if got := alignDown(32, 16); got != 32 {
		t.Errorf("alignDown(32, 16) = %d, want 32", got)
	}
}

func TestStackRegion(t *testing.T) {
	r := stackRegion{lo: 100, hi: 200}
	if !r.contains(100) {
		t.Error("lo should be contained")
	}
	if !r.contains(199) {
		t.Error("hi-1 should be contained")
	}
	if r.contains(200) {
		t.Error("hi is one past the end and must not be contained")
	}
	if r.size() != 100 {
		t.Errorf("size() = %d, want 100", r.size())
	}
}

func TestClipBorrowedBuffer(t *testing.T) {
	buf := make([]byte, 4096)
	r, err := clipBorrowedBuffer(buf)
	if err != nil {
		t.Fatalf("clipBorrowedBuffer: %v", err)
	}
	if r.lo%stackAlignment != 0 {
		t.Errorf("lo = %#x is not %d-byte aligned", r.lo, stackAlignment)
	}
	if r.hi%stackAlignment != 0 {
		t.Errorf("hi = %#x is not %d-byte aligned", r.hi, stackAlignment)
	}
	if r.size() == 0 {
		t.Error("expected a non-empty usable region from a 4096-byte buffer")
	}
}

func TestClipBorrowedBufferRejectsEmpty(t *testing.T) {
	if _, err := clipBorrowedBuffer(nil); err == nil {
		t.Error("expected an error for an empty buffer")
	}
	if _, err := clipBorrowedBuffer(make([]byte, 0)); err == nil {
		t.Error("expected an error for a zero-length buffer")
	}
}

func TestDefaultStackConfig(t *testing.T) {
	cfg := defaultStackConfig()
	if cfg.requestedSize != DefaultStackSize {
		t.Errorf("requestedSize = %d, want %d", cfg.requestedSize, DefaultStackSize)
	}
	if !cfg.guardPages {
		t.Error("guard pages should default to on")
	}
	if cfg.arenaSize != DefaultArenaSize {
		t.Errorf("arenaSize = %d, want %d", cfg.arenaSize, DefaultArenaSize)
	}
}
