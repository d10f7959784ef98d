//go:build (linux || darwin) && amd64

package coroutine

import (
	"errors"

	"golang.org/x/sys/unix"
)

// allocOwnedStack implements the Unix half of spec §4.1: round the
// requested size up to a page multiple, add two guard pages when enabled,
// mmap anonymous-private with a stack hint, then mprotect the flanking
// pages to PROT_NONE.
func allocOwnedStack(cfg stackConfig) (ownedStack, error) {
	pageSize := uintptr(unix.Getpagesize())

	size := alignUp(cfg.requestedSize, pageSize)
	if size == 0 {
		size = pageSize
	}

	extentSize := size
	if cfg.guardPages {
		extentSize += 2 * pageSize
	}

	mapping, err := unix.Mmap(-1, 0, int(extentSize),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON|unixStackMapFlag)
	if err != nil {
		return ownedStack{}, errors.Join(ErrAllocFailed, ErrMapFailed, err)
	}

	extentBase := uintptr(unsafeSliceData(mapping))
	extent := stackRegion{lo: extentBase, hi: extentBase + extentSize}

	usable := extent
	if cfg.guardPages {
		usable = stackRegion{lo: extent.lo + pageSize, hi: extent.hi - pageSize}
		lowGuard := unsafeBytesAt(extent.lo, pageSize)
		highGuard := unsafeBytesAt(usable.hi, pageSize)
		if err := unix.Mprotect(lowGuard, unix.PROT_NONE); err != nil {
			_ = unix.Munmap(mapping)
			return ownedStack{}, errors.Join(ErrProtectFailed, err)
		}
		if err := unix.Mprotect(highGuard, unix.PROT_NONE); err != nil {
			_ = unix.Munmap(mapping)
			return ownedStack{}, errors.Join(ErrProtectFailed, err)
		}
	}

	usable.lo = alignUp(usable.lo, stackAlignment)
	usable.hi = alignDown(usable.hi, stackAlignment)

	return ownedStack{
		usable:      usable,
		extent:      extent,
		guardPages:  cfg.guardPages,
		unixMapping: true,
	}, nil
}

func freeOwnedStack(s ownedStack) error {
	b := unsafeBytesAt(s.extent.lo, s.extent.size())
	if err := unix.Munmap(b); err != nil {
		return errors.Join(ErrUnmapFailed, err)
	}
	return nil
}
