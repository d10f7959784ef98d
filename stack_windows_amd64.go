package coroutine

import (
	"errors"

	"golang.org/x/sys/windows"
)

// allocOwnedStack implements the Windows half of spec §4.1: query the page
// size via GetNativeSystemInfo, round up, reserve+commit with VirtualAlloc,
// then mark the flanking pages PAGE_GUARD via VirtualProtect.
func allocOwnedStack(cfg stackConfig) (ownedStack, error) {
	var sysInfo windows.SystemInfo
	windows.GetNativeSystemInfo(&sysInfo)
	pageSize := uintptr(sysInfo.PageSize)
	if pageSize == 0 {
		pageSize = 4096
	}

	size := alignUp(cfg.requestedSize, pageSize)
	if size == 0 {
		size = pageSize
	}

	extentSize := size
	if cfg.guardPages {
		extentSize += 2 * pageSize
	}

	base, err := windows.VirtualAlloc(0, extentSize, windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return ownedStack{}, errors.Join(ErrAllocFailed, ErrMapFailed, err)
	}

	extent := stackRegion{lo: base, hi: base + extentSize}
	usable := extent

	if cfg.guardPages {
		usable = stackRegion{lo: extent.lo + pageSize, hi: extent.hi - pageSize}

		var oldProtect uint32
		if err := windows.VirtualProtect(extent.lo, pageSize, windows.PAGE_READWRITE|windows.PAGE_GUARD, &oldProtect); err != nil {
			_ = windows.VirtualFree(base, 0, windows.MEM_RELEASE)
			return ownedStack{}, errors.Join(ErrProtectFailed, err)
		}
		if err := windows.VirtualProtect(usable.hi, pageSize, windows.PAGE_READWRITE|windows.PAGE_GUARD, &oldProtect); err != nil {
			_ = windows.VirtualFree(base, 0, windows.MEM_RELEASE)
			return ownedStack{}, errors.Join(ErrProtectFailed, err)
		}
	}

	usable.lo = alignUp(usable.lo, stackAlignment)
	usable.hi = alignDown(usable.hi, stackAlignment)

	return ownedStack{
		usable:     usable,
		extent:     extent,
		guardPages: cfg.guardPages,
	}, nil
}

func freeOwnedStack(s ownedStack) error {
	if err := windows.VirtualFree(s.extent.lo, 0, windows.MEM_RELEASE); err != nil {
		return errors.Join(ErrUnmapFailed, err)
	}
	return nil
}
