//go:build windows

package entropy

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mlock pins the region holding data so it cannot be swapped out.
// Returns false when the platform refuses.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&data[0])), uintptr(len(data))) == nil
}

// munlock releases a region pinned by mlock.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = windows.VirtualUnlock(uintptr(unsafe.Pointer(&data[0])), uintptr(len(data)))
}
