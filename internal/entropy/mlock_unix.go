//go:build !windows

package entropy

import "golang.org/x/sys/unix"

// mlock pins the region holding data so it cannot be swapped out.
// Returns false when the platform or resource limits refuse.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// munlock releases a region pinned by mlock.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
