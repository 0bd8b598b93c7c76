package entropy

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// lockingDisabled turns off mlock attempts process-wide. Zeroing on
// Destroy is unaffected.
//
//nolint:gochecknoglobals // process-wide policy switch
var lockingDisabled atomic.Bool

// SetMemoryLocking enables or disables memory locking for buffers
// allocated afterwards. Locking is on by default.
func SetMemoryLocking(enabled bool) {
	lockingDisabled.Store(!enabled)
}

// SecureBytes wraps a sensitive byte slice with best-effort memory
// locking and explicit zeroing.
type SecureBytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// NewSecureBytes allocates a zeroed buffer of the given size. The memory
// is locked when the platform allows it; allocation never fails on an
// mlock refusal.
func NewSecureBytes(size int) *SecureBytes {
	sb := &SecureBytes{data: make([]byte, size)}
	if !lockingDisabled.Load() {
		sb.locked = mlock(sb.data)
	}

	// Clear even if the caller forgets Destroy.
	runtime.SetFinalizer(sb, func(s *SecureBytes) {
		s.Destroy()
	})
	return sb
}

// SecureBytesFromSlice copies data into a fresh secure buffer. The
// caller should zero its own copy.
func SecureBytesFromSlice(data []byte) *SecureBytes {
	sb := NewSecureBytes(len(data))
	copy(sb.data, data)
	return sb
}

// Bytes returns the underlying slice, or nil after Destroy.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Len returns the buffer length, 0 after Destroy.
func (s *SecureBytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// IsLocked reports whether the memory is mlocked.
func (s *SecureBytes) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Destroy zeros the buffer, unlocks it, and drops the reference. Safe to
// call more than once.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	Zero(s.data)
	if s.locked {
		munlock(s.data)
		s.locked = false
	}
	s.data = nil
	runtime.SetFinalizer(s, nil)
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
