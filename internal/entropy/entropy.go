// Package entropy provides the cryptographically secure random source
// and secure in-memory handling for seeds and private key material.
package entropy

import (
	"crypto/rand"
	"io"
)

// Reader is the cryptographically secure random source. It wraps
// crypto/rand.Reader and is a variable only so tests can substitute a
// deterministic stream.
//
//nolint:gochecknoglobals // package-level RNG is required for testability
var Reader io.Reader = rand.Reader

// RandomBytes draws n fresh random bytes from Reader. Output is never
// cached or reused across calls.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// SecureRandomBytes draws n random bytes directly into a SecureBytes
// container.
func SecureRandomBytes(n int) (*SecureBytes, error) {
	sb := NewSecureBytes(n)
	if _, err := io.ReadFull(Reader, sb.Bytes()); err != nil {
		sb.Destroy()
		return nil, err
	}
	return sb, nil
}
