// Package bitcoin provides the hash and Base58 primitives shared by the
// key-derivation and address-encoding code. RIPEMD160 is deprecated for new
// designs but is mandated by the Bitcoin Cash address and fingerprint
// formats, so it stays.
package bitcoin

import (
	"crypto/sha256"
	"errors"

	//nolint:gosec,staticcheck // G507,SA1019: RIPEMD160 is required by the address format
	"golang.org/x/crypto/ripemd160"
)

// FingerprintLen is the length in bytes of a key fingerprint.
const FingerprintLen = 4

// Hash160 computes RIPEMD160(SHA256(data)), the standard public key hash.
func Hash160(data []byte) []byte {
	first := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(first[:])
	return h.Sum(nil)
}

// DoubleSHA256 computes SHA256(SHA256(data)).
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Checksum returns the 4-byte double-SHA256 checksum of data, as appended
// by Base58Check encodings.
func Checksum(data []byte) []byte {
	return DoubleSHA256(data)[:4]
}

// Fingerprint returns the first 4 bytes of Hash160(pubKey), used both as
// BIP32 parent-fingerprint metadata and as the wallet identifier.
func Fingerprint(pubKey []byte) [FingerprintLen]byte {
	var fp [FingerprintLen]byte
	copy(fp[:], Hash160(pubKey)[:FingerprintLen])
	return fp
}

// base58Alphabet is the Bitcoin Base58 alphabet.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// base58Rev maps ASCII bytes to their Base58 values. -1 = not in alphabet.
var base58Rev [128]int8

//nolint:gochecknoinits // builds the constant reverse-lookup table
func init() {
	for i := range base58Rev {
		base58Rev[i] = -1
	}
	for i := 0; i < len(base58Alphabet); i++ {
		base58Rev[base58Alphabet[i]] = int8(i)
	}
}

// ErrInvalidBase58 indicates a string that is not valid Base58, or whose
// Base58Check checksum does not verify.
var ErrInvalidBase58 = errors.New("invalid base58 encoding")

// Base58Encode encodes data to Base58. Leading zero bytes become leading
// '1' characters.
func Base58Encode(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	// log(256)/log(58) rounded up.
	size := (len(data)-zeros)*138/100 + 1
	buf := make([]byte, size)

	for _, b := range data[zeros:] {
		carry := int(b)
		for j := size - 1; j >= 0; j-- {
			carry += int(buf[j]) << 8
			buf[j] = byte(carry % 58)
			carry /= 58
		}
	}

	// Skip leading zero digits in the work buffer.
	j := 0
	for j < size && buf[j] == 0 {
		j++
	}

	out := make([]byte, 0, zeros+size-j)
	for i := 0; i < zeros; i++ {
		out = append(out, '1')
	}
	for _, d := range buf[j:] {
		out = append(out, base58Alphabet[d])
	}
	return string(out)
}

// Base58Decode decodes a Base58 string to bytes.
func Base58Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidBase58
	}

	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}

	// log(58)/log(256) rounded up.
	size := len(s)*733/1000 + 1
	buf := make([]byte, size)

	for i := zeros; i < len(s); i++ {
		c := s[i]
		if c >= 128 || base58Rev[c] < 0 {
			return nil, ErrInvalidBase58
		}
		carry := int(base58Rev[c])
		for j := size - 1; j >= 0; j-- {
			carry += int(buf[j]) * 58
			buf[j] = byte(carry % 256)
			carry /= 256
		}
	}

	j := 0
	for j < size && buf[j] == 0 {
		j++
	}

	out := make([]byte, zeros+size-j)
	copy(out[zeros:], buf[j:])
	return out, nil
}

// Base58CheckEncode appends the 4-byte double-SHA256 checksum to payload
// and encodes the result as Base58.
func Base58CheckEncode(payload []byte) string {
	data := make([]byte, 0, len(payload)+4)
	data = append(data, payload...)
	data = append(data, Checksum(payload)...)
	return Base58Encode(data)
}

// Base58CheckDecode decodes a Base58Check string and verifies its trailing
// checksum, returning the payload without the checksum.
func Base58CheckDecode(s string) ([]byte, error) {
	decoded, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 5 {
		return nil, ErrInvalidBase58
	}

	payload := decoded[:len(decoded)-4]
	want := Checksum(payload)
	got := decoded[len(decoded)-4:]
	for i := 0; i < 4; i++ {
		if got[i] != want[i] {
			return nil, ErrInvalidBase58
		}
	}
	return payload, nil
}
