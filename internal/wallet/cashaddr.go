package wallet

import (
	"fmt"
	"strings"

	"github.com/seedcash/seedcash/internal/wallet/bitcoin"
)

// CashAddrPrefix is the human-readable prefix of mainnet addresses.
const CashAddrPrefix = "bitcoincash"

// cashAddrCharset is the 32-symbol alphabet shared with bech32 (BIP-173).
const cashAddrCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// cashAddrCharsetRev maps charset bytes to their 5-bit values. -1 = invalid.
var cashAddrCharsetRev [128]int8

//nolint:gochecknoinits // builds the constant reverse-lookup table
func init() {
	for i := range cashAddrCharsetRev {
		cashAddrCharsetRev[i] = -1
	}
	for i := 0; i < len(cashAddrCharset); i++ {
		cashAddrCharsetRev[cashAddrCharset[i]] = int8(i)
	}
}

// cashAddrPolymod is the degree-40 polynomial checksum over 5-bit
// symbols. The generator constants are fixed by the CashAddr
// specification; the scheme is a BCH error-detecting code and any
// deviation breaks detection of mistyped addresses.
func cashAddrPolymod(values []byte) uint64 {
	c := uint64(1)
	for _, d := range values {
		c0 := c >> 35
		c = (c&0x07ffffffff)<<5 ^ uint64(d)
		if c0&0x01 != 0 {
			c ^= 0x98f2bc8e61
		}
		if c0&0x02 != 0 {
			c ^= 0x79b76d99e2
		}
		if c0&0x04 != 0 {
			c ^= 0xf33e5fb3c4
		}
		if c0&0x08 != 0 {
			c ^= 0xae2eabe2a8
		}
		if c0&0x10 != 0 {
			c ^= 0x1e4f43e470
		}
	}
	return c ^ 1
}

// convertBits regroups data from fromBits-wide to toBits-wide values,
// most significant bits first. With pad set, remaining bits are padded
// with zeros; without it, nonzero padding is an error.
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint
	maxv := uint32(1)<<toBits - 1
	out := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))

	for _, v := range data {
		if uint(v)>>fromBits != 0 {
			return nil, fmt.Errorf("%w: value %d exceeds %d bits", ErrInvalidEncodingInput, v, fromBits)
		}
		acc = acc<<fromBits | uint32(v)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits&maxv))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxv != 0 {
		return nil, fmt.Errorf("%w: invalid padding", ErrInvalidEncodingInput)
	}
	return out, nil
}

// cashAddrChecksum computes the eight 5-bit checksum symbols for a
// payload: polymod((prefix chars & 0x1f) || 0 || payload || eight zeros),
// low 40 bits split big-endian into 5-bit groups.
func cashAddrChecksum(prefix string, payload []byte) []byte {
	values := make([]byte, 0, len(prefix)+1+len(payload)+8)
	for i := 0; i < len(prefix); i++ {
		values = append(values, prefix[i]&0x1f)
	}
	values = append(values, 0)
	values = append(values, payload...)
	values = append(values, 0, 0, 0, 0, 0, 0, 0, 0)

	mod := cashAddrPolymod(values)
	checksum := make([]byte, 8)
	for i := 0; i < 8; i++ {
		checksum[i] = byte(mod >> uint(5*(7-i)) & 0x1f)
	}
	return checksum
}

// CashAddr encodes a compressed public key as a mainnet P2PKH CashAddr
// string: "bitcoincash:" plus the base32 encoding of the 5-bit-regrouped
// versioned hash160 and its checksum.
func CashAddr(pubKey []byte) (string, error) {
	if len(pubKey) != PubKeyLen {
		return "", fmt.Errorf("%w: public key must be %d bytes", ErrInvalidEncodingInput, PubKeyLen)
	}

	payload := make([]byte, 0, 21)
	payload = append(payload, 0x00) // P2PKH type, 160-bit hash
	payload = append(payload, bitcoin.Hash160(pubKey)...)

	payload5, err := convertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	checksum := cashAddrChecksum(CashAddrPrefix, payload5)

	var sb strings.Builder
	sb.Grow(len(CashAddrPrefix) + 1 + len(payload5) + len(checksum))
	sb.WriteString(CashAddrPrefix)
	sb.WriteByte(':')
	for _, v := range payload5 {
		sb.WriteByte(cashAddrCharset[v])
	}
	for _, v := range checksum {
		sb.WriteByte(cashAddrCharset[v])
	}
	return sb.String(), nil
}

// DecodeCashAddr decodes a mainnet P2PKH CashAddr string and returns its
// 20-byte hash160 after verifying the polymod checksum.
func DecodeCashAddr(addr string) ([]byte, error) {
	const prefixed = CashAddrPrefix + ":"
	if !strings.HasPrefix(addr, prefixed) {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidEncodingInput, prefixed)
	}

	body := addr[len(prefixed):]
	if len(body) < 9 {
		return nil, fmt.Errorf("%w: address too short", ErrInvalidEncodingInput)
	}

	data := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= 128 || cashAddrCharsetRev[c] < 0 {
			return nil, fmt.Errorf("%w: invalid character %q", ErrInvalidEncodingInput, c)
		}
		data[i] = byte(cashAddrCharsetRev[c])
	}

	// Checksum over prefix || 0 || data must come out zero.
	values := make([]byte, 0, len(CashAddrPrefix)+1+len(data))
	for i := 0; i < len(CashAddrPrefix); i++ {
		values = append(values, CashAddrPrefix[i]&0x1f)
	}
	values = append(values, 0)
	values = append(values, data...)
	if cashAddrPolymod(values) != 0 {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidEncodingInput)
	}

	payload, err := convertBits(data[:len(data)-8], 5, 8, false)
	if err != nil {
		return nil, err
	}
	if len(payload) != 21 || payload[0] != 0x00 {
		return nil, fmt.Errorf("%w: not a P2PKH payload", ErrInvalidEncodingInput)
	}
	return payload[1:], nil
}
