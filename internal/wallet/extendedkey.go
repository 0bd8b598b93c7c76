package wallet

import (
	"encoding/binary"
	"fmt"

	"github.com/seedcash/seedcash/internal/wallet/bitcoin"
)

// Extended key serialization constants. The version prefixes are the
// standard xprv/xpub values regardless of coin type; keeping them fixed
// is a deliberate compatibility choice.
const (
	xprvVersion uint32 = 0x0488ADE4
	xpubVersion uint32 = 0x0488B21E

	// extKeyPayloadLen is version(4) + depth(1) + fingerprint(4) +
	// index(4) + chainCode(32) + keyField(33).
	extKeyPayloadLen = 78
)

// ExtendedKey is a BIP32 extended key: key material plus the metadata
// needed to serialize it and derive children. Immutable once built.
type ExtendedKey struct {
	// Depth is the number of derivation hops from the master key.
	Depth uint8

	// ParentFingerprint is Hash160(parent pubkey)[0:4].
	ParentFingerprint [bitcoin.FingerprintLen]byte

	// ChildIndex is this key's child index; the top bit marks hardened.
	ChildIndex uint32

	// ChainCode is the 32-byte chain code.
	ChainCode []byte

	// Key is a 32-byte private scalar or a 33-byte compressed point,
	// per Private.
	Key []byte

	// Private marks Key as private material.
	Private bool
}

// Encode serializes the key as Base58Check with the fixed xprv/xpub
// version prefix. Returns ErrInvalidEncodingInput for wrong field widths.
func (k *ExtendedKey) Encode() (string, error) {
	if len(k.ChainCode) != ChainCodeLen {
		return "", fmt.Errorf("%w: chain code must be %d bytes", ErrInvalidEncodingInput, ChainCodeLen)
	}

	version := xpubVersion
	wantKeyLen := PubKeyLen
	if k.Private {
		version = xprvVersion
		wantKeyLen = PrivKeyLen
	}
	if len(k.Key) != wantKeyLen {
		return "", fmt.Errorf("%w: key must be %d bytes", ErrInvalidEncodingInput, wantKeyLen)
	}

	payload := make([]byte, 0, extKeyPayloadLen)
	payload = binary.BigEndian.AppendUint32(payload, version)
	payload = append(payload, k.Depth)
	payload = append(payload, k.ParentFingerprint[:]...)
	payload = binary.BigEndian.AppendUint32(payload, k.ChildIndex)
	payload = append(payload, k.ChainCode...)
	if k.Private {
		payload = append(payload, 0x00)
	}
	payload = append(payload, k.Key...)

	return bitcoin.Base58CheckEncode(payload), nil
}

// DecodeExtendedKey parses a Base58Check xprv/xpub string back into its
// fields, verifying the embedded double-SHA256 checksum. Any structural
// problem surfaces as ErrMalformedExtendedKey.
func DecodeExtendedKey(s string) (*ExtendedKey, error) {
	payload, err := bitcoin.Base58CheckDecode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedExtendedKey, err)
	}
	if len(payload) != extKeyPayloadLen {
		return nil, fmt.Errorf("%w: payload is %d bytes, want %d",
			ErrMalformedExtendedKey, len(payload), extKeyPayloadLen)
	}

	version := binary.BigEndian.Uint32(payload[0:4])
	var private bool
	switch version {
	case xprvVersion:
		private = true
	case xpubVersion:
		private = false
	default:
		return nil, fmt.Errorf("%w: unknown version 0x%08x", ErrMalformedExtendedKey, version)
	}

	k := &ExtendedKey{
		Depth:      payload[4],
		ChildIndex: binary.BigEndian.Uint32(payload[9:13]),
		ChainCode:  append([]byte(nil), payload[13:45]...),
		Private:    private,
	}
	copy(k.ParentFingerprint[:], payload[5:9])

	keyField := payload[45:extKeyPayloadLen]
	if private {
		if keyField[0] != 0x00 {
			return nil, fmt.Errorf("%w: private key field must start with 0x00", ErrMalformedExtendedKey)
		}
		k.Key = append([]byte(nil), keyField[1:]...)
	} else {
		if keyField[0] != 0x02 && keyField[0] != 0x03 {
			return nil, fmt.Errorf("%w: public key field has prefix 0x%02x", ErrMalformedExtendedKey, keyField[0])
		}
		k.Key = append([]byte(nil), keyField...)
	}
	return k, nil
}

// Hardened reports whether the key's own child index is hardened.
func (k *ExtendedKey) Hardened() bool {
	return k.ChildIndex >= HardenedKeyStart
}
