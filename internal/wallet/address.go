package wallet

import (
	"fmt"

	"github.com/seedcash/seedcash/internal/wallet/bitcoin"
)

// AddressFormat selects a receiving-address text encoding.
type AddressFormat string

// Supported address formats.
const (
	// FormatLegacy is the Base58Check P2PKH encoding.
	FormatLegacy AddressFormat = "legacy"

	// FormatCashAddr is the bitcoincash: bech32-style encoding.
	FormatCashAddr AddressFormat = "cashaddr"
)

// ParseAddressFormat parses a format name.
func ParseAddressFormat(s string) (AddressFormat, error) {
	switch AddressFormat(s) {
	case FormatLegacy:
		return FormatLegacy, nil
	case FormatCashAddr:
		return FormatCashAddr, nil
	}
	return "", fmt.Errorf("unknown address format %q (want %q or %q)", s, FormatLegacy, FormatCashAddr)
}

// legacyVersionByte is the P2PKH version prefix.
const legacyVersionByte = 0x00

// EncodeAddress renders a compressed public key in the requested format.
func EncodeAddress(pubKey []byte, format AddressFormat) (string, error) {
	switch format {
	case FormatLegacy:
		return LegacyAddress(pubKey)
	case FormatCashAddr:
		return CashAddr(pubKey)
	}
	return "", fmt.Errorf("unknown address format %q", format)
}

// LegacyAddress encodes a compressed public key as a Base58Check P2PKH
// address: Base58Check(0x00 || hash160(pubKey)).
func LegacyAddress(pubKey []byte) (string, error) {
	if len(pubKey) != PubKeyLen {
		return "", fmt.Errorf("%w: public key must be %d bytes", ErrInvalidEncodingInput, PubKeyLen)
	}

	payload := make([]byte, 0, 21)
	payload = append(payload, legacyVersionByte)
	payload = append(payload, bitcoin.Hash160(pubKey)...)
	return bitcoin.Base58CheckEncode(payload), nil
}

// DecodeLegacyAddress decodes a P2PKH address and returns its 20-byte
// hash160. The Base58Check checksum and version byte are verified.
func DecodeLegacyAddress(addr string) ([]byte, error) {
	payload, err := bitcoin.Base58CheckDecode(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncodingInput, err)
	}
	if len(payload) != 21 || payload[0] != legacyVersionByte {
		return nil, fmt.Errorf("%w: not a P2PKH payload", ErrInvalidEncodingInput)
	}
	return payload[1:], nil
}
