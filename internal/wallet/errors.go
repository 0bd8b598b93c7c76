package wallet

import "errors"

// Sentinel errors for the key engine. Every failure surfaces as one of
// these so callers can distinguish a bad word from a bad checksum without
// string matching.
var (
	// ErrInvalidMnemonicWord indicates a word that is not in the word list.
	ErrInvalidMnemonicWord = errors.New("word not in the mnemonic word list")

	// ErrInvalidMnemonicLength indicates a mnemonic whose total bit length
	// is not one of the five supported values (12, 15, 18, 21 or 24 words).
	ErrInvalidMnemonicLength = errors.New("mnemonic must be 12, 15, 18, 21 or 24 words")

	// ErrInvalidEntropyLength indicates an entropy buffer that is not
	// 16, 20, 24, 28 or 32 bytes.
	ErrInvalidEntropyLength = errors.New("entropy must be 16, 20, 24, 28 or 32 bytes")

	// ErrChecksumMismatch indicates the mnemonic's embedded checksum does
	// not match the checksum recomputed from its entropy.
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")

	// ErrInvalidFinalBits indicates the wrong number of user-supplied
	// entropy bits in the manual final-word flow, or a character that is
	// not '0' or '1'.
	ErrInvalidFinalBits = errors.New("invalid final-word entropy bits")

	// ErrScalarOutOfRange indicates a derived scalar of zero or at least
	// the secp256k1 group order, or a derived point at infinity. The
	// probability is below 2^-127; the operation fails rather than
	// silently retrying the next index.
	ErrScalarOutOfRange = errors.New("derived scalar out of range")

	// ErrMalformedExtendedKey indicates an extended key string whose
	// Base58Check checksum fails or whose fields have the wrong widths.
	ErrMalformedExtendedKey = errors.New("malformed extended key")

	// ErrHardenedPublicDerivation indicates a hardened index passed to
	// public-only derivation, which is mathematically impossible.
	ErrHardenedPublicDerivation = errors.New("hardened derivation requires the private key")

	// ErrInvalidEncodingInput indicates a byte buffer of the wrong length
	// passed to a key or address encoder.
	ErrInvalidEncodingInput = errors.New("invalid input length for encoder")
)
