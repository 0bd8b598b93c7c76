package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/seedcash/seedcash/internal/wallet/bitcoin"
)

// BIP44 path constants for the fixed account path m/44'/145'/0'.
const (
	// HardenedKeyStart is the first hardened child index (top bit set).
	HardenedKeyStart uint32 = 0x80000000

	// PurposeBIP44 is the BIP44 purpose field.
	PurposeBIP44 uint32 = 44

	// CoinTypeBCH is the registered coin type for Bitcoin Cash.
	CoinTypeBCH uint32 = 145

	// AccountIndex is the fixed account number.
	AccountIndex uint32 = 0

	// AccountPath is the derivation path of the account key.
	AccountPath = "m/44'/145'/0'"
)

// Key material sizes.
const (
	// PrivKeyLen is the length of a private key scalar.
	PrivKeyLen = 32

	// PubKeyLen is the length of a compressed public key.
	PubKeyLen = 33

	// ChainCodeLen is the length of a BIP32 chain code.
	ChainCodeLen = 32
)

// masterKeyTag is the HMAC key for master key generation, fixed by BIP32.
//
//nolint:gochecknoglobals // protocol constant
var masterKeyTag = []byte("Bitcoin seed")

// hmacSHA512 computes HMAC-SHA512(key, data...).
func hmacSHA512(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha512.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}

// MasterKey derives the BIP32 master private key and chain code from a
// seed: I = HMAC-SHA512("Bitcoin seed", seed), key = I[0:32],
// chainCode = I[32:64]. Returns ErrScalarOutOfRange for the (negligible)
// case of a zero or out-of-order master scalar.
func MasterKey(seed []byte) (key, chainCode []byte, err error) {
	if len(seed) == 0 {
		return nil, nil, fmt.Errorf("%w: empty seed", ErrInvalidEncodingInput)
	}

	sum := hmacSHA512(masterKeyTag, seed)
	key = sum[:PrivKeyLen]
	chainCode = sum[PrivKeyLen:]

	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(key); overflow || s.IsZero() {
		return nil, nil, fmt.Errorf("master key: %w", ErrScalarOutOfRange)
	}
	s.Zero()
	return key, chainCode, nil
}

// childPrivHardened derives a hardened private child:
// I = HMAC-SHA512(chainCode, 0x00 || parentKey || be32(index|hardened)),
// childKey = (IL + parentKey) mod n, childChainCode = IR.
func childPrivHardened(parentKey, parentChainCode []byte, index uint32) (childKey, childChainCode []byte, err error) {
	index |= HardenedKeyStart

	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], index)

	sum := hmacSHA512(parentChainCode, []byte{0x00}, parentKey, indexBytes[:])
	il := sum[:PrivKeyLen]
	childChainCode = sum[PrivKeyLen:]

	var ilScalar, parentScalar secp256k1.ModNScalar
	if overflow := ilScalar.SetByteSlice(il); overflow {
		return nil, nil, fmt.Errorf("derive child %d: %w", index, ErrScalarOutOfRange)
	}
	parentScalar.SetByteSlice(parentKey)
	ilScalar.Add(&parentScalar)
	parentScalar.Zero()

	if ilScalar.IsZero() {
		return nil, nil, fmt.Errorf("derive child %d: %w", index, ErrScalarOutOfRange)
	}

	childBytes := ilScalar.Bytes()
	ilScalar.Zero()
	childKey = childBytes[:]
	return childKey, childChainCode, nil
}

// CompressedPubKey returns the 33-byte compressed secp256k1 public key
// for a 32-byte private scalar.
func CompressedPubKey(privKey []byte) ([]byte, error) {
	if len(privKey) != PrivKeyLen {
		return nil, fmt.Errorf("%w: private key must be %d bytes", ErrInvalidEncodingInput, PrivKeyLen)
	}
	priv := secp256k1.PrivKeyFromBytes(privKey)
	defer priv.Zero()
	return priv.PubKey().SerializeCompressed(), nil
}

// AccountKey is the immutable result of deriving the fixed account path
// m/44'/145'/0' from a seed, carrying everything extended-key
// serialization needs.
type AccountKey struct {
	// Depth is the number of derivation hops from the master key (3).
	Depth uint8

	// ParentFingerprint identifies the m/44'/145' parent public key.
	ParentFingerprint [bitcoin.FingerprintLen]byte

	// ChildIndex is the account hop's child index (0 | hardened flag).
	ChildIndex uint32

	// ChainCode is the account-level chain code.
	ChainCode []byte

	// PrivKey is the account private scalar.
	PrivKey []byte

	// PubKey is the account compressed public key.
	PubKey []byte
}

// DeriveAccount walks the fixed path m/44'/145'/0' (three hardened hops)
// from a seed and returns the account key with its serialization
// metadata.
func DeriveAccount(seed []byte) (*AccountKey, error) {
	masterKey, masterChainCode, err := MasterKey(seed)
	if err != nil {
		return nil, err
	}

	// m/44'
	purposeKey, purposeChainCode, err := childPrivHardened(masterKey, masterChainCode, PurposeBIP44)
	if err != nil {
		return nil, fmt.Errorf("derive purpose key: %w", err)
	}

	// m/44'/145'
	coinKey, coinChainCode, err := childPrivHardened(purposeKey, purposeChainCode, CoinTypeBCH)
	if err != nil {
		return nil, fmt.Errorf("derive coin type key: %w", err)
	}

	// m/44'/145'/0'
	accountKey, accountChainCode, err := childPrivHardened(coinKey, coinChainCode, AccountIndex)
	if err != nil {
		return nil, fmt.Errorf("derive account key: %w", err)
	}

	accountPub, err := CompressedPubKey(accountKey)
	if err != nil {
		return nil, err
	}

	// The parent fingerprint in the serialized account keys is taken
	// from the m/44'/145' public key.
	coinPub, err := CompressedPubKey(coinKey)
	if err != nil {
		return nil, err
	}

	acct := &AccountKey{
		Depth:             3,
		ParentFingerprint: bitcoin.Fingerprint(coinPub),
		ChildIndex:        AccountIndex | HardenedKeyStart,
		ChainCode:         accountChainCode,
		PrivKey:           accountKey,
		PubKey:            accountPub,
	}

	ZeroBytes(masterKey)
	ZeroBytes(purposeKey)
	ZeroBytes(coinKey)
	return acct, nil
}

// Fingerprint returns the account key's own 4-byte fingerprint, rendered
// elsewhere as the 8-hex-char wallet identifier.
func (a *AccountKey) Fingerprint() [bitcoin.FingerprintLen]byte {
	return bitcoin.Fingerprint(a.PubKey)
}

// XPrv returns the account's serialized extended private key.
func (a *AccountKey) XPrv() (string, error) {
	k := &ExtendedKey{
		Depth:             a.Depth,
		ParentFingerprint: a.ParentFingerprint,
		ChildIndex:        a.ChildIndex,
		ChainCode:         a.ChainCode,
		Key:               a.PrivKey,
		Private:           true,
	}
	return k.Encode()
}

// XPub returns the account's serialized extended public key.
func (a *AccountKey) XPub() (string, error) {
	k := &ExtendedKey{
		Depth:             a.Depth,
		ParentFingerprint: a.ParentFingerprint,
		ChildIndex:        a.ChildIndex,
		ChainCode:         a.ChainCode,
		Key:               a.PubKey,
		Private:           false,
	}
	return k.Encode()
}

// Zero wipes the account's private material. The AccountKey must not be
// used afterwards.
func (a *AccountKey) Zero() {
	ZeroBytes(a.PrivKey)
	ZeroBytes(a.ChainCode)
}

// ZeroBytes overwrites b with zeros.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
