package wallet

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/seedcash/seedcash/internal/entropy"
)

// Seed derivation parameters fixed by BIP39.
const (
	// SeedLen is the length of a derived seed in bytes.
	SeedLen = 64

	// seedIterations is the PBKDF2 iteration count.
	seedIterations = 2048

	// seedSaltPrefix is prepended to the passphrase to form the salt.
	seedSaltPrefix = "mnemonic"
)

// SeedFromMnemonic stretches a mnemonic sentence and optional passphrase
// into a 64-byte seed with PBKDF2-HMAC-SHA512 (salt "mnemonic" +
// passphrase, 2048 iterations). The call is deterministic and runs to
// completion; no partial seed is ever observable.
//
// No Unicode normalization is applied before key stretching. The BIP39
// specification calls for NFKD here, but deployed SeedCash devices do
// not normalize, and changing it would silently derive different seeds
// for existing non-ASCII passphrases.
func SeedFromMnemonic(words []string, passphrase string) []byte {
	return pbkdf2.Key(
		[]byte(Sentence(words)),
		[]byte(seedSaltPrefix+passphrase),
		seedIterations,
		SeedLen,
		sha512.New,
	)
}

// Seed is the immutable result of finalizing a validated mnemonic with a
// passphrase: the stretched seed bytes, the m/44'/145'/0' account keys,
// and their serialized forms. Build a new Seed to change the passphrase.
// The seed bytes live in mlocked memory where the platform allows it.
type Seed struct {
	words       []string
	passphrase  string
	seedBytes   *entropy.SecureBytes
	account     *AccountKey
	xprv        string
	xpub        string
	fingerprint string
}

// NewSeed validates the mnemonic against the word list, derives the seed
// and the fixed account path, and serializes the extended keys. The
// words slice is copied; the Seed never aliases caller memory.
func NewSeed(words []string, passphrase string, list *Wordlist) (*Seed, error) {
	if err := ValidateMnemonic(words, list); err != nil {
		return nil, err
	}

	stretched := SeedFromMnemonic(words, passphrase)
	seedBytes := entropy.SecureBytesFromSlice(stretched)
	ZeroBytes(stretched)

	account, err := DeriveAccount(seedBytes.Bytes())
	if err != nil {
		seedBytes.Destroy()
		return nil, fmt.Errorf("derive account: %w", err)
	}

	return sealSeed(words, passphrase, seedBytes, account)
}

// sealSeed serializes the account keys and assembles the Seed. On any
// failure the account and seed buffer are wiped before returning.
func sealSeed(words []string, passphrase string, seedBytes *entropy.SecureBytes, account *AccountKey) (*Seed, error) {
	xprv, err := account.XPrv()
	if err != nil {
		account.Zero()
		seedBytes.Destroy()
		return nil, err
	}
	xpub, err := account.XPub()
	if err != nil {
		account.Zero()
		seedBytes.Destroy()
		return nil, err
	}

	fp := account.Fingerprint()

	s := &Seed{
		words:       append([]string(nil), words...),
		passphrase:  passphrase,
		seedBytes:   seedBytes,
		account:     account,
		xprv:        xprv,
		xpub:        xpub,
		fingerprint: hex.EncodeToString(fp[:]),
	}
	return s, nil
}

// Words returns a copy of the mnemonic words.
func (s *Seed) Words() []string {
	return append([]string(nil), s.words...)
}

// Sentence returns the space-joined mnemonic sentence.
func (s *Seed) Sentence() string {
	return Sentence(s.words)
}

// HasPassphrase reports whether a non-empty passphrase was applied.
func (s *Seed) HasPassphrase() bool {
	return s.passphrase != ""
}

// SeedBytes returns a copy of the 64-byte seed. Returns nil after
// Destroy.
func (s *Seed) SeedBytes() []byte {
	return append([]byte(nil), s.seedBytes.Bytes()...)
}

// XPrv returns the account extended private key string.
func (s *Seed) XPrv() string {
	return s.xprv
}

// XPub returns the account extended public key string.
func (s *Seed) XPub() string {
	return s.xpub
}

// Fingerprint returns the wallet identifier: the account public key
// fingerprint as 8 lowercase hex characters.
func (s *Seed) Fingerprint() string {
	return s.fingerprint
}

// Address derives receive address number index (branch 0) from the
// account xpub in the requested format. Addresses are computed per call
// and not cached.
func (s *Seed) Address(format AddressFormat, index uint32) (string, error) {
	account, err := DecodeExtendedKey(s.xpub)
	if err != nil {
		return "", err
	}
	pubKey, err := ReceivePubKey(account, index)
	if err != nil {
		return "", err
	}
	return EncodeAddress(pubKey, format)
}

// Destroy wipes the seed's private material. The Seed must not be used
// afterwards.
func (s *Seed) Destroy() {
	s.seedBytes.Destroy()
	if s.account != nil {
		s.account.Zero()
	}
}
