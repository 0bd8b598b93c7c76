package wallet

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/seedcash/seedcash/internal/entropy"
)

func TestSeedFromMnemonic_Vectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mnemonic   string
		passphrase string
		seed       string
	}{
		{
			mnemonic:   "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			passphrase: "TREZOR",
			seed:       "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
		{
			mnemonic:   "legal winner thank year wave sausage worth useful legal winner thank yellow",
			passphrase: "TREZOR",
			seed:       "2e8905819b8723fe2c1d161860e5ee1830318dbf49a83bd451cfb8440c28bd6fa457fe1296106559a3c80937a1c1069be3a3a5bd381ee6260e8d9739fce1f607",
		},
	}

	for _, tc := range tests {
		got := SeedFromMnemonic(strings.Fields(tc.mnemonic), tc.passphrase)
		assert.Equal(t, tc.seed, hex.EncodeToString(got))
	}
}

func TestSeedFromMnemonic_MatchesReferenceLibrary(t *testing.T) {
	t.Parallel()
	list := EnglishWordlist()

	for _, numWords := range SupportedWordCounts {
		words, err := GenerateMnemonic(numWords, list)
		require.NoError(t, err)

		for _, passphrase := range []string{"", "correct horse battery staple"} {
			got := SeedFromMnemonic(words, passphrase)
			want := bip39.NewSeed(Sentence(words), passphrase)
			assert.Equal(t, want, got, "%d words, passphrase %q", numWords, passphrase)
		}
	}
}

func TestSeedFromMnemonic_PassphraseChangesSeed(t *testing.T) {
	t.Parallel()

	words := strings.Fields("zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong")
	assert.NotEqual(t, SeedFromMnemonic(words, ""), SeedFromMnemonic(words, "x"))
	assert.NotEqual(t, SeedFromMnemonic(words, "a"), SeedFromMnemonic(words, "A"))
}

func TestNewSeed(t *testing.T) {
	t.Parallel()
	list := EnglishWordlist()

	words := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	seed, err := NewSeed(words, "", list)
	require.NoError(t, err)

	assert.Equal(t, words, seed.Words())
	assert.Equal(t, Sentence(words), seed.Sentence())
	assert.False(t, seed.HasPassphrase())
	assert.Len(t, seed.SeedBytes(), SeedLen)

	assert.True(t, strings.HasPrefix(seed.XPrv(), "xprv"))
	assert.True(t, strings.HasPrefix(seed.XPub(), "xpub"))
	assert.Len(t, seed.Fingerprint(), 8)
	assert.Equal(t, strings.ToLower(seed.Fingerprint()), seed.Fingerprint())

	// The serialized keys round-trip and describe the fixed account.
	acct, err := DecodeExtendedKey(seed.XPrv())
	require.NoError(t, err)
	assert.True(t, acct.Private)
	assert.Equal(t, uint8(3), acct.Depth)
	assert.Equal(t, HardenedKeyStart, acct.ChildIndex)
}

func TestNewSeed_Deterministic(t *testing.T) {
	t.Parallel()
	list := EnglishWordlist()

	words := strings.Fields("legal winner thank year wave sausage worth useful legal winner thank yellow")

	first, err := NewSeed(words, "TREZOR", list)
	require.NoError(t, err)
	second, err := NewSeed(words, "TREZOR", list)
	require.NoError(t, err)

	assert.Equal(t, first.XPrv(), second.XPrv())
	assert.Equal(t, first.XPub(), second.XPub())
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	assert.Equal(t, first.SeedBytes(), second.SeedBytes())
}

func TestNewSeed_PassphraseIsolation(t *testing.T) {
	t.Parallel()
	list := EnglishWordlist()

	words := strings.Fields("legal winner thank year wave sausage worth useful legal winner thank yellow")

	plain, err := NewSeed(words, "", list)
	require.NoError(t, err)
	protected, err := NewSeed(words, "TREZOR", list)
	require.NoError(t, err)

	assert.True(t, protected.HasPassphrase())
	assert.NotEqual(t, plain.XPrv(), protected.XPrv())
	assert.NotEqual(t, plain.Fingerprint(), protected.Fingerprint())
}

func TestNewSeed_RejectsInvalidMnemonic(t *testing.T) {
	t.Parallel()
	list := EnglishWordlist()

	words := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon")
	_, err := NewSeed(words, "", list)
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	_, err = NewSeed([]string{"only", "two"}, "", list)
	assert.ErrorIs(t, err, ErrInvalidMnemonicLength)
}

func TestSeed_Address(t *testing.T) {
	t.Parallel()
	list := EnglishWordlist()

	words := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	seed, err := NewSeed(words, "", list)
	require.NoError(t, err)

	legacy, err := seed.Address(FormatLegacy, 0)
	require.NoError(t, err)
	cash, err := seed.Address(FormatCashAddr, 0)
	require.NoError(t, err)

	legacyHash, err := DecodeLegacyAddress(legacy)
	require.NoError(t, err)
	cashHash, err := DecodeCashAddr(cash)
	require.NoError(t, err)
	assert.Equal(t, legacyHash, cashHash)

	// Repeated calls are stable; distinct indices differ.
	again, err := seed.Address(FormatCashAddr, 0)
	require.NoError(t, err)
	assert.Equal(t, cash, again)

	next, err := seed.Address(FormatCashAddr, 1)
	require.NoError(t, err)
	assert.NotEqual(t, cash, next)
}

func TestSeed_Destroy(t *testing.T) {
	t.Parallel()
	list := EnglishWordlist()

	words := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	seed, err := NewSeed(words, "", list)
	require.NoError(t, err)

	seed.Destroy()
	assert.Empty(t, seed.SeedBytes())

	// Destroy is idempotent.
	seed.Destroy()
}

func TestSealSeed_WipesOnSerializationError(t *testing.T) {
	t.Parallel()

	stretched := SeedFromMnemonic(strings.Fields(
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"), "")
	seedBytes := entropy.SecureBytesFromSlice(stretched)

	account, err := DeriveAccount(stretched)
	require.NoError(t, err)
	account.PrivKey = account.PrivKey[:16] // force the xprv encoding to fail

	_, err = sealSeed([]string{"abandon"}, "", seedBytes, account)
	require.Error(t, err)

	assert.Nil(t, seedBytes.Bytes())
	for _, b := range account.ChainCode {
		assert.Zero(t, b)
	}
}

func TestSeed_WordsCopyIsolated(t *testing.T) {
	t.Parallel()
	list := EnglishWordlist()

	words := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	seed, err := NewSeed(words, "", list)
	require.NoError(t, err)

	words[0] = "mutated"
	assert.Equal(t, "abandon", seed.Words()[0])

	got := seed.Words()
	got[0] = "mutated"
	assert.Equal(t, "abandon", seed.Words()[0])
}
