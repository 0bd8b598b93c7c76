package wallet

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compressed generator-point public key; its hash160 is
// 751e76e8199196d454941c45d1b3a323f1433bd6.
//
//nolint:gochecknoglobals // shared test fixture
var generatorPubKeyHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestParseAddressFormat(t *testing.T) {
	t.Parallel()

	format, err := ParseAddressFormat("legacy")
	require.NoError(t, err)
	assert.Equal(t, FormatLegacy, format)

	format, err = ParseAddressFormat("cashaddr")
	require.NoError(t, err)
	assert.Equal(t, FormatCashAddr, format)

	_, err = ParseAddressFormat("bech32")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bech32")
}

func TestLegacyAddress_KnownVector(t *testing.T) {
	t.Parallel()

	addr, err := LegacyAddress(mustHex(t, generatorPubKeyHex))
	require.NoError(t, err)
	assert.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", addr)

	hash, err := DecodeLegacyAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(hash))
}

func TestLegacyAddress_InputValidation(t *testing.T) {
	t.Parallel()

	_, err := LegacyAddress([]byte{0x02, 0x03})
	assert.ErrorIs(t, err, ErrInvalidEncodingInput)
}

func TestDecodeLegacyAddress_Invalid(t *testing.T) {
	t.Parallel()

	// Corrupted checksum.
	_, err := DecodeLegacyAddress("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMJ")
	assert.ErrorIs(t, err, ErrInvalidEncodingInput)

	// P2SH version byte.
	_, err = DecodeLegacyAddress("3P14159f73E4gFr7JterCCQh9QjiTjiZrG")
	assert.ErrorIs(t, err, ErrInvalidEncodingInput)

	_, err = DecodeLegacyAddress("")
	assert.ErrorIs(t, err, ErrInvalidEncodingInput)
}

func TestCashAddr_RoundTrip(t *testing.T) {
	t.Parallel()

	pubKey := mustHex(t, generatorPubKeyHex)
	addr, err := CashAddr(pubKey)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(addr, "bitcoincash:q"))
	assert.Len(t, addr, len("bitcoincash:")+42)

	hash, err := DecodeCashAddr(addr)
	require.NoError(t, err)
	assert.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(hash))
}

// The legacy/CashAddr pairs below come from the CashAddr translation
// test set; both encodings of a pair carry the same hash160.
func TestCashAddr_TranslationPairs(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		legacy   string
		cashaddr string
	}{
		{
			legacy:   "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu",
			cashaddr: "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		},
		{
			legacy:   "1KXrWXciRDZUpQwQmuM1DbwsKDLYAYsVLR",
			cashaddr: "bitcoincash:qr95sy3j9xwd2ap32xkykttr4cvcu7as4y0qverfuy",
		},
		{
			legacy:   "16w1D5WRVKJuZUsSRzdLp9w3YGcgoxDXb",
			cashaddr: "bitcoincash:qqq3728yw0y47sqn6l2na30mcw6zm78dzqre909m2r",
		},
	}

	for _, pair := range pairs {
		fromLegacy, err := DecodeLegacyAddress(pair.legacy)
		require.NoError(t, err)
		fromCash, err := DecodeCashAddr(pair.cashaddr)
		require.NoError(t, err)
		assert.Equal(t, fromLegacy, fromCash, "pair %s", pair.legacy)
	}

	// Spot-check the published hash160 of the first pair.
	hash, err := DecodeCashAddr(pairs[0].cashaddr)
	require.NoError(t, err)
	assert.Equal(t, "f5bf48b397dae70be82b3cca4793f8eb2b6cdac9", hex.EncodeToString(hash))
}

func TestDecodeCashAddr_DetectsSingleCharMutation(t *testing.T) {
	t.Parallel()

	addr := "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a"

	for i := len("bitcoincash:"); i < len(addr); i++ {
		mutated := []byte(addr)
		if mutated[i] == 'q' {
			mutated[i] = 'p'
		} else {
			mutated[i] = 'q'
		}
		_, err := DecodeCashAddr(string(mutated))
		assert.ErrorIs(t, err, ErrInvalidEncodingInput, "mutation at %d", i)
	}
}

func TestDecodeCashAddr_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		addr string
	}{
		{name: "missing prefix", addr: "qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a"},
		{name: "wrong prefix", addr: "bchtest:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a"},
		{name: "too short", addr: "bitcoincash:qqqqqqqq"},
		{name: "invalid character", addr: "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6b"},
		{name: "uppercase body", addr: "bitcoincash:QPM2QSZNHKS23Z7629MMS6S4CWEF74VCWVY22GDX6A"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeCashAddr(tc.addr)
			assert.ErrorIs(t, err, ErrInvalidEncodingInput)
		})
	}
}

func TestEncodeAddress_Dispatch(t *testing.T) {
	t.Parallel()

	pubKey := mustHex(t, generatorPubKeyHex)

	legacy, err := EncodeAddress(pubKey, FormatLegacy)
	require.NoError(t, err)
	assert.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", legacy)

	cash, err := EncodeAddress(pubKey, FormatCashAddr)
	require.NoError(t, err)

	legacyHash, err := DecodeLegacyAddress(legacy)
	require.NoError(t, err)
	cashHash, err := DecodeCashAddr(cash)
	require.NoError(t, err)
	assert.Equal(t, legacyHash, cashHash)

	_, err = EncodeAddress(pubKey, AddressFormat("p2sh"))
	require.Error(t, err)
}

func TestConvertBits(t *testing.T) {
	t.Parallel()

	// 0xff regroups to five 5-bit symbols with zero padding.
	out, err := convertBits([]byte{0xff, 0xff}, 8, 5, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x1f, 0x1f, 0x10}, out)

	back, err := convertBits(out, 5, 8, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff}, back)

	// Nonzero padding is rejected without pad.
	_, err = convertBits([]byte{0x1f, 0x1f, 0x1f, 0x11}, 5, 8, false)
	assert.ErrorIs(t, err, ErrInvalidEncodingInput)

	// Out-of-range input value.
	_, err = convertBits([]byte{0x20}, 5, 8, false)
	assert.ErrorIs(t, err, ErrInvalidEncodingInput)
}
