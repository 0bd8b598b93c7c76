package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedcash/seedcash/internal/wallet"
	scerr "github.com/seedcash/seedcash/pkg/errors"
)

func TestMapWalletErr(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"invalid word", wallet.ErrInvalidMnemonicWord, scerr.ErrInvalidMnemonicWord},
		{"invalid length", wallet.ErrInvalidMnemonicLength, scerr.ErrInvalidMnemonicLength},
		{"checksum", wallet.ErrChecksumMismatch, scerr.ErrChecksumMismatch},
		{"final bits", wallet.ErrInvalidFinalBits, scerr.ErrInvalidFinalBits},
		{"scalar", wallet.ErrScalarOutOfRange, scerr.ErrScalarOutOfRange},
		{"malformed key", wallet.ErrMalformedExtendedKey, scerr.ErrMalformedExtendedKey},
		{"hardened public", wallet.ErrHardenedPublicDerivation, scerr.ErrHardenedPublicDerivation},
		{"encoding input", wallet.ErrInvalidEncodingInput, scerr.ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapWalletErr(tc.in)
			assert.True(t, scerr.Is(got, tc.want))
		})
	}
}

func TestMapWalletErr_Nil(t *testing.T) {
	assert.NoError(t, mapWalletErr(nil))
}

func TestMapWalletErr_WrappedSentinel(t *testing.T) {
	err := mapWalletErr(fmt.Errorf("validating mnemonic: %w", wallet.ErrChecksumMismatch))
	assert.True(t, scerr.Is(err, scerr.ErrChecksumMismatch))
}

func TestMapWalletErr_Unknown(t *testing.T) {
	errOther := errors.New("disk on fire")
	got := mapWalletErr(errOther)
	require.Error(t, got)
	assert.Equal(t, scerr.ExitGeneral, scerr.ExitCode(got))
	assert.ErrorIs(t, got, errOther)
}

func TestSuggestForWords(t *testing.T) {
	list := wallet.EnglishWordlist()

	msg := suggestForWords([]string{"abandon", "yeer", "about"}, list)
	assert.Contains(t, msg, `word 2 "yeer"`)
	assert.Contains(t, msg, `"year"`)
}

func TestSuggestForWords_AllValid(t *testing.T) {
	list := wallet.EnglishWordlist()
	assert.Empty(t, suggestForWords([]string{"abandon", "about"}, list))
}

func TestOutHelpers(t *testing.T) {
	buf := &bytes.Buffer{}
	out(buf, "a %d", 1)
	outln(buf, "b")
	assert.Equal(t, "a 1b\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeJSON(buf, map[string]int{"n": 1}))
	assert.JSONEq(t, `{"n":1}`, buf.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, scerr.ExitSuccess, ExitCode(nil))
	assert.Equal(t, scerr.ExitInput, ExitCode(scerr.ErrInvalidMnemonicWord))
	assert.Equal(t, scerr.ExitCrypto, ExitCode(scerr.ErrScalarOutOfRange))
	assert.Equal(t, scerr.ExitGeneral, ExitCode(errors.New("boom")))
}
