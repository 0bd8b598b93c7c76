package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedcash/seedcash/internal/output"
	"github.com/seedcash/seedcash/internal/wallet"
	scerr "github.com/seedcash/seedcash/pkg/errors"
)

func testSeed(t *testing.T, passphrase string) *wallet.Seed {
	t.Helper()
	seed, err := wallet.NewSeed(strings.Fields(testMnemonic), passphrase, wallet.EnglishWordlist())
	require.NoError(t, err)
	return seed
}

func TestRunKeysShow_Text(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, buf := newTestCmd()

	keysShowXPrv = false
	keysPassphrase = ""
	keysNoPassphrase = true

	require.NoError(t, runKeysShow(cmd, strings.Fields(testMnemonic)))

	want := testSeed(t, "")
	got := buf.String()
	assert.Contains(t, got, "m/44'/145'/0'")
	assert.Contains(t, got, want.XPub())
	assert.Contains(t, got, want.Fingerprint())
	assert.NotContains(t, got, "xprv:")
}

func TestRunKeysShow_JSON(t *testing.T) {
	initTestGlobals(t, output.FormatJSON)
	cmd, buf := newTestCmd()

	keysShowXPrv = false
	keysPassphrase = ""
	keysNoPassphrase = true

	require.NoError(t, runKeysShow(cmd, strings.Fields(testMnemonic)))

	var result struct {
		Path        string `json:"path"`
		Fingerprint string `json:"fingerprint"`
		XPub        string `json:"xpub"`
		XPrv        string `json:"xprv"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	want := testSeed(t, "")
	assert.Equal(t, wallet.AccountPath, result.Path)
	assert.Equal(t, want.Fingerprint(), result.Fingerprint)
	assert.Equal(t, want.XPub(), result.XPub)
	assert.Empty(t, result.XPrv)
}

func TestRunKeysShow_XPrvJSON(t *testing.T) {
	initTestGlobals(t, output.FormatJSON)
	cmd, buf := newTestCmd()

	keysShowXPrv = true
	keysPassphrase = ""
	keysNoPassphrase = true

	require.NoError(t, runKeysShow(cmd, strings.Fields(testMnemonic)))

	var result struct {
		XPrv string `json:"xprv"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, testSeed(t, "").XPrv(), result.XPrv)
}

func TestRunKeysShow_XPrvDeclined(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	withMockPrompts(t, testMnemonic, "", false)
	cmd, buf := newTestCmd()

	keysShowXPrv = true
	keysPassphrase = ""
	keysNoPassphrase = true

	require.NoError(t, runKeysShow(cmd, strings.Fields(testMnemonic)))
	assert.NotContains(t, buf.String(), "xprv:")
}

func TestRunKeysShow_PassphraseFlag(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, buf := newTestCmd()

	keysShowXPrv = false
	keysPassphrase = "TREZOR"
	keysNoPassphrase = false

	require.NoError(t, runKeysShow(cmd, strings.Fields(testMnemonic)))

	want := testSeed(t, "TREZOR")
	bare := testSeed(t, "")
	assert.Contains(t, buf.String(), want.XPub())
	assert.NotContains(t, buf.String(), bare.XPub())
}

func TestRunKeysShow_PromptedMnemonic(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	withMockPrompts(t, testMnemonic, "", false)
	cmd, buf := newTestCmd()

	keysShowXPrv = false
	keysPassphrase = ""
	keysNoPassphrase = false

	require.NoError(t, runKeysShow(cmd, nil))
	assert.Contains(t, buf.String(), testSeed(t, "").XPub())
}

func TestRunKeysShow_InvalidMnemonic(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, _ := newTestCmd()

	keysShowXPrv = false
	keysPassphrase = ""
	keysNoPassphrase = true

	words := strings.Fields(testMnemonic)
	words[11] = "abandon"
	err := runKeysShow(cmd, words)
	require.Error(t, err)
	assert.True(t, scerr.Is(err, scerr.ErrChecksumMismatch))
}
