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

func TestRunMnemonicGenerate_Text(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, buf := newTestCmd()

	mnemonicWords = 12
	require.NoError(t, runMnemonicGenerate(cmd, nil))

	got := buf.String()
	assert.Contains(t, got, " 1. ")
	assert.Contains(t, got, "12. ")
	assert.Contains(t, got, "Write these words down")

	// Every printed word must come from the word list.
	list := wallet.EnglishWordlist()
	for _, line := range strings.Split(got, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 || !strings.HasSuffix(fields[0], ".") {
			continue
		}
		assert.True(t, list.Contains(fields[1]), "word %q not in list", fields[1])
	}
}

func TestRunMnemonicGenerate_JSON(t *testing.T) {
	initTestGlobals(t, output.FormatJSON)
	cmd, buf := newTestCmd()

	mnemonicWords = 24
	require.NoError(t, runMnemonicGenerate(cmd, nil))

	var result struct {
		Words    []string `json:"words"`
		NumWords int      `json:"num_words"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Len(t, result.Words, 24)
	assert.Equal(t, 24, result.NumWords)
	assert.NoError(t, wallet.ValidateMnemonic(result.Words, wallet.EnglishWordlist()))
}

func TestRunMnemonicGenerate_BadWordCount(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, _ := newTestCmd()

	mnemonicWords = 13
	err := runMnemonicGenerate(cmd, nil)
	require.Error(t, err)
	assert.True(t, scerr.Is(err, scerr.ErrInvalidMnemonicLength))
}

func TestRunMnemonicValidate_ValidArgs(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, buf := newTestCmd()

	require.NoError(t, runMnemonicValidate(cmd, strings.Fields(testMnemonic)))
	assert.Contains(t, buf.String(), "valid (12 words)")
}

func TestRunMnemonicValidate_JSON(t *testing.T) {
	initTestGlobals(t, output.FormatJSON)
	cmd, buf := newTestCmd()

	require.NoError(t, runMnemonicValidate(cmd, strings.Fields(testMnemonic)))

	var result struct {
		Valid    bool `json:"valid"`
		NumWords int  `json:"num_words"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, 12, result.NumWords)
}

func TestRunMnemonicValidate_BadChecksum(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, _ := newTestCmd()

	words := strings.Fields(testMnemonic)
	words[11] = "abandon"
	err := runMnemonicValidate(cmd, words)
	require.Error(t, err)
	assert.True(t, scerr.Is(err, scerr.ErrChecksumMismatch))
}

func TestRunMnemonicValidate_MisspelledWordSuggestion(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, _ := newTestCmd()

	words := strings.Fields(testMnemonic)
	words[3] = "abandonn"
	err := runMnemonicValidate(cmd, words)
	require.Error(t, err)
	assert.True(t, scerr.Is(err, scerr.ErrInvalidMnemonicWord))

	var scErr *scerr.SeedCashError
	require.ErrorAs(t, err, &scErr)
	assert.Contains(t, scErr.Suggestion, `"abandon"`)
}

func TestRunMnemonicValidate_Prompted(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	withMockPrompts(t, testMnemonic, "", false)
	cmd, buf := newTestCmd()

	require.NoError(t, runMnemonicValidate(cmd, nil))
	assert.Contains(t, buf.String(), "valid")
}

func TestRunMnemonicFinalWord_ZeroEntropy(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, buf := newTestCmd()

	preceding := strings.Fields(testMnemonic)[:11]
	finalWordBits = "0000000"
	require.NoError(t, runMnemonicFinalWord(cmd, preceding))
	assert.Contains(t, buf.String(), "Final word: about")
}

func TestRunMnemonicFinalWord_JSON(t *testing.T) {
	initTestGlobals(t, output.FormatJSON)
	cmd, buf := newTestCmd()

	preceding := strings.Fields(testMnemonic)[:11]
	finalWordBits = "0000000"
	require.NoError(t, runMnemonicFinalWord(cmd, preceding))

	var result struct {
		FinalWord string   `json:"final_word"`
		Words     []string `json:"words"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "about", result.FinalWord)
	assert.Len(t, result.Words, 12)
}

func TestRunMnemonicFinalWord_WrongBitCount(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, _ := newTestCmd()

	preceding := strings.Fields(testMnemonic)[:11]
	finalWordBits = "000" // 12-word mnemonics need 7 bits
	err := runMnemonicFinalWord(cmd, preceding)
	require.Error(t, err)
	assert.True(t, scerr.Is(err, scerr.ErrInvalidFinalBits))
}

func TestRunMnemonicFinalWord_WrongWordCount(t *testing.T) {
	initTestGlobals(t, output.FormatText)
	cmd, _ := newTestCmd()

	preceding := strings.Fields(testMnemonic)[:10]
	finalWordBits = "0000000"
	err := runMnemonicFinalWord(cmd, preceding)
	require.Error(t, err)
	assert.True(t, scerr.Is(err, scerr.ErrInvalidMnemonicLength))
}

func TestMnemonicFromArgsOrPrompt_NormalizesArgs(t *testing.T) {
	words, err := mnemonicFromArgsOrPrompt([]string{"1.", "Abandon", "2.", "ABOUT"})
	require.NoError(t, err)
	assert.Equal(t, []string{"abandon", "about"}, words)
}
