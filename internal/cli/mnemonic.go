package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seedcash/seedcash/internal/metrics"
	"github.com/seedcash/seedcash/internal/wallet"
	scerr "github.com/seedcash/seedcash/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	// mnemonicWords is the number of words to generate.
	mnemonicWords int
	// finalWordBits is the manually chosen entropy bits for the final word.
	finalWordBits string
)

// mnemonicCmd groups mnemonic operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var mnemonicCmd = &cobra.Command{
	Use:   "mnemonic",
	Short: "Generate, validate and complete BIP39 mnemonics",
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var mnemonicGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new mnemonic from system entropy",
	Long: `Generate a new BIP39 mnemonic sentence.

The words encode randomly generated entropy plus a checksum. Write the
words down on paper; anyone holding them controls the derived keys.

Examples:
  # Generate a 12-word mnemonic
  seedcash mnemonic generate

  # Generate a 24-word mnemonic
  seedcash mnemonic generate --words 24`,
	RunE: runMnemonicGenerate,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var mnemonicValidateCmd = &cobra.Command{
	Use:   "validate [words...]",
	Short: "Validate a mnemonic's words and checksum",
	Long: `Check that a mnemonic uses only word-list words, has a supported
length, and carries a correct checksum.

The words may be passed as arguments or entered at the prompt. Misspelled
words get a closest-match suggestion.

Examples:
  # Validate interactively (words are not left in shell history)
  seedcash mnemonic validate

  # Validate inline
  seedcash mnemonic validate zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong`,
	RunE: runMnemonicValidate,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var mnemonicFinalWordCmd = &cobra.Command{
	Use:   "final-word [words...]",
	Short: "Compute the final word for a manually generated mnemonic",
	Long: `Complete a mnemonic whose first N-1 words were chosen by coin flips.

Provide the preceding words plus the remaining free entropy bits via
--bits (heads=1, tails=0). For a 12-word mnemonic the final word carries
7 free bits; for 24 words it carries 3. The checksum bits are computed
for you.

Examples:
  # Complete an 11-word mnemonic with 7 coin flips
  seedcash mnemonic final-word --bits 1011010 word1 ... word11

  # Prompt for the words instead
  seedcash mnemonic final-word --bits 101`,
	RunE: runMnemonicFinalWord,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(mnemonicCmd)
	mnemonicCmd.AddCommand(mnemonicGenerateCmd)
	mnemonicCmd.AddCommand(mnemonicValidateCmd)
	mnemonicCmd.AddCommand(mnemonicFinalWordCmd)

	mnemonicGenerateCmd.Flags().IntVarP(&mnemonicWords, "words", "n", 12,
		"number of words: 12, 15, 18, 21 or 24")
	mnemonicFinalWordCmd.Flags().StringVarP(&finalWordBits, "bits", "b", "",
		"free entropy bits for the final word, e.g. 1011010 (required)")
	_ = mnemonicFinalWordCmd.MarkFlagRequired("bits")
}

func runMnemonicGenerate(cmd *cobra.Command, _ []string) error {
	list := wallet.EnglishWordlist()

	words, err := wallet.GenerateMnemonic(mnemonicWords, list)
	metrics.Global.RecordMnemonicOp(err)
	if err != nil {
		return mapWalletErr(err)
	}

	w := cmd.OutOrStdout()
	if Formatter().IsJSON() {
		return writeJSON(w, struct {
			Words    []string `json:"words"`
			NumWords int      `json:"num_words"`
		}{Words: words, NumWords: len(words)})
	}

	outln(w)
	displayNumberedWords(w, words)
	outln(w)
	outln(w, "Write these words down in order and store them offline.")
	return nil
}

func runMnemonicValidate(cmd *cobra.Command, args []string) error {
	list := wallet.EnglishWordlist()

	words, err := mnemonicFromArgsOrPrompt(args)
	if err != nil {
		return err
	}

	err = wallet.ValidateMnemonic(words, list)
	metrics.Global.RecordMnemonicOp(err)
	if err != nil {
		mapped := mapWalletErr(err)
		if suggestion := suggestForWords(words, list); suggestion != "" {
			mapped = scerr.WithSuggestion(mapped, suggestion)
		}
		return mapped
	}

	w := cmd.OutOrStdout()
	if Formatter().IsJSON() {
		return writeJSON(w, struct {
			Valid    bool `json:"valid"`
			NumWords int  `json:"num_words"`
		}{Valid: true, NumWords: len(words)})
	}

	out(w, "Mnemonic is valid (%d words)\n", len(words))
	return nil
}

func runMnemonicFinalWord(cmd *cobra.Command, args []string) error {
	list := wallet.EnglishWordlist()

	preceding, err := mnemonicFromArgsOrPrompt(args)
	if err != nil {
		return err
	}

	wantBits := wallet.FinalWordBits(len(preceding) + 1)
	if wantBits == 0 {
		return scerr.WithSuggestion(
			scerr.ErrInvalidMnemonicLength,
			fmt.Sprintf("provide 11, 14, 17, 20 or 23 words, got %d", len(preceding)),
		)
	}
	if len(finalWordBits) != wantBits {
		return scerr.WithSuggestion(
			scerr.ErrInvalidFinalBits,
			fmt.Sprintf("--bits needs exactly %d characters of 0/1 for a %d-word mnemonic",
				wantBits, len(preceding)+1),
		)
	}

	words, err := wallet.CompleteMnemonic(preceding, finalWordBits, list)
	metrics.Global.RecordMnemonicOp(err)
	if err != nil {
		mapped := mapWalletErr(err)
		if suggestion := suggestForWords(preceding, list); suggestion != "" {
			mapped = scerr.WithSuggestion(mapped, suggestion)
		}
		return mapped
	}

	final := words[len(words)-1]
	w := cmd.OutOrStdout()
	if Formatter().IsJSON() {
		return writeJSON(w, struct {
			FinalWord string   `json:"final_word"`
			Words     []string `json:"words"`
		}{FinalWord: final, Words: words})
	}

	out(w, "Final word: %s\n", final)
	outln(w)
	displayNumberedWords(w, words)
	return nil
}

// mnemonicFromArgsOrPrompt takes the mnemonic words from the command
// line when present, otherwise prompts for them.
func mnemonicFromArgsOrPrompt(args []string) ([]string, error) {
	if len(args) > 0 {
		return wallet.ParseMnemonic(strings.Join(args, " ")), nil
	}
	return promptMnemonicFn()
}

// displayNumberedWords prints the mnemonic one numbered word per line,
// for copying onto a paper backup.
func displayNumberedWords(w io.Writer, words []string) {
	for i, word := range words {
		out(w, "  %2d. %s\n", i+1, word)
	}
}
