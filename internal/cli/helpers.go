package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/seedcash/seedcash/internal/wallet"
	scerr "github.com/seedcash/seedcash/pkg/errors"
)

// out writes formatted output, ignoring write errors (terminal output).
func out(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// outln writes a line of output, ignoring write errors.
func outln(w io.Writer, args ...interface{}) {
	_, _ = fmt.Fprintln(w, args...)
}

// writeJSON encodes the value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// mapWalletErr translates wallet sentinel errors into structured CLI
// errors with codes and exit codes. Unknown errors pass through wrapped.
func mapWalletErr(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, wallet.ErrInvalidMnemonicWord):
		return scerr.Wrap(scerr.ErrInvalidMnemonicWord, "%s", err.Error())
	case errors.Is(err, wallet.ErrInvalidMnemonicLength):
		return scerr.Wrap(scerr.ErrInvalidMnemonicLength, "%s", err.Error())
	case errors.Is(err, wallet.ErrChecksumMismatch):
		return scerr.WithSuggestion(scerr.ErrChecksumMismatch,
			"re-check the words, especially the last one")
	case errors.Is(err, wallet.ErrInvalidFinalBits):
		return scerr.Wrap(scerr.ErrInvalidFinalBits, "%s", err.Error())
	case errors.Is(err, wallet.ErrScalarOutOfRange):
		return scerr.Wrap(scerr.ErrScalarOutOfRange, "%s", err.Error())
	case errors.Is(err, wallet.ErrMalformedExtendedKey):
		return scerr.Wrap(scerr.ErrMalformedExtendedKey, "%s", err.Error())
	case errors.Is(err, wallet.ErrHardenedPublicDerivation):
		return scerr.Wrap(scerr.ErrHardenedPublicDerivation, "%s", err.Error())
	case errors.Is(err, wallet.ErrInvalidEncodingInput):
		return scerr.Wrap(scerr.ErrInvalidInput, "%s", err.Error())
	}
	return scerr.Wrap(err, "wallet operation failed")
}

// suggestForWords builds an actionable suggestion from the misspelled
// words of a mnemonic, if any are close to list words.
func suggestForWords(words []string, list *wallet.Wordlist) string {
	invalid := wallet.FindInvalidWords(words, list)
	if len(invalid) == 0 {
		return ""
	}

	msg := ""
	for i, w := range invalid {
		if w.Suggestion == "" {
			continue
		}
		if i > 0 && msg != "" {
			msg += "; "
		}
		msg += fmt.Sprintf("word %d %q: did you mean %q?", w.Position+1, w.Word, w.Suggestion)
	}
	return msg
}
