package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/seedcash/seedcash/internal/wallet"
	scerr "github.com/seedcash/seedcash/pkg/errors"
)

// Prompt indirection so tests can inject canned input.
//
//nolint:gochecknoglobals // swapped out in tests
var (
	promptPassphraseFn = promptPassphrase
	promptMnemonicFn   = promptMnemonic
	promptConfirmFn    = promptConfirmation
)

// promptHidden prompts for a secret with hidden input.
// The caller is responsible for zeroing the returned bytes after use.
func promptHidden(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	secret, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading hidden input: %w", err)
	}

	return secret, nil
}

// promptPassphrase prompts for an optional BIP39 passphrase with
// confirmation. An empty passphrase is accepted without confirming.
func promptPassphrase() (string, error) {
	outln(os.Stderr, "\nBIP39 Passphrase (optional extra security layer):")
	outln(os.Stderr, "WARNING: If you lose this passphrase, you cannot recover your wallet!")

	passphrase, err := promptHidden("Enter passphrase: ")
	if err != nil {
		return "", err
	}

	if len(passphrase) == 0 {
		return "", nil
	}

	confirm, err := promptHidden("Confirm passphrase: ")
	if err != nil {
		wallet.ZeroBytes(passphrase)
		return "", err
	}
	defer wallet.ZeroBytes(confirm)

	if string(passphrase) != string(confirm) {
		wallet.ZeroBytes(passphrase)
		return "", scerr.WithSuggestion(
			scerr.ErrInvalidInput,
			"passphrases do not match",
		)
	}

	result := string(passphrase)
	wallet.ZeroBytes(passphrase)
	return result, nil
}

// promptMnemonic reads a full mnemonic sentence from stdin. Input is
// normalized so pasted numbered lists and extra whitespace are accepted.
func promptMnemonic() ([]string, error) {
	out(os.Stderr, "Enter mnemonic (all words on one line): ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, scerr.WithSuggestion(scerr.ErrInvalidInput, "no input provided")
	}

	words := wallet.ParseMnemonic(line)
	if len(words) == 0 {
		return nil, scerr.WithSuggestion(scerr.ErrInvalidInput, "no input provided")
	}
	return words, nil
}

// promptConfirmation asks the user to confirm before showing secrets.
func promptConfirmation(question string) bool {
	out(os.Stderr, "%s [y/N]: ", question)

	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
