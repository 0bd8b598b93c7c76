package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/seedcash/seedcash/internal/metrics"
	"github.com/seedcash/seedcash/internal/wallet"
	scerr "github.com/seedcash/seedcash/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	// keysShowXPrv also prints the account private key.
	keysShowXPrv bool
	// keysPassphrase is set by --passphrase to skip the prompt. Prefer
	// the prompt; flags leak into shell history.
	keysPassphrase string
	// keysNoPassphrase derives without a passphrase and without prompting.
	keysNoPassphrase bool
)

// keysCmd groups key derivation operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Derive account keys from a mnemonic",
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var keysShowCmd = &cobra.Command{
	Use:   "show [words...]",
	Short: "Derive and show the m/44'/145'/0' account keys",
	Long: `Derive the BIP44 Bitcoin Cash account at m/44'/145'/0' and show
its extended public key and fingerprint.

The mnemonic is prompted for when not given as arguments. The extended
private key is only shown with --xprv after an explicit confirmation.

Examples:
  # Show the account xpub (mnemonic is prompted)
  seedcash keys show

  # Also reveal the account xprv
  seedcash keys show --xprv`,
	RunE: runKeysShow,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysShowCmd)

	keysShowCmd.Flags().BoolVar(&keysShowXPrv, "xprv", false,
		"also show the account extended private key")
	keysShowCmd.Flags().StringVar(&keysPassphrase, "passphrase", "",
		"BIP39 passphrase (omit to be prompted)")
	keysShowCmd.Flags().BoolVar(&keysNoPassphrase, "no-passphrase", false,
		"derive without a BIP39 passphrase")
}

func runKeysShow(cmd *cobra.Command, args []string) error {
	seed, err := seedFromInput(cmd, args)
	if err != nil {
		return err
	}
	defer seed.Destroy()

	showXPrv := keysShowXPrv
	if showXPrv && !Formatter().IsJSON() {
		showXPrv = promptConfirmFn(
			"The extended private key controls all derived funds. Show it?")
	}

	w := cmd.OutOrStdout()
	if Formatter().IsJSON() {
		result := struct {
			Path        string `json:"path"`
			Fingerprint string `json:"fingerprint"`
			XPub        string `json:"xpub"`
			XPrv        string `json:"xprv,omitempty"`
		}{
			Path:        wallet.AccountPath,
			Fingerprint: seed.Fingerprint(),
			XPub:        seed.XPub(),
		}
		if showXPrv {
			result.XPrv = seed.XPrv()
		}
		return writeJSON(w, result)
	}

	outln(w)
	out(w, "  Path:        %s\n", wallet.AccountPath)
	out(w, "  Fingerprint: %s\n", seed.Fingerprint())
	out(w, "  xpub:        %s\n", seed.XPub())
	if showXPrv {
		out(w, "  xprv:        %s\n", seed.XPrv())
	}
	outln(w)
	return nil
}

// seedFromInput builds a Seed from the command arguments or prompts,
// applying the passphrase flags. Derivation time is recorded.
func seedFromInput(_ *cobra.Command, args []string) (*wallet.Seed, error) {
	list := wallet.EnglishWordlist()

	words, err := mnemonicFromArgsOrPrompt(args)
	if err != nil {
		return nil, err
	}

	passphrase := keysPassphrase
	if passphrase == "" && !keysNoPassphrase && len(args) == 0 {
		passphrase, err = promptPassphraseFn()
		if err != nil {
			return nil, err
		}
	}

	start := time.Now()
	seed, err := wallet.NewSeed(words, passphrase, list)
	metrics.Global.RecordDerivation(time.Since(start), err)
	if err != nil {
		mapped := mapWalletErr(err)
		if suggestion := suggestForWords(words, list); suggestion != "" {
			mapped = scerr.WithSuggestion(mapped, suggestion)
		}
		return nil, mapped
	}
	return seed, nil
}
