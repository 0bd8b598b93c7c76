package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedcash/seedcash/internal/metrics"
	"github.com/seedcash/seedcash/internal/output"
	"github.com/seedcash/seedcash/internal/wallet"
	scerr "github.com/seedcash/seedcash/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	// receiveXPub derives from an account xpub instead of a mnemonic.
	receiveXPub string
	// receiveIndex is the first address index to derive.
	receiveIndex uint32
	// receiveCount is the number of consecutive addresses to show.
	receiveCount int
	// receiveFormat selects the address encoding.
	receiveFormat string
	// receiveQR renders the address as a terminal QR code.
	receiveQR bool
)

// receiveCmd derives receiving addresses.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var receiveCmd = &cobra.Command{
	Use:   "receive",
	Short: "Derive receiving addresses",
	Long: `Derive receiving addresses on the external branch of the
m/44'/145'/0' account.

With --xpub the addresses come from the extended public key alone and no
secret material is touched. Without it the mnemonic is prompted for.

Examples:
  # First receiving address from an account xpub
  seedcash receive --xpub xpub6C... --format cashaddr --qr

  # Ten addresses starting at index 5
  seedcash receive --xpub xpub6C... --index 5 --count 10

  # Derive from a mnemonic instead (prompted)
  seedcash receive`,
	RunE: runReceive,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(receiveCmd)

	receiveCmd.Flags().StringVar(&receiveXPub, "xpub", "", "account extended public key")
	receiveCmd.Flags().Uint32VarP(&receiveIndex, "index", "i", 0, "first address index")
	receiveCmd.Flags().IntVarP(&receiveCount, "count", "c", 0,
		"number of addresses (default from config)")
	receiveCmd.Flags().StringVarP(&receiveFormat, "format", "f", "",
		"address format: legacy, cashaddr (default from config)")
	receiveCmd.Flags().BoolVar(&receiveQR, "qr", false, "render the address as a QR code")
}

// receiveEntry is one derived address in the command output.
type receiveEntry struct {
	Index   uint32 `json:"index"`
	Path    string `json:"path"`
	Address string `json:"address"`
}

func runReceive(cmd *cobra.Command, args []string) error {
	format, count, err := receiveSettings()
	if err != nil {
		return err
	}

	account, cleanup, err := receiveAccount(cmd, args)
	if err != nil {
		return err
	}
	defer cleanup()

	entries := make([]receiveEntry, 0, count)
	for i := 0; i < count; i++ {
		index := receiveIndex + uint32(i)

		pubKey, derr := wallet.ReceivePubKey(account, index)
		if derr != nil {
			metrics.Global.RecordAddress(derr)
			return mapWalletErr(derr)
		}

		addr, derr := wallet.EncodeAddress(pubKey, format)
		metrics.Global.RecordAddress(derr)
		if derr != nil {
			return mapWalletErr(derr)
		}

		entries = append(entries, receiveEntry{
			Index:   index,
			Path:    fmt.Sprintf("%s/0/%d", wallet.AccountPath, index),
			Address: addr,
		})
	}

	return displayReceive(cmd, entries)
}

// receiveSettings resolves the address format and count from flags with
// config fallbacks.
func receiveSettings() (wallet.AddressFormat, int, error) {
	formatName := receiveFormat
	if formatName == "" {
		formatName = Config().Derivation.AddressFormat
	}
	format, err := wallet.ParseAddressFormat(formatName)
	if err != nil {
		return format, 0, scerr.WithSuggestion(
			scerr.ErrInvalidFormat,
			fmt.Sprintf("unknown address format %q (use legacy or cashaddr)", formatName),
		)
	}

	count := receiveCount
	if count <= 0 {
		count = Config().Derivation.AddressCount
	}
	if count <= 0 {
		count = 1
	}

	return format, count, nil
}

// receiveAccount resolves the account public key either from --xpub or
// by deriving a fresh seed. The cleanup func destroys any seed material.
func receiveAccount(_ *cobra.Command, args []string) (*wallet.ExtendedKey, func(), error) {
	if receiveXPub != "" {
		account, err := wallet.DecodeExtendedKey(receiveXPub)
		if err != nil {
			return nil, nil, mapWalletErr(err)
		}
		if account.Private {
			return nil, nil, scerr.WithSuggestion(
				scerr.ErrInvalidInput,
				"--xpub was given an extended private key; pass the xpub instead",
			)
		}
		return account, func() {}, nil
	}

	seed, err := seedFromInput(nil, args)
	if err != nil {
		return nil, nil, err
	}

	account, err := wallet.DecodeExtendedKey(seed.XPub())
	if err != nil {
		seed.Destroy()
		return nil, nil, mapWalletErr(err)
	}
	return account, seed.Destroy, nil
}

// displayReceive renders the derived addresses. A single address prints
// on its own lines; multiple addresses get a table.
func displayReceive(cmd *cobra.Command, entries []receiveEntry) error {
	w := cmd.OutOrStdout()

	if Formatter().IsJSON() {
		return writeJSON(w, struct {
			Addresses []receiveEntry `json:"addresses"`
		}{Addresses: entries})
	}

	if len(entries) == 1 {
		entry := entries[0]
		outln(w)
		out(w, "  Path:    %s\n", entry.Path)
		out(w, "  Address: %s\n", entry.Address)
		outln(w)

		if receiveQR {
			output.RenderAddressQR(w, entry.Address, output.AddressQROptions())
		}
		return nil
	}

	table := output.NewTable("INDEX", "PATH", "ADDRESS")
	for _, entry := range entries {
		table.AddRow(fmt.Sprintf("%d", entry.Index), entry.Path, entry.Address)
	}
	if err := table.Render(w); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if receiveQR {
		outln(w)
		outln(w, "QR codes are only rendered for a single address; use --count 1.")
	}
	return nil
}
