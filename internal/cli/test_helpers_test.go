package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/seedcash/seedcash/internal/config"
	"github.com/seedcash/seedcash/internal/output"
)

// testMnemonic is the zero-entropy 12-word mnemonic.
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// initTestGlobals installs fresh config and formatter state backed by a
// temporary home directory, restoring the previous state on cleanup.
func initTestGlobals(t *testing.T, format output.Format) {
	t.Helper()

	origCfg := cfg
	origLogger := logger
	origFormatter := formatter
	t.Cleanup(func() {
		cfg = origCfg
		logger = origLogger
		formatter = origFormatter
	})

	cfg = config.Defaults()
	cfg.Home = t.TempDir()
	logger = config.NullLogger()
	formatter = output.NewFormatter(format, &bytes.Buffer{})
}

// newTestCmd returns a bare command with its output captured in buf.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

// withMockPrompts replaces prompt functions for testing and restores on cleanup.
func withMockPrompts(t *testing.T, mnemonic string, passphrase string, confirm bool) {
	t.Helper()

	origPassphrase := promptPassphraseFn
	origMnemonic := promptMnemonicFn
	origConfirm := promptConfirmFn
	t.Cleanup(func() {
		promptPassphraseFn = origPassphrase
		promptMnemonicFn = origMnemonic
		promptConfirmFn = origConfirm
	})

	promptPassphraseFn = func() (string, error) {
		return passphrase, nil
	}
	promptMnemonicFn = func() ([]string, error) {
		return strings.Fields(mnemonic), nil
	}
	promptConfirmFn = func(_ string) bool { return confirm }
}
