package output

import (
	"io"
	"os"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"rsc.io/qr"
)

// cashAddrPrefix identifies payloads that may be uppercased for QR
// encoding. CashAddr is case-insensitive, and the alphanumeric QR mode
// requires upper case; it produces a markedly smaller code than byte
// mode for a 54-character address.
const cashAddrPrefix = "bitcoincash:"

// QROptions control terminal rendering of an address QR code.
type QROptions struct {
	// Level is the error correction level. A terminal redraws cleanly,
	// so the lowest level keeps the code narrow.
	Level qr.Level
	// QuietZone is the blank border, in modules.
	QuietZone int
	// HalfBlocks halves the vertical footprint using half-height blocks.
	HalfBlocks bool
}

// AddressQROptions returns rendering options sized so that an address
// QR code fits a standard 80-column terminal.
func AddressQROptions() QROptions {
	return QROptions{Level: qr.L, QuietZone: 2, HalfBlocks: true}
}

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminalFd(f)
}

// RenderAddressQR writes the address as a scannable QR code when w is a
// terminal, and does nothing otherwise (piped output stays clean).
func RenderAddressQR(w io.Writer, address string, opts QROptions) {
	if !IsTerminal(w) {
		return
	}

	qrterminal.GenerateWithConfig(qrPayload(address), qrterminal.Config{
		Level:          opts.Level,
		Writer:         w,
		QuietZone:      opts.QuietZone,
		HalfBlocks:     opts.HalfBlocks,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
	})
}

// qrPayload uppercases CashAddr payloads for the alphanumeric QR mode.
// Legacy Base58 addresses are case-sensitive and pass through unchanged.
func qrPayload(address string) string {
	if strings.HasPrefix(strings.ToLower(address), cashAddrPrefix) {
		return strings.ToUpper(address)
	}
	return address
}
