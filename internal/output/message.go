package output

import (
	"fmt"
	"io"
	"os"
)

// Status lines go to stderr so that stdout stays clean for piped text
// or JSON output.
//
//nolint:gochecknoglobals // swapped out in tests
var statusOut io.Writer = os.Stderr

// Info reports progress during an interactive run.
func Info(format string, args ...any) {
	status("", format, args...)
}

// Warn flags a condition the user should act on.
func Warn(format string, args ...any) {
	status("warning: ", format, args...)
}

// Success confirms that an operation completed.
func Success(format string, args ...any) {
	status("ok: ", format, args...)
}

func status(prefix, format string, args ...any) {
	_, _ = fmt.Fprintf(statusOut, prefix+format+"\n", args...)
}
