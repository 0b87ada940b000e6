// Package dbg provides the package-wide debug trace helper used across the
// ntru engine, gated by the NTRUGO_DEBUG environment variable.
package dbg

import (
	"fmt"
	"io"
	"os"
)

var on = os.Getenv("NTRUGO_DEBUG") == "1"

// Printf writes a trace line to w when NTRUGO_DEBUG=1, and is a no-op otherwise.
func Printf(w io.Writer, format string, args ...any) {
	if on {
		fmt.Fprintf(w, format, args...)
	}
}

// Enabled reports whether debug tracing is active.
func Enabled() bool {
	return on
}
