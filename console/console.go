// Package console answers the only two questions the editor has about its
// terminal: is the input interactive, and may we emit ANSI sequences.
package console

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether f is attached to a terminal. The session
// prints its prompt only on interactive input, so piped scripts replay
// cleanly.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
