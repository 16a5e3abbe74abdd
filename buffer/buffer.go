package buffer

import (
	"errors"
	"io"
	"iter"
)

// ErrOutOfRange is returned by every address-taking operation when the
// address falls outside [1, Len()]. Addresses are never clamped.
var ErrOutOfRange = errors.New("line number out of range")

// Buffer is an ordered sequence of text lines with a 1-based cursor.
// All addresses are 1-based to match the command language; address 0 is
// always out of range at this layer.
type Buffer interface {
	// Load replaces the whole buffer with one line per record and resets
	// the cursor to line 1. Loading zero records leaves a single empty
	// line, so the buffer is never truly empty.
	Load(records []string)

	// Get returns the line at addr.
	Get(addr int) (string, error)

	// Replace overwrites the line at addr.
	Replace(addr int, text string) error

	// InsertBefore grows the buffer by one line placed at addr; the line
	// previously at addr and everything after it shift up by one.
	InsertBefore(addr int, text string) error

	// AppendAfter grows the buffer by one line placed just after addr.
	AppendAfter(addr int, text string) error

	// Current returns the cursor address, always in [1, Len()].
	Current() int

	// SetCurrent moves the cursor to addr.
	SetCurrent(addr int) error

	// Len returns the number of lines, always >= 1.
	Len() int

	// All yields (address, line) pairs in document order. The sequence is
	// restartable and never mutates the buffer.
	All() iter.Seq2[int, string]

	// Export returns a copy of every line, in order, for persistence.
	Export() []string

	// WriteTo writes the buffer to w, one line per record with a trailing
	// newline. Returns the number of bytes written.
	WriteTo(w io.Writer) (int64, error)
}
