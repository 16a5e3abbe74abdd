package editor

import (
	"errors"
	"fmt"
	"strconv"
)

// Command is one parsed input token: an optional target address, a
// single-character command identifier, and a repeat count. Commands are
// transient; nothing outlives the loop iteration that dispatched it.
type Command struct {
	Addr  int // 1-based target line; 0 means unset, use the cursor
	ID    byte
	Count int // always >= 1
}

var (
	ErrAddressOverflow = errors.New("address overflow")
	ErrCountOverflow   = errors.New("count overflow")
	ErrInvalidCommand  = errors.New("invalid command")
)

// parseToken decomposes tok as [address]id[count]: the address is the
// maximal digit run at the front, the count the maximal digit run at the
// back, and whatever remains between them must be exactly one character.
// Two plain scans over the immutable token; nothing is reversed or
// mutated.
func parseToken(tok string) (Command, error) {
	i := 0
	for i < len(tok) && isDigit(tok[i]) {
		i++
	}
	k := len(tok)
	for k > i && isDigit(tok[k-1]) {
		k--
	}
	if k-i != 1 {
		// Covers the empty remainder (all digits, or an empty token)
		// and multi-character identifiers alike.
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, tok)
	}

	cmd := Command{ID: tok[i], Count: 1}

	if i > 0 {
		n, err := strconv.ParseUint(tok[:i], 10, strconv.IntSize-1)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrAddressOverflow, tok[:i])
		}
		// An explicit 0 stays unset: the dispatcher substitutes the
		// cursor, same as an omitted address.
		cmd.Addr = int(n)
	}

	if suffix := tok[i+1:]; suffix != "" {
		n, err := strconv.ParseUint(suffix, 10, strconv.IntSize-1)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrCountOverflow, suffix)
		}
		// An explicit 0 count means "unspecified" and normalizes to 1.
		if n > 0 {
			cmd.Count = int(n)
		}
	}

	return cmd, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
