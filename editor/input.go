package editor

import (
	"bufio"
	"io"
	"strings"
)

// input reads whitespace-delimited command tokens and raw text lines from
// the same underlying reader, so text entry for the mutating commands
// interleaves with command tokens on a single stream.
type input struct {
	r *bufio.Reader
}

// newInput sizes the read buffer from the configured line width. The
// width is advisory only; bufio grows past it for longer lines.
func newInput(r io.Reader, widthHint int) *input {
	size := widthHint + 2
	if size < 64 {
		size = 64
	}
	return &input{r: bufio.NewReaderSize(r, size)}
}

// token returns the next whitespace-delimited token. The delimiter that
// ends the token is consumed, so a token at the end of a line leaves the
// reader at the start of the next one. io.EOF means the input is
// exhausted.
func (in *input) token() (string, error) {
	var sb strings.Builder

	for {
		c, err := in.r.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(c) {
			sb.WriteByte(c)
			break
		}
	}

	for {
		c, err := in.r.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) {
			return sb.String(), nil
		}
		sb.WriteByte(c)
	}
}

// line returns the rest of the current input line, or the next full line
// when the reader sits at a line start. The terminator is stripped; the
// content itself is untouched, leading whitespace included.
func (in *input) line() (string, error) {
	s, err := in.r.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
