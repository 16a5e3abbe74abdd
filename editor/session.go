// Package editor implements led's core: the address/command/count parser,
// the command dispatcher, and the session loop that drives the line
// buffer from a stream of command tokens.
//
// A token has the form [LINE]COMMAND[COUNT]. By default a command runs
// once on the current line; a leading line number targets that line
// instead, and a trailing count repeats the command, with the mutating
// commands stepping to the next line between repetitions.
//
//	f - file:    open or create a file
//	v - view:    print the whole line buffer
//	r - read:    print the addressed line
//	s - setline: set the current line
//	l - line:    print the current line number
//	i - insert:  insert text before the addressed line
//	a - append:  insert text after the addressed line
//	c - change:  replace text at the addressed line
//	w - write:   write the buffer to the backing file
//	q - exit:    exit the program
package editor

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/bulga138/led/buffer"
	"github.com/bulga138/led/config"
	"github.com/bulga138/led/file"
)

// ANSI escape codes for the error channel.
const (
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[m"
)

// Session owns one editing session: the line buffer, the input stream the
// commands and text arrive on, and the output and error sinks. A Session
// is single-threaded; the loop finishes each command before reading the
// next token.
type Session struct {
	cfg     config.Config
	buf     buffer.Buffer
	in      *input
	out     io.Writer
	errw    io.Writer
	backing *file.File

	// Prompt prints the command prompt before each token read; enabled
	// for interactive input only.
	Prompt bool
	// Color styles the error channel with ANSI dim.
	Color bool
}

// NewSession wires a session over the given streams with an empty buffer.
// The write command prints to out until a backing file is attached.
func NewSession(cfg config.Config, in io.Reader, out, errw io.Writer) *Session {
	return &Session{
		cfg:  cfg,
		buf:  buffer.New(cfg.BufferLength),
		in:   newInput(in, cfg.LineWidth),
		out:  out,
		errw: errw,
	}
}

// Buffer exposes the session's line buffer.
func (s *Session) Buffer() buffer.Buffer {
	return s.buf
}

// Edit attaches a backing file and hydrates the buffer from it.
func (s *Session) Edit(f *file.File) error {
	records, err := f.Load()
	if err != nil {
		return fmt.Errorf("loading %s: %w", f.Name(), err)
	}
	s.buf.Load(records)
	s.backing = f
	log.Printf("loaded %d lines from %s", len(records), f.Name())
	return nil
}

// Run is the session loop: read one token, parse it, dispatch it, repeat
// until the quit command or end of input. Per-token failures go to the
// error channel and the loop continues; only a broken input stream
// terminates it with an error.
func (s *Session) Run() error {
	for {
		if s.Prompt {
			fmt.Fprint(s.out, "* ")
		}

		tok, err := s.in.token()
		if errors.Is(err, io.EOF) {
			// End of input is an implicit quit.
			log.Println("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		cmd, err := parseToken(tok)
		if err != nil {
			s.reportError(err)
			continue
		}
		if s.dispatch(cmd) {
			return nil
		}
	}
}

// Close releases the backing file, if any.
func (s *Session) Close() error {
	if s.backing == nil {
		return nil
	}
	return s.backing.Close()
}

// reportError renders a per-token failure on the error channel. The
// buffer is untouched and the session always continues afterwards.
func (s *Session) reportError(err error) {
	if s.Color {
		fmt.Fprintf(s.errw, "%s%v%s\n", ansiDim, err, ansiReset)
		return
	}
	fmt.Fprintln(s.errw, err)
}
