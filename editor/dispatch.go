package editor

import (
	"fmt"
	"log"

	"github.com/bulga138/led/buffer"
	"github.com/bulga138/led/file"
)

// Command identifiers, as typed by the user.
const (
	cmdFile    = 'f'
	cmdView    = 'v'
	cmdRead    = 'r'
	cmdLine    = 'l'
	cmdSetLine = 's'
	cmdInsert  = 'i'
	cmdAppend  = 'a'
	cmdChange  = 'c'
	cmdWrite   = 'w'
	cmdQuit    = 'q'
)

// dispatch executes one parsed command against the buffer. The address is
// resolved once per token: an unset address means the cursor. The
// returned bool reports whether the session should terminate.
func (s *Session) dispatch(cmd Command) bool {
	addr := cmd.Addr
	if addr == 0 {
		addr = s.buf.Current()
	}

	switch cmd.ID {
	case cmdView:
		for i, line := range s.buf.All() {
			fmt.Fprintf(s.out, "%d: %s\n", i, line)
		}

	case cmdRead:
		line, err := s.buf.Get(addr)
		if err != nil {
			fmt.Fprintln(s.out, "EOF")
			break
		}
		for n := 0; n < cmd.Count; n++ {
			fmt.Fprintf(s.out, "%d: %s\n", addr, line)
		}
		s.buf.SetCurrent(addr)

	case cmdLine:
		fmt.Fprintf(s.out, "Line: %d\n", s.buf.Current())

	case cmdSetLine:
		if err := s.buf.SetCurrent(addr); err != nil {
			fmt.Fprintln(s.out, "EOF")
			break
		}
		fmt.Fprintf(s.out, "Set Line: %d\n", addr)

	case cmdInsert, cmdAppend, cmdChange:
		s.mutate(cmd.ID, addr, cmd.Count)

	case cmdWrite:
		s.write()

	case cmdFile:
		s.openFile()

	case cmdQuit:
		fmt.Fprintln(s.out, "Exiting program")
		return true

	default:
		s.reportError(fmt.Errorf("%w: %q", ErrInvalidCommand, string(cmd.ID)))
	}

	return false
}

// mutate runs one of the three buffer-mutating commands count times,
// advancing the target address between repetitions so a repeated command
// walks consecutive lines. Each repetition consumes one line of text from
// the input stream. A repetition that resolves out of range is reported
// and aborts the remainder; repetitions already applied stay applied.
func (s *Session) mutate(id byte, addr, count int) {
	for n := 0; n < count; n++ {
		// Validate before consuming a text line, so a failing
		// repetition doesn't eat the next command.
		if addr < 1 || addr > s.buf.Len() {
			s.reportError(fmt.Errorf("%w: %d", buffer.ErrOutOfRange, addr))
			return
		}

		text, err := s.in.line()
		if err != nil {
			s.reportError(fmt.Errorf("reading text: %w", err))
			return
		}

		var mutErr error
		switch id {
		case cmdInsert:
			mutErr = s.buf.InsertBefore(addr, text)
		case cmdAppend:
			mutErr = s.buf.AppendAfter(addr, text)
		case cmdChange:
			mutErr = s.buf.Replace(addr, text)
		}
		if mutErr != nil {
			s.reportError(mutErr)
			return
		}

		// The cursor follows the edit onto the next line.
		next := addr + 1
		if next > s.buf.Len() {
			next = s.buf.Len()
		}
		s.buf.SetCurrent(next)
		addr++
	}
}

// write persists the buffer: to the backing file when one is attached,
// otherwise to the session output. A write failure aborts only this
// command; the in-memory buffer still holds everything.
func (s *Session) write() {
	fmt.Fprintln(s.out, "Writing file")
	if s.backing == nil {
		if _, err := s.buf.WriteTo(s.out); err != nil {
			s.reportError(err)
		}
		return
	}
	n, err := s.backing.Save(s.buf)
	if err != nil {
		s.reportError(err)
		return
	}
	log.Printf("wrote %d bytes to %s", n, s.backing.Name())
}

// openFile implements the file command: read a filename from the input,
// swap the backing file, and reload the buffer from it.
func (s *Session) openFile() {
	fmt.Fprint(s.out, "Enter filename: ")
	name, err := s.in.token()
	if err != nil {
		s.reportError(fmt.Errorf("reading filename: %w", err))
		return
	}

	f, created, err := file.Open(name)
	if err != nil {
		s.reportError(err)
		return
	}
	if created {
		fmt.Fprintf(s.out, "Creating file: %s\n", name)
	} else {
		fmt.Fprintf(s.out, "Editing file: %s\n", name)
	}

	records, err := f.Load()
	if err != nil {
		s.reportError(err)
		f.Close()
		return
	}
	if s.backing != nil {
		s.backing.Close()
	}
	s.backing = f
	s.buf.Load(records)
}
