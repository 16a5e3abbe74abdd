package buffer

import (
	"fmt"
	"io"
	"iter"
)

// DefaultCapacity is the allocation hint used when the caller supplies none.
const DefaultCapacity = 100

// LineBuffer is the Buffer implementation: a growable slice of lines plus
// the cursor. The capacity passed to New is only a hint; the buffer grows
// past it freely.
type LineBuffer struct {
	lines   []string
	current int // 1-based, invariant: 1 <= current <= len(lines)
}

// Statically check that *LineBuffer implements the Buffer interface.
var _ Buffer = (*LineBuffer)(nil)

// New creates an empty LineBuffer holding a single empty line.
func New(capacity int) *LineBuffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	b := &LineBuffer{lines: make([]string, 0, capacity)}
	b.Load(nil)
	return b
}

func (b *LineBuffer) Load(records []string) {
	b.lines = b.lines[:0]
	b.lines = append(b.lines, records...)
	if len(b.lines) == 0 {
		b.lines = append(b.lines, "")
	}
	b.current = 1
}

func (b *LineBuffer) check(addr int) error {
	if addr < 1 || addr > len(b.lines) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, addr)
	}
	return nil
}

func (b *LineBuffer) Get(addr int) (string, error) {
	if err := b.check(addr); err != nil {
		return "", err
	}
	return b.lines[addr-1], nil
}

func (b *LineBuffer) Replace(addr int, text string) error {
	if err := b.check(addr); err != nil {
		return err
	}
	b.lines[addr-1] = text
	return nil
}

func (b *LineBuffer) InsertBefore(addr int, text string) error {
	if err := b.check(addr); err != nil {
		return err
	}
	b.lines = append(b.lines, "")
	copy(b.lines[addr:], b.lines[addr-1:])
	b.lines[addr-1] = text
	return nil
}

func (b *LineBuffer) AppendAfter(addr int, text string) error {
	if err := b.check(addr); err != nil {
		return err
	}
	b.lines = append(b.lines, "")
	copy(b.lines[addr+1:], b.lines[addr:])
	b.lines[addr] = text
	return nil
}

func (b *LineBuffer) Current() int {
	return b.current
}

func (b *LineBuffer) SetCurrent(addr int) error {
	if err := b.check(addr); err != nil {
		return err
	}
	b.current = addr
	return nil
}

func (b *LineBuffer) Len() int {
	return len(b.lines)
}

func (b *LineBuffer) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range b.lines {
			if !yield(i+1, line) {
				return
			}
		}
	}
}

func (b *LineBuffer) Export() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *LineBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range b.lines {
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
