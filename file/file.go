// Package file is the backing-file collaborator: it opens or creates the
// file being edited, hydrates the line buffer from it, and persists the
// buffer back to it. The in-memory buffer never touches the disk directly.
package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
)

// File is an open backing file.
type File struct {
	name string
	f    *os.File
}

// Open opens name for editing, creating it when it does not exist. The
// second return value reports whether the file had to be created.
func Open(name string) (*File, bool, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0o644)
	if err == nil {
		return &File{name: name, f: f}, false, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, fmt.Errorf("opening %s: %w", name, err)
	}
	f, err = os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, false, fmt.Errorf("creating %s: %w", name, err)
	}
	return &File{name: name, f: f}, true, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Load reads the whole file and splits it into one record per line, with
// line terminators stripped. The file is mapped read-only for the duration
// of the read and unmapped before returning. An empty file yields no
// records.
func (f *File) Load() ([]string, error) {
	info, err := f.f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", f.name, err)
	}
	if info.Size() == 0 {
		// Mapping a zero-length file is an error on every platform.
		return nil, nil
	}

	m, err := mmap.Map(f.f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", f.name, err)
	}
	defer m.Unmap()

	records := strings.Split(string(m), "\n")
	// A trailing newline terminates the last record, it does not start
	// another one.
	if records[len(records)-1] == "" {
		records = records[:len(records)-1]
	}
	return records, nil
}

// Save replaces the file's contents with content and returns the number of
// bytes written.
func (f *File) Save(content io.WriterTo) (int64, error) {
	if err := f.f.Truncate(0); err != nil {
		return 0, fmt.Errorf("truncating %s: %w", f.name, err)
	}
	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewinding %s: %w", f.name, err)
	}

	w := bufio.NewWriter(f.f)
	n, err := content.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", f.name, err)
	}
	if err := w.Flush(); err != nil {
		return n, fmt.Errorf("writing %s: %w", f.name, err)
	}
	return n, nil
}

// Close releases the underlying file handle.
func (f *File) Close() error {
	return f.f.Close()
}
