package file

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpen_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	f, created, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	if !created {
		t.Error("expected created = true for a missing file")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file was not created on disk: %v", err)
	}
}

func TestOpen_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, created, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	if created {
		t.Error("expected created = false for an existing file")
	}
	if f.Name() != path {
		t.Errorf("expected name %q, got %q", path, f.Name())
	}
}

func TestFile_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty file", "", nil},
		{"single line", "alpha\n", []string{"alpha"}},
		{"multiple lines", "alpha\nbeta\n", []string{"alpha", "beta"}},
		{"no trailing newline", "alpha\nbeta", []string{"alpha", "beta"}},
		{"blank line in the middle", "a\n\nb\n", []string{"a", "", "b"}},
		{"only a newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "load.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			f, _, err := Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer f.Close()

			got, err := f.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFile_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.txt")
	if err := os.WriteFile(path, []byte("old content that is longer\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, _, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	content := bytes.NewBufferString("a\nb\n")
	n, err := f.Save(content)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 bytes written, got %d", n)
	}

	// Save must fully replace the previous, longer contents.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nb\n" {
		t.Errorf("expected %q on disk, got %q", "a\nb\n", string(data))
	}
}

func TestFile_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.txt")
	f, _, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	if _, err := f.Save(bytes.NewBufferString("alpha\nbeta\ngamma\n")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}
