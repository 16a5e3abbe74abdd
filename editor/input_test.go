package editor

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestInput_Token(t *testing.T) {
	in := newInput(strings.NewReader("  v \t 2s\n1i3\n"), 80)

	for _, want := range []string{"v", "2s", "1i3"} {
		got, err := in.token()
		if err != nil {
			t.Fatalf("token failed: %v", err)
		}
		if got != want {
			t.Errorf("expected token %q, got %q", want, got)
		}
	}
	if _, err := in.token(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last token, got %v", err)
	}
}

func TestInput_TokenWithoutTrailingNewline(t *testing.T) {
	in := newInput(strings.NewReader("q"), 0)
	got, err := in.token()
	if err != nil {
		t.Fatalf("token failed: %v", err)
	}
	if got != "q" {
		t.Errorf("expected %q, got %q", "q", got)
	}
	if _, err := in.token(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestInput_TokenThenLine(t *testing.T) {
	in := newInput(strings.NewReader("1i1\nhello world\n"), 0)

	tok, err := in.token()
	if err != nil {
		t.Fatal(err)
	}
	if tok != "1i1" {
		t.Fatalf("expected token %q, got %q", "1i1", tok)
	}
	line, err := in.line()
	if err != nil {
		t.Fatal(err)
	}
	if line != "hello world" {
		t.Errorf("expected line %q, got %q", "hello world", line)
	}
}

func TestInput_TextOnTheCommandLine(t *testing.T) {
	// When the token ends mid-line, the text is the rest of that line.
	in := newInput(strings.NewReader("1c1 spaced  text\n"), 0)

	if _, err := in.token(); err != nil {
		t.Fatal(err)
	}
	line, err := in.line()
	if err != nil {
		t.Fatal(err)
	}
	if line != "spaced  text" {
		t.Errorf("expected %q, got %q", "spaced  text", line)
	}
}

func TestInput_CRLF(t *testing.T) {
	in := newInput(strings.NewReader("1i1\r\nwindows text\r\n"), 0)

	if _, err := in.token(); err != nil {
		t.Fatal(err)
	}
	line, err := in.line()
	if err != nil {
		t.Fatal(err)
	}
	if line != "windows text" {
		t.Errorf("expected %q, got %q", "windows text", line)
	}
}

func TestInput_LineAtEOFWithoutNewline(t *testing.T) {
	in := newInput(strings.NewReader("1c1\nfinal"), 0)

	if _, err := in.token(); err != nil {
		t.Fatal(err)
	}
	line, err := in.line()
	if err != nil {
		t.Fatal(err)
	}
	if line != "final" {
		t.Errorf("expected %q, got %q", "final", line)
	}
	if _, err := in.line(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
