package toml

import (
	"reflect"
	"testing"
)

func TestParseNative(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			"empty input",
			"",
			map[string]any{},
		},
		{
			"comments and blanks",
			"# a comment\n\n# another\n",
			map[string]any{},
		},
		{
			"scalar values",
			"name = \"led\"\nwidth = 80\nratio = 1.5\nprompt = true\n",
			map[string]any{"name": "led", "width": 80, "ratio": 1.5, "prompt": true},
		},
		{
			"table",
			"[editor]\nbuffer_length = 100\n",
			map[string]any{"editor": map[string]any{"buffer_length": 100}},
		},
		{
			"nested table",
			"[a.b]\nk = false\n",
			map[string]any{"a": map[string]any{"b": map[string]any{"k": false}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNative(tt.input)
			if err != nil {
				t.Fatalf("ParseNative failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestParseNative_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"bare word", "what\n", 1},
		{"empty table name", "[]\n", 1},
		{"bad value", "k = nonsense\n", 1},
		{"error line number", "ok = 1\nbroken\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNative(tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			perr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, perr.Line)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := map[string]any{
		"title": "config",
		"editor": map[string]any{
			"buffer_length": 100,
			"prompt":        true,
			"scale":         0.5,
		},
	}

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := ParseNative(string(data))
	if err != nil {
		t.Fatalf("ParseNative of encoded data failed: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip mismatch:\nin:  %#v\nout: %#v", in, got)
	}
}

func TestEncode_UnsupportedType(t *testing.T) {
	_, err := Encode(map[string]any{"bad": []int{1, 2}})
	if err == nil {
		t.Fatal("expected an error for unsupported value type")
	}
}
