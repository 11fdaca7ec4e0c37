package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{name: "no carriage returns", input: "a\nb\n", want: "a\nb\n", changed: false},
		{name: "crlf pairs", input: "a\r\nb\r\n", want: "a\nb\n", changed: true},
		{name: "lone cr is kept", input: "a\rb", want: "a\rb", changed: false},
		{name: "mixed", input: "a\r\nb\rc\n", want: "a\nb\rc\n", changed: true},
		{name: "empty", input: "", want: "", changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("normalizeCRLF(%q) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had {
		t.Error("expected BOM to be detected")
	}
	if string(got) != "hi" {
		t.Errorf("expected content 'hi', got %q", got)
	}

	noBOM := []byte("hi")
	got, had = removeBOM(noBOM)
	if had {
		t.Error("did not expect BOM")
	}
	if string(got) != "hi" {
		t.Errorf("expected content 'hi', got %q", got)
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n" -> LineIdx = [2, 5]
	lineIdx := []uint32{2, 5}

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{name: "first char", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "second char", off: 1, want: LineCol{Line: 1, Col: 2}},
		{name: "first newline", off: 2, want: LineCol{Line: 1, Col: 3}},
		{name: "start of second line", off: 3, want: LineCol{Line: 2, Col: 1}},
		{name: "second newline", off: 5, want: LineCol{Line: 2, Col: 3}},
		{name: "past last newline", off: 6, want: LineCol{Line: 3, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toLineCol(lineIdx, tt.off)
			if got != tt.want {
				t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColSingleLine(t *testing.T) {
	got := toLineCol(nil, 4)
	want := LineCol{Line: 1, Col: 5}
	if got != want {
		t.Errorf("toLineCol(4) = %+v, want %+v", got, want)
	}
}
