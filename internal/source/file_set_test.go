package source

import (
	"testing"
)

func TestFileSetAddAndGet(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("Button.tsx", []byte("const a = 1;\n"))
	if id != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id)
	}

	file := fs.Get(id)
	if file.Path != "Button.tsx" {
		t.Errorf("expected path 'Button.tsx', got %q", file.Path)
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}

	got, ok := fs.GetByPath("Button.tsx")
	if !ok {
		t.Fatal("expected file to be found by path")
	}
	if got.ID != id {
		t.Errorf("expected ID %d, got %d", id, got.ID)
	}
}

func TestFileSetLineIdx(t *testing.T) {
	fs := NewFileSet()

	// "a\nb\n" -> LineIdx = [1, 3]
	id := fs.AddVirtual("a.tsx", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.tsx", []byte("let x;\nlet y;\n"))

	start, end := fs.Resolve(Span{File: id, Start: 7, End: 12})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("expected start 2:1, got %d:%d", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Errorf("expected end 2:6, got %d:%d", end.Line, end.Col)
	}
}

func TestFileSetText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.tsx", []byte("const answer = 42;"))

	got := fs.Text(Span{File: id, Start: 6, End: 12})
	if got != "answer" {
		t.Errorf("expected 'answer', got %q", got)
	}

	// Out of range is clamped, not panicking.
	got = fs.Text(Span{File: id, Start: 100, End: 200})
	if got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.tsx", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{line: 0, want: ""},
		{line: 1, want: "first"},
		{line: 2, want: "second"},
		{line: 3, want: "third"},
		{line: 4, want: ""},
	}

	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
