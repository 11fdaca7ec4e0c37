package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"nativelint/internal/diag"
	"nativelint/internal/source"
)

// Pretty renders diagnostics for humans. The bag is expected to be sorted.
// Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline covering the span, then
// notes and fix titles when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, fs, d, opts)
	}
}

func writePretty(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	path := renderPath(fs, d.Primary.File, opts.PathMode)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Bold).Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, code, d.Message)

	writeUnderlinedLine(w, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			notePath := renderPath(fs, note.Span.File, opts.PathMode)
			label := "note"
			if opts.Color {
				label = color.New(color.FgCyan).Sprint(label)
			}
			fmt.Fprintf(w, "  %s:%d:%d: %s: %s\n", notePath, noteStart.Line, noteStart.Col, label, note.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			marker := ""
			if fix.IsPreferred {
				marker = " (preferred)"
			}
			fmt.Fprintf(w, "  fix: %s%s\n", fix.Title, marker)
		}
	}
}

// writeUnderlinedLine prints the first line of the span with a caret marker.
func writeUnderlinedLine(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	if span.Start == span.End && span.Start == 0 {
		// Whole-file diagnostics (load failures) have no anchor line.
		return
	}
	start, end := fs.Resolve(span)
	file := fs.Get(span.File)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	line = strings.ReplaceAll(line, "\t", "    ")
	fmt.Fprintf(w, "  %s\n", line)

	prefixCols := int(start.Col) - 1
	if prefixCols < 0 {
		prefixCols = 0
	}
	raw := file.GetLine(start.Line)
	if prefixCols > len(raw) {
		prefixCols = len(raw)
	}
	prefix := strings.ReplaceAll(raw[:prefixCols], "\t", "    ")

	spanCols := 1
	if end.Line == start.Line && end.Col > start.Col {
		covered := raw[prefixCols:min(int(end.Col)-1, len(raw))]
		spanCols = max(runewidth.StringWidth(covered), 1)
	}
	underline := "^" + strings.Repeat("~", spanCols-1)
	if opts.Color {
		underline = color.New(color.FgGreen, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", runewidth.StringWidth(prefix)), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

// Short renders one diagnostic per line without context, for editors and
// scripts that parse the classic compiler format.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, pathMode PathMode) {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s\n",
			renderPath(fs, d.Primary.File, pathMode),
			start.Line, start.Col, d.Code.ID(), d.Message)
	}
}
