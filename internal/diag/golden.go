package diag

import (
	"fmt"
	"sort"
	"strings"

	"nativelint/internal/source"
)

type renderedDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGoldenDiagnostics renders diagnostics into a stable,
// single-line-per-entry representation suitable for golden files. Entries from
// dependency directories (node_modules) are dropped and the rest is sorted
// deterministically.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return formatDiagnostics(diags, fs, includeNotes, true)
}

// FormatShortDiagnostics renders diagnostics into a stable,
// single-line-per-entry representation intended for CLI short output.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return formatDiagnostics(diags, fs, includeNotes, false)
}

func formatDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes, skipVendored bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]renderedDiagnostic, 0, len(diags))
	for _, d := range diags {
		rendered = appendRendered(rendered, d, fs, includeNotes, skipVendored)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendRendered(out []renderedDiagnostic, d Diagnostic, fs *source.FileSet, includeNotes, skipVendored bool) []renderedDiagnostic {
	file := fs.Get(d.Primary.File)
	path := file.FormatPath("relative", fs.BaseDir())
	if !skipVendored || !isVendoredPath(path) {
		start, _ := fs.Resolve(d.Primary)
		out = append(out, renderedDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     path,
			Line:     start.Line,
			Column:   start.Col,
			Message:  d.Message,
		})
	}

	if !includeNotes {
		return out
	}
	for _, note := range d.Notes {
		noteFile := fs.Get(note.Span.File)
		notePath := noteFile.FormatPath("relative", fs.BaseDir())
		if skipVendored && isVendoredPath(notePath) {
			continue
		}
		start, _ := fs.Resolve(note.Span)
		out = append(out, renderedDiagnostic{
			Severity: "NOTE",
			Code:     d.Code.ID(),
			Path:     notePath,
			Line:     start.Line,
			Column:   start.Col,
			Message:  note.Msg,
		})
	}
	return out
}

func isVendoredPath(path string) bool {
	return strings.Contains(path, "node_modules/")
}
