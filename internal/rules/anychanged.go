package rules

import (
	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// AnyInChangedFiles forbids explicit `any` annotations, but only in files that
// are part of the current version-control change. Untouched legacy files pass
// so the rule can be adopted incrementally.
type AnyInChangedFiles struct{}

func NewAnyInChangedFiles() *AnyInChangedFiles { return &AnyInChangedFiles{} }

func (*AnyInChangedFiles) Meta() rule.Meta {
	return rule.Meta{
		Name:     "any-in-changed-files",
		Code:     diag.TypAnyInChangedFiles,
		Severity: diag.SevError,
		Doc:      "forbid explicit any in files touched by the current change",
	}
}

func (*AnyInChangedFiles) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindPredefinedType}
}

func (*AnyInChangedFiles) Visit(ctx *rule.Context, node syntax.Node) {
	if node.Text() != "any" {
		return
	}
	// A nil or empty changed set means nothing qualifies.
	if !ctx.Changed.Contains(ctx.File.Path) {
		return
	}
	ctx.Report(diag.TypAnyInChangedFiles, node.Span(),
		"explicit any in a changed file; use a concrete type or unknown").Emit()
}
