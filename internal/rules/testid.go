package rules

import (
	"fmt"

	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// DuplicateTestID flags testID string literals whose value repeats anywhere
// in the run. Duplicate ids make end-to-end selectors ambiguous. The first
// occurrence is the canonical one; second and later occurrences are reported,
// across files, via the run-scoped registry.
type DuplicateTestID struct{}

func NewDuplicateTestID() *DuplicateTestID { return &DuplicateTestID{} }

func (*DuplicateTestID) Meta() rule.Meta {
	return rule.Meta{
		Name:     "duplicate-test-id",
		Code:     diag.TestDuplicateID,
		Severity: diag.SevError,
		Doc:      "forbid repeated testID literal values across the run",
	}
}

func (*DuplicateTestID) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindJSXAttribute}
}

func (*DuplicateTestID) Visit(ctx *rule.Context, node syntax.Node) {
	if attrName(node) != "testID" {
		return
	}
	lit := stringLiteral(attrValue(node))
	if !lit.Valid() {
		// Computed ids cannot be compared statically.
		return
	}
	id := lit.StringValue()
	if id == "" {
		return
	}
	first, dup := ctx.TestIDs.Observe(id, lit.Span())
	if !dup {
		return
	}
	ctx.Report(diag.TestDuplicateID, lit.Span(),
		fmt.Sprintf("testID %q is already used elsewhere", id)).
		WithNote(first, "first occurrence").
		Emit()
}
