package rules

import (
	"fmt"

	"nativelint/internal/diag"
	"nativelint/internal/fix"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// ExplicitOptionalUnion flags the `name?: T` optional-parameter shorthand and
// offers a rewrite to `name: T | undefined`, which forces callers to spell
// the missing value out. The rewrite output never matches the rule again, so
// repeated fix runs are stable.
type ExplicitOptionalUnion struct{}

func NewExplicitOptionalUnion() *ExplicitOptionalUnion { return &ExplicitOptionalUnion{} }

func (*ExplicitOptionalUnion) Meta() rule.Meta {
	return rule.Meta{
		Name:     "explicit-optional-union",
		Code:     diag.TypOptionalParam,
		Severity: diag.SevWarning,
		HasFix:   true,
		Doc:      "spell optional parameters as an explicit | undefined union",
	}
}

func (*ExplicitOptionalUnion) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindOptionalParameter}
}

func (*ExplicitOptionalUnion) Visit(ctx *rule.Context, node syntax.Node) {
	pattern := node.ChildByField("pattern")
	if !pattern.Valid() {
		pattern = node.ChildByField("name")
	}
	if !pattern.Valid() {
		return
	}

	b := ctx.Report(diag.TypOptionalParam, node.Span(),
		fmt.Sprintf("optional parameter %q hides the undefined case; declare the union explicitly", snippet(pattern.Text())))
	if ctx.FixEnabled {
		if newText, ok := explicitForm(node, pattern); ok {
			b.WithFixSuggestion(fix.ReplaceSpan(
				"replace ?: with an explicit | undefined union",
				node.Span(), newText, node.Text(), fix.Preferred()))
		}
	}
	b.Emit()
}

// explicitForm builds the required-parameter spelling. Parameters without a
// type annotation keep the diagnostic but get no automated rewrite.
func explicitForm(param, pattern syntax.Node) (string, bool) {
	ann := param.ChildByField("type")
	if !ann.Valid() {
		return "", false
	}
	inner := ann.NamedChild(0)
	if !inner.Valid() {
		return "", false
	}
	if inner.Kind() == syntax.KindUnionType && unionHasUndefined(inner) {
		// `x?: T | undefined` only needs the question mark dropped.
		return pattern.Text() + ": " + inner.Text(), true
	}
	return pattern.Text() + ": " + inner.Text() + " | undefined", true
}
