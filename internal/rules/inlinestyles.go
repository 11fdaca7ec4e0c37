package rules

import (
	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// NoInlineStyles flags style attributes holding an object literal. The object
// is rebuilt on every render and defeats style memoization.
type NoInlineStyles struct{}

func NewNoInlineStyles() *NoInlineStyles { return &NoInlineStyles{} }

func (*NoInlineStyles) Meta() rule.Meta {
	return rule.Meta{
		Name:     "no-inline-styles",
		Code:     diag.StyleInlineObject,
		Severity: diag.SevWarning,
		Doc:      "forbid object literals on the style attribute",
	}
}

func (*NoInlineStyles) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindJSXAttribute}
}

func (*NoInlineStyles) Visit(ctx *rule.Context, node syntax.Node) {
	if attrName(node) != "style" {
		return
	}
	value := attrValue(node)
	if value.Kind() != syntax.KindJSXExpression {
		return
	}
	inner := value.NamedChild(0)
	if !objectLiteralStyle(inner) {
		return
	}
	ctx.Report(diag.StyleInlineObject, inner.Span(),
		"inline style object is rebuilt on every render; move it into a StyleSheet").Emit()
}

// objectLiteralStyle matches `{...}` and array forms like `[styles.a, {...}]`
// that embed a literal object.
func objectLiteralStyle(n syntax.Node) bool {
	switch n.Kind() {
	case syntax.KindObject:
		return true
	case syntax.KindArray:
		for _, el := range n.NamedChildren() {
			if el.Kind() == syntax.KindObject {
				return true
			}
		}
	}
	return false
}
