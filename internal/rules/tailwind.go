package rules

import (
	"fmt"

	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// NoTailwindClass flags className/tw attributes carrying a utility-class
// string. React Native renders no CSS, so the string silently does nothing.
type NoTailwindClass struct{}

func NewNoTailwindClass() *NoTailwindClass { return &NoTailwindClass{} }

func (*NoTailwindClass) Meta() rule.Meta {
	return rule.Meta{
		Name:     "no-tailwind-class",
		Code:     diag.StyleTailwindClass,
		Severity: diag.SevWarning,
		Doc:      "forbid utility-class strings on className/tw attributes",
	}
}

func (*NoTailwindClass) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindJSXAttribute}
}

func (*NoTailwindClass) Visit(ctx *rule.Context, node syntax.Node) {
	name := attrName(node)
	if name != "className" && name != "tw" {
		return
	}
	value := attrValue(node)
	if value.Kind() == syntax.KindJSXExpression {
		value = value.NamedChild(0)
	}
	switch value.Kind() {
	case syntax.KindString, syntax.KindTemplateString:
	default:
		return
	}
	ctx.Report(diag.StyleTailwindClass, node.Span(),
		fmt.Sprintf("%s has no effect in React Native; use StyleSheet styles", name)).Emit()
}
