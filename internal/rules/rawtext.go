package rules

import (
	"fmt"
	"strings"

	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// NoRawText flags raw text placed directly inside a JSX element other than
// <Text>. React Native throws at runtime when text ends up outside a Text
// component.
type NoRawText struct{}

func NewNoRawText() *NoRawText { return &NoRawText{} }

func (*NoRawText) Meta() rule.Meta {
	return rule.Meta{
		Name:     "no-raw-text",
		Code:     diag.StyleRawText,
		Severity: diag.SevError,
		Doc:      "require raw text to live inside a Text element",
	}
}

func (*NoRawText) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindJSXText}
}

func (*NoRawText) Visit(ctx *rule.Context, node syntax.Node) {
	text := strings.TrimSpace(node.Text())
	if text == "" {
		return
	}
	parent := node.Parent()
	if parent.Kind() != syntax.KindJSXElement {
		return
	}
	opening := parent.NamedChild(0)
	if opening.Kind() != syntax.KindJSXOpeningElement {
		return
	}
	name := opening.ChildByField("name")
	if name.Valid() && isTextElement(name.Text()) {
		return
	}
	ctx.Report(diag.StyleRawText, node.Span(),
		fmt.Sprintf("raw text %q must be wrapped in a <Text> element", snippet(text))).Emit()
}

// isTextElement accepts Text and namespaced variants such as Animated.Text.
func isTextElement(name string) bool {
	return name == "Text" || strings.HasSuffix(name, ".Text")
}
