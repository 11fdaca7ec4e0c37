// Package rules implements the individual lint checks. Each rule is a small
// stateless value: it declares the node kinds it wants to see and inspects one
// node per Visit call, reporting through the rule.Context. Rules never talk to
// each other; the only shared state is the run-scoped test-id registry on the
// Context.
package rules

import (
	"strings"

	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// All returns every rule in stable listing order.
func All() []rule.Rule {
	return []rule.Rule{
		NewAnyInChangedFiles(),
		NewExplicitOptionalUnion(),
		NewExplicitUndefinedArg(),
		NewTypedNavigation(),
		NewStableHookDeps(),
		NewNoUnusedExpression(),
		NewNoTailwindClass(),
		NewNoInlineStyles(),
		NewNoRawText(),
		NewDuplicateTestID(),
		NewNoRequireImage(),
		NewImmutability(),
	}
}

// ByName returns the rule registered under name, or nil.
func ByName(name string) rule.Rule {
	for _, r := range All() {
		if r.Meta().Name == name {
			return r
		}
	}
	return nil
}

// attrName returns the textual name of a JSX attribute node.
func attrName(attr syntax.Node) string {
	return attr.NamedChild(0).Text()
}

// attrValue returns the value node of a JSX attribute, invalid for bare
// attributes like `disabled`.
func attrValue(attr syntax.Node) syntax.Node {
	if attr.NamedChildCount() < 2 {
		return syntax.Node{}
	}
	return attr.NamedChild(1)
}

// stringLiteral unwraps a JSX attribute value down to a plain string literal.
// Template strings are rejected: their value may be dynamic.
func stringLiteral(value syntax.Node) syntax.Node {
	if value.Kind() == syntax.KindJSXExpression {
		value = value.NamedChild(0)
	}
	if value.Kind() == syntax.KindString {
		return value
	}
	return syntax.Node{}
}

// unionHasUndefined reports whether a (possibly nested) union type mentions
// undefined as a member.
func unionHasUndefined(union syntax.Node) bool {
	for _, member := range union.NamedChildren() {
		if member.Kind() == syntax.KindUnionType {
			if unionHasUndefined(member) {
				return true
			}
			continue
		}
		if strings.TrimSpace(member.Text()) == "undefined" {
			return true
		}
	}
	return false
}

// snippet clips an expression's text for use inside a message.
func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= 40 {
		return text
	}
	return string(runes[:37]) + "..."
}
