package rules

import (
	"fmt"

	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// mutatingMethods are the Array/TypedArray methods that modify the receiver.
var mutatingMethods = map[string]bool{
	"push":       true,
	"pop":        true,
	"shift":      true,
	"unshift":    true,
	"splice":     true,
	"sort":       true,
	"reverse":    true,
	"fill":       true,
	"copyWithin": true,
}

// Immutability flags in-place mutation of values the current scope does not
// own: mutating method calls, index/property assignment, update and compound
// assignment applied to a parameter or an outer-scope binding. Locally
// declared bindings may be mutated freely. Writes to ref.current are the
// sanctioned escape hatch and pass; receivers produced by a call (selector
// composition, slices) carry no binding to protect.
type Immutability struct{}

func NewImmutability() *Immutability { return &Immutability{} }

func (*Immutability) Meta() rule.Meta {
	return rule.Meta{
		Name:     "immutability",
		Code:     diag.MutForeignBinding,
		Severity: diag.SevError,
		Doc:      "forbid in-place mutation of parameters and outer-scope bindings",
	}
}

func (*Immutability) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{
		syntax.KindCallExpression,
		syntax.KindAssignmentExpression,
		syntax.KindAugmentedAssignment,
		syntax.KindUpdateExpression,
	}
}

func (*Immutability) Visit(ctx *rule.Context, node syntax.Node) {
	switch node.Kind() {
	case syntax.KindCallExpression:
		visitMutatingCall(ctx, node)
	case syntax.KindAssignmentExpression:
		visitAssignment(ctx, node)
	case syntax.KindAugmentedAssignment:
		flagForeignMutation(ctx, node, node.ChildByField("left"), "compound assignment")
	case syntax.KindUpdateExpression:
		flagForeignMutation(ctx, node, node.ChildByField("argument"), "increment/decrement")
	}
}

func visitMutatingCall(ctx *rule.Context, call syntax.Node) {
	callee := call.ChildByField("function")
	if callee.Kind() != syntax.KindMemberExpression {
		return
	}
	prop := callee.ChildByField("property")
	if !prop.Valid() || !mutatingMethods[prop.Text()] {
		return
	}
	flagForeignMutation(ctx, call, callee.ChildByField("object"), prop.Text()+"()")
}

func visitAssignment(ctx *rule.Context, assign syntax.Node) {
	left := assign.ChildByField("left")
	switch left.Kind() {
	case syntax.KindMemberExpression:
		if prop := left.ChildByField("property"); prop.Valid() && prop.Text() == "current" {
			// Writing through a ref is the point of having one.
			return
		}
		flagForeignMutation(ctx, assign, left, "property assignment")
	case syntax.KindSubscriptExpression:
		flagForeignMutation(ctx, assign, left, "index assignment")
	}
	// Plain identifier reassignment is rebinding, not mutation.
}

// flagForeignMutation reports node when the mutated target is rooted at a
// binding the enclosing scope does not own.
func flagForeignMutation(ctx *rule.Context, node, target syntax.Node, what string) {
	root := rootIdentifier(target)
	if !root.Valid() {
		// Call-rooted chains (selectItems(state).sort()) operate on a value
		// the chain itself produced.
		return
	}
	name := root.Text()
	scope := enclosingScope(root)

	switch classifyBinding(scope, name) {
	case bindingLocal:
		return
	case bindingParam:
		ctx.Report(diag.MutForeignBinding, node.Span(),
			fmt.Sprintf("%s mutates parameter %q; copy it before modifying", what, name)).Emit()
	case bindingOuter:
		ctx.Report(diag.MutForeignBinding, node.Span(),
			fmt.Sprintf("%s mutates %q, declared outside this scope", what, name)).Emit()
	}
}

// rootIdentifier follows object/index chains to the identifier that owns the
// storage, or returns an invalid node when the chain is rooted elsewhere.
func rootIdentifier(n syntax.Node) syntax.Node {
	for n.Valid() {
		switch n.Kind() {
		case syntax.KindIdentifier:
			return n
		case syntax.KindMemberExpression, syntax.KindSubscriptExpression:
			n = n.ChildByField("object")
		case syntax.KindParenthesized, syntax.KindNonNullExpression, syntax.KindAsExpression:
			n = n.NamedChild(0)
		default:
			return syntax.Node{}
		}
	}
	return syntax.Node{}
}

// enclosingScope returns the nearest function scope of n, or the program root.
func enclosingScope(n syntax.Node) syntax.Node {
	return n.Ancestor(func(a syntax.Node) bool {
		return a.Kind().IsFunctionScope() || a.Kind() == syntax.KindProgram
	})
}

type bindingKind uint8

const (
	bindingOuter bindingKind = iota
	bindingParam
	bindingLocal
)

// classifyBinding decides how the scope relates to name. Scoping is
// approximated the same way the type resolver approximates it: a declarator
// anywhere in the scope's body counts as local.
func classifyBinding(scope syntax.Node, name string) bindingKind {
	if paramDeclares(scopeParameters(scope), name) {
		return bindingParam
	}
	body := scope.ChildByField("body")
	if !body.Valid() {
		body = scope
	}
	declared := syntax.FindFirst(body, func(n syntax.Node) bool {
		if n.Kind() != syntax.KindVariableDeclarator {
			return false
		}
		pattern := n.ChildByField("name")
		return pattern.Valid() && pattern.Kind() == syntax.KindIdentifier && pattern.Text() == name
	})
	if declared.Valid() {
		return bindingLocal
	}
	return bindingOuter
}

func scopeParameters(scope syntax.Node) syntax.Node {
	params := scope.ChildByField("parameters")
	if !params.Valid() {
		// Arrow functions with a single bare parameter.
		params = scope.ChildByField("parameter")
	}
	return params
}

func paramDeclares(params syntax.Node, name string) bool {
	if !params.Valid() {
		return false
	}
	if params.Kind() == syntax.KindIdentifier {
		return params.Text() == name
	}
	match := syntax.FindFirst(params, func(n syntax.Node) bool {
		return n.Kind() == syntax.KindIdentifier && n.Text() == name
	})
	return match.Valid()
}
