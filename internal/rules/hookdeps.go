package rules

import (
	"fmt"

	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
	"nativelint/internal/typeinfo"
)

// hooksWithDeps are the React hooks whose last argument is a dependency array.
var hooksWithDeps = map[string]bool{
	"useEffect":           true,
	"useLayoutEffect":     true,
	"useCallback":         true,
	"useMemo":             true,
	"useImperativeHandle": true,
}

// StableHookDeps flags dependency-array entries that are object-like values:
// a fresh object, array or closure compares unequal on every render, so the
// hook re-fires regardless. Primitive identifiers pass; expressions the
// resolver cannot classify produce no verdict.
type StableHookDeps struct{}

func NewStableHookDeps() *StableHookDeps { return &StableHookDeps{} }

func (*StableHookDeps) Meta() rule.Meta {
	return rule.Meta{
		Name:     "stable-hook-deps",
		Code:     diag.HookUnstableDep,
		Severity: diag.SevError,
		Doc:      "forbid object-like values in hook dependency arrays",
	}
}

func (*StableHookDeps) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindCallExpression}
}

func (*StableHookDeps) Visit(ctx *rule.Context, node syntax.Node) {
	callee := node.ChildByField("function")
	if !callee.Valid() || callee.Kind() != syntax.KindIdentifier || !hooksWithDeps[callee.Text()] {
		return
	}
	args := node.ChildByField("arguments")
	if !args.Valid() || args.NamedChildCount() < 2 {
		return
	}
	deps := args.NamedChild(args.NamedChildCount() - 1)
	if deps.Kind() != syntax.KindArray {
		return
	}

	for _, dep := range deps.NamedChildren() {
		if depCategory(ctx.Resolver, dep) != typeinfo.CategoryObjectLike {
			continue
		}
		ctx.Report(diag.HookUnstableDep, dep.Span(),
			fmt.Sprintf("dependency %q is object-like and compares unequal on every render; hoist or memoize it", snippet(dep.Text()))).
			Emit()
	}
}

// depCategory classifies a dependency entry. Literals are conclusive on their
// own; identifiers need the resolver, and without one the entry is unknown.
func depCategory(r *typeinfo.Resolver, dep syntax.Node) typeinfo.Category {
	switch dep.Kind() {
	case syntax.KindObject, syntax.KindArray, syntax.KindArrowFunction,
		syntax.KindFunctionExpression, syntax.KindNewExpression:
		return typeinfo.CategoryObjectLike
	}
	if r == nil {
		return typeinfo.CategoryUnknown
	}
	return r.CategoryOf(dep)
}
