package rules

import (
	"nativelint/internal/diag"
	"nativelint/internal/fix"
	"nativelint/internal/rule"
	"nativelint/internal/source"
	"nativelint/internal/syntax"
)

// TypedNavigation flags useNavigation() calls without a concrete type
// argument. Untyped navigation erases the param-list contract and turns
// route-name typos into runtime failures.
type TypedNavigation struct{}

func NewTypedNavigation() *TypedNavigation { return &TypedNavigation{} }

func (*TypedNavigation) Meta() rule.Meta {
	return rule.Meta{
		Name:     "typed-navigation",
		Code:     diag.TypUntypedNavigation,
		Severity: diag.SevWarning,
		HasFix:   true,
		Doc:      "require a param-list type argument on useNavigation",
	}
}

func (*TypedNavigation) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindCallExpression}
}

func (*TypedNavigation) Visit(ctx *rule.Context, node syntax.Node) {
	callee := node.ChildByField("function")
	if !callee.Valid() || callee.Kind() != syntax.KindIdentifier || callee.Text() != "useNavigation" {
		return
	}
	if node.ChildByField("type_arguments").Valid() {
		return
	}

	b := ctx.Report(diag.TypUntypedNavigation, callee.Span(),
		"useNavigation without a type argument; navigation targets are unchecked")
	if ctx.FixEnabled {
		end := callee.Span().End
		at := source.Span{File: callee.Span().File, Start: end, End: end}
		// The inserted names assume the project's shared RootStackParamList;
		// the import is left to the author, hence heuristics-level safety.
		b.WithFixSuggestion(fix.InsertText(
			"add a navigation prop type argument",
			at, "<NativeStackNavigationProp<RootStackParamList>>", "",
			fix.WithApplicability(diag.FixApplicabilitySafeWithHeuristics)))
	}
	b.Emit()
}
