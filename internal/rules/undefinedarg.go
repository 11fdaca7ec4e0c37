package rules

import (
	"fmt"
	"strings"

	"nativelint/internal/diag"
	"nativelint/internal/fix"
	"nativelint/internal/rule"
	"nativelint/internal/source"
	"nativelint/internal/syntax"
)

// ExplicitUndefinedArg flags call sites that silently omit trailing arguments
// whose declared parameter type is `T | undefined`. Passing undefined
// explicitly keeps the omission visible at the call site. The callee is
// resolved syntactically within the same file; calls to anything else produce
// no verdict.
type ExplicitUndefinedArg struct{}

func NewExplicitUndefinedArg() *ExplicitUndefinedArg { return &ExplicitUndefinedArg{} }

func (*ExplicitUndefinedArg) Meta() rule.Meta {
	return rule.Meta{
		Name:     "explicit-undefined-arg",
		Code:     diag.TypImplicitUndefined,
		Severity: diag.SevWarning,
		HasFix:   true,
		Doc:      "pass undefined explicitly instead of omitting | undefined arguments",
	}
}

func (*ExplicitUndefinedArg) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindCallExpression}
}

func (*ExplicitUndefinedArg) Visit(ctx *rule.Context, node syntax.Node) {
	if ctx.Resolver == nil {
		return
	}
	callee := node.ChildByField("function")
	if !callee.Valid() || callee.Kind() != syntax.KindIdentifier {
		return
	}
	decl := ctx.Resolver.FunctionDecl(callee.Text())
	if !decl.Valid() {
		return
	}
	params := declaredParameters(decl)
	args := node.ChildByField("arguments")
	if !args.Valid() {
		return
	}
	given := args.NamedChildCount()
	if given >= len(params) {
		return
	}

	// Every omitted trailing parameter must admit undefined by declared type;
	// otherwise the omission is a genuine arity problem, not our business.
	omitted := params[given:]
	for _, p := range omitted {
		if p.Kind() != syntax.KindRequiredParameter {
			return
		}
		ann := p.ChildByField("type")
		if !ann.Valid() {
			return
		}
		ty := ann.NamedChild(0)
		if !ty.Valid() || ty.Kind() != syntax.KindUnionType || !unionHasUndefined(ty) {
			return
		}
	}

	b := ctx.Report(diag.TypImplicitUndefined, node.Span(),
		fmt.Sprintf("call to %q omits %d argument(s) typed | undefined; pass undefined explicitly", callee.Text(), len(omitted)))
	if ctx.FixEnabled {
		b.WithFixSuggestion(undefinedArgFix(args, given, len(omitted)))
	}
	b.Emit()
}

// declaredParameters lists the formal parameters of a function declaration.
func declaredParameters(decl syntax.Node) []syntax.Node {
	params := decl.ChildByField("parameters")
	if !params.Valid() {
		return nil
	}
	var out []syntax.Node
	for _, p := range params.NamedChildren() {
		switch p.Kind() {
		case syntax.KindRequiredParameter, syntax.KindOptionalParameter:
			out = append(out, p)
		}
	}
	return out
}

// undefinedArgFix inserts explicit undefined arguments just before the
// closing parenthesis of the call.
func undefinedArgFix(args syntax.Node, given, missing int) diag.Fix {
	span := args.Span()
	at := source.Span{File: span.File, Start: span.End - 1, End: span.End - 1}

	parts := make([]string, missing)
	for i := range parts {
		parts[i] = "undefined"
	}
	text := strings.Join(parts, ", ")
	if given > 0 {
		text = ", " + text
	}
	return fix.InsertText("pass undefined explicitly", at, text, "", fix.Preferred())
}
