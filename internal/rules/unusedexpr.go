package rules

import (
	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

// NoUnusedExpression flags expression statements whose value is computed and
// dropped without any side effect. Established idioms stay legal: short
// circuits (`ready && run()`), ternary branching, `void promise`, and the
// directive prologue.
type NoUnusedExpression struct{}

func NewNoUnusedExpression() *NoUnusedExpression { return &NoUnusedExpression{} }

func (*NoUnusedExpression) Meta() rule.Meta {
	return rule.Meta{
		Name:     "no-unused-expression-strict",
		Code:     diag.ExprUnused,
		Severity: diag.SevError,
		Doc:      "forbid expression statements without side effects",
	}
}

func (*NoUnusedExpression) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindExpressionStatement}
}

func (*NoUnusedExpression) Visit(ctx *rule.Context, node syntax.Node) {
	expr := node.NamedChild(0)
	if !expr.Valid() {
		return
	}
	if isDirective(node, expr) {
		return
	}
	if hasEffect(expr) {
		return
	}
	ctx.Report(diag.ExprUnused, node.Span(), "expression result is never used").Emit()
}

func hasEffect(expr syntax.Node) bool {
	switch expr.Kind() {
	case syntax.KindCallExpression, syntax.KindNewExpression, syntax.KindAwaitExpression,
		syntax.KindAssignmentExpression, syntax.KindAugmentedAssignment, syntax.KindUpdateExpression:
		return true

	case syntax.KindParenthesized, syntax.KindNonNullExpression, syntax.KindAsExpression:
		return hasEffect(expr.NamedChild(0))

	case syntax.KindTernaryExpression:
		// `cond ? doA() : doB()` as a statement is an accepted idiom.
		return true

	case syntax.KindBinaryExpression:
		op := expr.ChildByField("operator").Text()
		if op == "&&" || op == "||" || op == "??" {
			// Short-circuit guard: the guarded side must do something.
			return hasEffect(expr.ChildByField("right"))
		}
		return false

	case syntax.KindUnaryExpression:
		op := expr.ChildByField("operator").Text()
		switch op {
		case "delete":
			return true
		case "void":
			// `void somePromise()` deliberately discards the value.
			return hasEffect(expr.ChildByField("argument"))
		}
		return false
	}
	return false
}

// isDirective reports whether the statement belongs to a directive prologue:
// a run of leading string-expression statements at the start of a program or
// function body ("use strict" and friends).
func isDirective(stmt, expr syntax.Node) bool {
	if expr.Kind() != syntax.KindString {
		return false
	}
	parent := stmt.Parent()
	if parent.Kind() != syntax.KindProgram && parent.Kind() != syntax.KindStatementBlock {
		return false
	}
	for prev := stmt.PrevNamedSibling(); prev.Valid(); prev = prev.PrevNamedSibling() {
		if prev.Kind() == syntax.KindComment {
			continue
		}
		if prev.Kind() != syntax.KindExpressionStatement {
			return false
		}
		if prev.NamedChild(0).Kind() != syntax.KindString {
			return false
		}
	}
	return true
}
