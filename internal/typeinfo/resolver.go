// Package typeinfo answers structural questions about expressions using only
// file-local syntax. It stands in for a full type checker: rules that need
// type information query a Resolver and treat CategoryUnknown as "no verdict".
package typeinfo

import (
	"nativelint/internal/syntax"
)

// Category is the enumerated type-category model used by the rules.
// Boxed primitives and frozen objects deliberately count as object-like:
// there is no reliable syntactic signal for either.
type Category uint8

const (
	// CategoryUnknown means the resolver cannot tell; rules must not flag.
	CategoryUnknown Category = iota
	// CategoryPrimitive covers strings, numbers, booleans, null, undefined.
	CategoryPrimitive
	// CategoryObjectLike covers objects, arrays, functions and class
	// instances, i.e. values compared by reference.
	CategoryObjectLike
)

func (c Category) String() string {
	switch c {
	case CategoryPrimitive:
		return "primitive"
	case CategoryObjectLike:
		return "object-like"
	}
	return "unknown"
}

// Resolver resolves identifiers against their file-local declarations.
// A nil Resolver is valid and answers CategoryUnknown for everything.
type Resolver struct {
	root syntax.Node
}

// New builds a resolver over one file's syntax tree root.
func New(root syntax.Node) *Resolver {
	return &Resolver{root: root}
}

// CategoryOf classifies an expression node.
func (r *Resolver) CategoryOf(expr syntax.Node) Category {
	return r.categoryOf(expr, 0)
}

// Identifier resolution may chain (const a = b), cap the depth.
const maxResolveDepth = 8

func (r *Resolver) categoryOf(expr syntax.Node, depth int) Category {
	if !expr.Valid() || depth > maxResolveDepth {
		return CategoryUnknown
	}

	switch expr.Kind() {
	case syntax.KindObject, syntax.KindArray, syntax.KindArrowFunction,
		syntax.KindFunctionExpression, syntax.KindNewExpression, syntax.KindRegex:
		return CategoryObjectLike

	case syntax.KindString, syntax.KindTemplateString, syntax.KindNumber,
		syntax.KindBoolean, syntax.KindNull, syntax.KindUndefined:
		return CategoryPrimitive

	case syntax.KindParenthesized, syntax.KindAsExpression, syntax.KindNonNullExpression:
		// `as` casts and parens do not change the runtime category.
		return r.categoryOf(expr.NamedChild(0), depth+1)

	case syntax.KindUnaryExpression:
		// !, typeof, -, + all yield primitives.
		return CategoryPrimitive

	case syntax.KindBinaryExpression:
		// Comparison and arithmetic yield primitives; the odd `as const`
		// style expressions never reach here.
		return CategoryPrimitive

	case syntax.KindIdentifier:
		if r == nil {
			return CategoryUnknown
		}
		return r.identifierCategory(expr, depth)
	}

	return CategoryUnknown
}

// identifierCategory looks for the in-file declaration of the identifier and
// classifies it by initializer or type annotation.
func (r *Resolver) identifierCategory(ident syntax.Node, depth int) Category {
	name := ident.Text()
	if name == "undefined" {
		return CategoryPrimitive
	}

	decl := r.declarationOf(name)
	if !decl.Valid() {
		if fn := r.FunctionDecl(name); fn.Valid() {
			return CategoryObjectLike
		}
		return CategoryUnknown
	}

	switch decl.Kind() {
	case syntax.KindVariableDeclarator:
		if ann := decl.ChildByField("type"); ann.Valid() {
			if cat := annotationCategory(ann); cat != CategoryUnknown {
				return cat
			}
		}
		if value := decl.ChildByField("value"); value.Valid() {
			return r.categoryOf(value, depth+1)
		}
		return CategoryUnknown

	case syntax.KindRequiredParameter, syntax.KindOptionalParameter:
		if ann := decl.ChildByField("type"); ann.Valid() {
			return annotationCategory(ann)
		}
		return CategoryUnknown
	}

	return CategoryUnknown
}

// declarationOf finds the variable declarator or parameter introducing name.
// Scoping is approximated: the first match in preorder wins, which is enough
// for the single-file heuristics the rules need.
func (r *Resolver) declarationOf(name string) syntax.Node {
	return syntax.FindFirst(r.root, func(n syntax.Node) bool {
		switch n.Kind() {
		case syntax.KindVariableDeclarator, syntax.KindRequiredParameter, syntax.KindOptionalParameter:
			pattern := n.ChildByField("name")
			if !pattern.Valid() {
				pattern = n.ChildByField("pattern")
			}
			return pattern.Valid() && pattern.Kind() == syntax.KindIdentifier && pattern.Text() == name
		}
		return false
	})
}

// FunctionDecl finds a file-local function declaration by name.
func (r *Resolver) FunctionDecl(name string) syntax.Node {
	if r == nil {
		return syntax.Node{}
	}
	return syntax.FindFirst(r.root, func(n syntax.Node) bool {
		if n.Kind() != syntax.KindFunctionDeclaration {
			return false
		}
		ident := n.ChildByField("name")
		return ident.Valid() && ident.Text() == name
	})
}

// annotationCategory classifies a type annotation node (type_annotation or the
// type inside it) with the enumerated category rules.
func annotationCategory(ann syntax.Node) Category {
	ty := ann
	if ty.Kind() == syntax.KindTypeAnnotation {
		ty = ty.NamedChild(0)
	}
	if !ty.Valid() {
		return CategoryUnknown
	}

	switch ty.Kind() {
	case syntax.KindPredefinedType:
		switch ty.Text() {
		case "string", "number", "boolean", "symbol", "bigint", "void", "never":
			return CategoryPrimitive
		case "object":
			return CategoryObjectLike
		}
		// any, unknown
		return CategoryUnknown

	case syntax.KindArrayType, syntax.KindObjectType, syntax.KindFunctionType,
		syntax.KindTupleType, syntax.KindGenericType:
		return CategoryObjectLike

	case syntax.KindLiteralType:
		return CategoryPrimitive

	case syntax.KindUnionType:
		// A union is primitive only when every member is.
		sawPrimitive := false
		for _, member := range ty.NamedChildren() {
			switch annotationCategory(member) {
			case CategoryPrimitive:
				sawPrimitive = true
			case CategoryObjectLike:
				return CategoryObjectLike
			default:
				return CategoryUnknown
			}
		}
		if sawPrimitive {
			return CategoryPrimitive
		}
		return CategoryUnknown
	}

	return CategoryUnknown
}

// AnnotationCategory is the exported form used by rules that inspect
// parameter annotations directly.
func AnnotationCategory(ann syntax.Node) Category {
	return annotationCategory(ann)
}
