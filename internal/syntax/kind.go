package syntax

// NodeKind is a closed enumeration of the grammar node types the rules care
// about. Matching on NodeKind instead of raw grammar type strings keeps rule
// predicates exhaustive and typo-proof; everything else maps to KindUnknown.
type NodeKind uint8

const (
	KindUnknown NodeKind = iota

	KindProgram
	KindError
	KindComment

	// Declarations and functions
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunction
	KindMethodDefinition
	KindFormalParameters
	KindRequiredParameter
	KindOptionalParameter
	KindVariableDeclaration
	KindLexicalDeclaration
	KindVariableDeclarator
	KindStatementBlock
	KindImportStatement

	// Expressions
	KindCallExpression
	KindMemberExpression
	KindSubscriptExpression
	KindAssignmentExpression
	KindAugmentedAssignment
	KindUpdateExpression
	KindExpressionStatement
	KindBinaryExpression
	KindUnaryExpression
	KindTernaryExpression
	KindParenthesized
	KindAwaitExpression
	KindNewExpression
	KindNonNullExpression
	KindAsExpression
	KindArguments
	KindIdentifier
	KindPropertyIdentifier
	KindPair

	// Literals
	KindString
	KindStringFragment
	KindTemplateString
	KindNumber
	KindBoolean
	KindNull
	KindUndefined
	KindObject
	KindArray
	KindRegex

	// Types
	KindTypeAnnotation
	KindUnionType
	KindPredefinedType
	KindTypeIdentifier
	KindLiteralType
	KindTypeArguments
	KindGenericType
	KindArrayType
	KindObjectType
	KindFunctionType
	KindTupleType

	// JSX
	KindJSXElement
	KindJSXSelfClosing
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXAttribute
	KindJSXExpression
	KindJSXText
)

var kindByType = map[string]NodeKind{
	"program": KindProgram,
	"ERROR":   KindError,
	"comment": KindComment,

	"function_declaration": KindFunctionDeclaration,
	// Older grammar revisions call function expressions plain "function".
	"function":            KindFunctionExpression,
	"function_expression": KindFunctionExpression,
	"arrow_function":      KindArrowFunction,
	"method_definition":   KindMethodDefinition,
	"formal_parameters":   KindFormalParameters,
	"required_parameter":  KindRequiredParameter,
	"optional_parameter":  KindOptionalParameter,
	"variable_declaration": KindVariableDeclaration,
	"lexical_declaration":  KindLexicalDeclaration,
	"variable_declarator":  KindVariableDeclarator,
	"statement_block":      KindStatementBlock,
	"import_statement":     KindImportStatement,

	"call_expression":                 KindCallExpression,
	"member_expression":               KindMemberExpression,
	"subscript_expression":            KindSubscriptExpression,
	"assignment_expression":           KindAssignmentExpression,
	"augmented_assignment_expression": KindAugmentedAssignment,
	"update_expression":               KindUpdateExpression,
	"expression_statement":            KindExpressionStatement,
	"binary_expression":               KindBinaryExpression,
	"unary_expression":                KindUnaryExpression,
	"ternary_expression":              KindTernaryExpression,
	"parenthesized_expression":        KindParenthesized,
	"await_expression":                KindAwaitExpression,
	"new_expression":                  KindNewExpression,
	"non_null_expression":             KindNonNullExpression,
	"as_expression":                   KindAsExpression,
	"arguments":                       KindArguments,
	"identifier":                      KindIdentifier,
	"property_identifier":             KindPropertyIdentifier,
	"pair":                            KindPair,

	"string":          KindString,
	"string_fragment": KindStringFragment,
	"template_string": KindTemplateString,
	"number":          KindNumber,
	"true":            KindBoolean,
	"false":           KindBoolean,
	"null":            KindNull,
	"undefined":       KindUndefined,
	"object":          KindObject,
	"array":           KindArray,
	"regex":           KindRegex,

	"type_annotation": KindTypeAnnotation,
	"union_type":      KindUnionType,
	"predefined_type": KindPredefinedType,
	"type_identifier": KindTypeIdentifier,
	"literal_type":    KindLiteralType,
	"type_arguments":  KindTypeArguments,
	"generic_type":    KindGenericType,
	"array_type":      KindArrayType,
	"object_type":     KindObjectType,
	"function_type":   KindFunctionType,
	"tuple_type":      KindTupleType,

	"jsx_element":              KindJSXElement,
	"jsx_self_closing_element": KindJSXSelfClosing,
	"jsx_opening_element":      KindJSXOpeningElement,
	"jsx_closing_element":      KindJSXClosingElement,
	"jsx_attribute":            KindJSXAttribute,
	"jsx_expression":           KindJSXExpression,
	"jsx_text":                 KindJSXText,
}

// KindOf maps a raw grammar type string to the closed NodeKind enumeration.
func KindOf(rawType string) NodeKind {
	if kind, ok := kindByType[rawType]; ok {
		return kind
	}
	return KindUnknown
}

// IsFunctionScope reports whether the kind introduces a new function scope.
func (k NodeKind) IsFunctionScope() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction, KindMethodDefinition:
		return true
	}
	return false
}
