package rules

import (
	"fmt"
	"path"
	"strings"

	"nativelint/internal/diag"
	"nativelint/internal/fix"
	"nativelint/internal/rule"
	"nativelint/internal/syntax"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// NoRequireImage flags require() of an image asset bound to a variable and
// rewrites the declaration to an ES import with the same identifier. Inline
// use as a source prop (`source={require('./x.png')}`) is the platform's
// blessed form and stays legal.
type NoRequireImage struct{}

func NewNoRequireImage() *NoRequireImage { return &NoRequireImage{} }

func (*NoRequireImage) Meta() rule.Meta {
	return rule.Meta{
		Name:     "no-require-image",
		Code:     diag.ImportRequireImage,
		Severity: diag.SevWarning,
		HasFix:   true,
		Doc:      "import image assets statically instead of require()",
	}
}

func (*NoRequireImage) Kinds() []syntax.NodeKind {
	return []syntax.NodeKind{syntax.KindCallExpression}
}

func (*NoRequireImage) Visit(ctx *rule.Context, node syntax.Node) {
	callee := node.ChildByField("function")
	if !callee.Valid() || callee.Kind() != syntax.KindIdentifier || callee.Text() != "require" {
		return
	}
	args := node.ChildByField("arguments")
	if !args.Valid() || args.NamedChildCount() != 1 {
		return
	}
	arg := args.NamedChild(0)
	if arg.Kind() != syntax.KindString {
		return
	}
	asset := arg.StringValue()
	if !imageExtensions[strings.ToLower(path.Ext(asset))] {
		return
	}
	if isSourceProp(node) {
		return
	}

	b := ctx.Report(diag.ImportRequireImage, node.Span(),
		fmt.Sprintf("require(%q) for an image asset; use a static import", asset))
	if ctx.FixEnabled {
		if f, ok := importRewrite(node, asset); ok {
			b.WithFixSuggestion(f)
		}
	}
	b.Emit()
}

// isSourceProp reports whether the call is used directly as the value of a
// JSX source attribute.
func isSourceProp(call syntax.Node) bool {
	parent := call.Parent()
	if parent.Kind() != syntax.KindJSXExpression {
		return false
	}
	attr := parent.Parent()
	return attr.Kind() == syntax.KindJSXAttribute && attrName(attr) == "source"
}

// importRewrite replaces `const img = require('./x.png');` with
// `import img from './x.png';`, keeping the identifier. Only the simple
// single-declarator form is rewritten.
func importRewrite(call syntax.Node, asset string) (diag.Fix, bool) {
	declarator := call.Parent()
	if declarator.Kind() != syntax.KindVariableDeclarator {
		return diag.Fix{}, false
	}
	name := declarator.ChildByField("name")
	if !name.Valid() || name.Kind() != syntax.KindIdentifier {
		return diag.Fix{}, false
	}
	decl := declarator.Parent()
	switch decl.Kind() {
	case syntax.KindLexicalDeclaration, syntax.KindVariableDeclaration:
	default:
		return diag.Fix{}, false
	}
	if decl.NamedChildCount() != 1 {
		return diag.Fix{}, false
	}
	newText := fmt.Sprintf("import %s from '%s';", name.Text(), asset)
	return fix.ReplaceSpan("rewrite to an ES import", decl.Span(), newText, decl.Text(), fix.Preferred()), true
}
