package syntax

import (
	"context"
	"testing"

	"nativelint/internal/source"
)

func parseVirtual(t *testing.T, name, content string) *Tree {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(content))
	tree, err := Parse(context.Background(), fs.Get(id))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree
}

func TestParseTypeScriptFunction(t *testing.T) {
	tree := parseVirtual(t, "util.ts", "function greet(name?: string) { return name; }\n")

	if tree.HasError() {
		t.Fatal("did not expect parse errors")
	}

	opt := FindFirst(tree.Root(), func(n Node) bool { return n.Kind() == KindOptionalParameter })
	if !opt.Valid() {
		t.Fatal("expected an optional_parameter node")
	}
	if got := opt.Text(); got != "name?: string" {
		t.Errorf("optional parameter text = %q", got)
	}
}

func TestParseTSXElement(t *testing.T) {
	tree := parseVirtual(t, "App.tsx", "const x = <View testID=\"home\" />;\n")

	if tree.HasError() {
		t.Fatal("did not expect parse errors")
	}

	attr := FindFirst(tree.Root(), func(n Node) bool { return n.Kind() == KindJSXAttribute })
	if !attr.Valid() {
		t.Fatal("expected a jsx_attribute node")
	}

	lit := FindFirst(attr, func(n Node) bool { return n.Kind() == KindString })
	if !lit.Valid() {
		t.Fatal("expected a string literal inside the attribute")
	}
	if got := lit.StringValue(); got != "home" {
		t.Errorf("attribute value = %q, want %q", got, "home")
	}
}

func TestSpanMatchesSource(t *testing.T) {
	content := "let answer = 42;\n"
	tree := parseVirtual(t, "a.ts", content)

	num := FindFirst(tree.Root(), func(n Node) bool { return n.Kind() == KindNumber })
	if !num.Valid() {
		t.Fatal("expected a number literal")
	}
	span := num.Span()
	if got := content[span.Start:span.End]; got != "42" {
		t.Errorf("span text = %q, want %q", got, "42")
	}
}

func TestWalkSkipsChildrenOnFalse(t *testing.T) {
	tree := parseVirtual(t, "a.ts", "const obj = { a: 1, b: 2 };\n")

	sawPair := false
	Walk(tree.Root(), func(n Node) bool {
		if n.Kind() == KindObject {
			return false
		}
		if n.Kind() == KindPair {
			sawPair = true
		}
		return true
	})
	if sawPair {
		t.Error("expected object children to be skipped")
	}
}

func TestKindOfUnknown(t *testing.T) {
	if KindOf("no_such_node_type") != KindUnknown {
		t.Error("unexpected mapping for unknown node type")
	}
	if KindOf("call_expression") != KindCallExpression {
		t.Error("call_expression should map to KindCallExpression")
	}
}

func TestParseErrorSurfacesAsErrorNodes(t *testing.T) {
	tree := parseVirtual(t, "broken.ts", "function ( {{{\n")
	if !tree.HasError() {
		t.Error("expected HasError for malformed input")
	}
}
