package typeinfo

import (
	"context"
	"testing"

	"nativelint/internal/source"
	"nativelint/internal/syntax"
)

func parseFile(t *testing.T, content string) syntax.Node {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("case.tsx", []byte(content))
	tree, err := syntax.Parse(context.Background(), fs.Get(id))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree.Root()
}

func identNamed(t *testing.T, root syntax.Node, name string) syntax.Node {
	t.Helper()
	// Pick the last occurrence so we get a use, not the declaration itself.
	all := syntax.FindAll(root, func(n syntax.Node) bool {
		return n.Kind() == syntax.KindIdentifier && n.Text() == name
	})
	if len(all) == 0 {
		t.Fatalf("identifier %q not found", name)
	}
	return all[len(all)-1]
}

func TestCategoryOfLiterals(t *testing.T) {
	root := parseFile(t, "use([{ a: 1 }, [1, 2], () => 1, 'str', 42, true, null, undefined]);\n")

	wantByRaw := map[syntax.NodeKind]Category{
		syntax.KindObject:        CategoryObjectLike,
		syntax.KindArray:         CategoryObjectLike,
		syntax.KindArrowFunction: CategoryObjectLike,
		syntax.KindString:        CategoryPrimitive,
		syntax.KindNumber:        CategoryPrimitive,
		syntax.KindBoolean:       CategoryPrimitive,
		syntax.KindNull:          CategoryPrimitive,
		syntax.KindUndefined:     CategoryPrimitive,
	}

	r := New(root)
	for kind, want := range wantByRaw {
		node := syntax.FindFirst(root, func(n syntax.Node) bool { return n.Kind() == kind })
		if !node.Valid() {
			t.Errorf("no node of kind %d in fixture", kind)
			continue
		}
		if got := r.CategoryOf(node); got != want {
			t.Errorf("CategoryOf(%s) = %v, want %v", node.RawType(), got, want)
		}
	}
}

func TestCategoryOfIdentifierWithObjectInitializer(t *testing.T) {
	root := parseFile(t, "const style = { flex: 1 };\nuse(style);\n")
	r := New(root)

	if got := r.CategoryOf(identNamed(t, root, "style")); got != CategoryObjectLike {
		t.Errorf("expected object-like, got %v", got)
	}
}

func TestCategoryOfIdentifierWithPrimitiveAnnotation(t *testing.T) {
	root := parseFile(t, "function f(count: number) { use(count); }\n")
	r := New(root)

	if got := r.CategoryOf(identNamed(t, root, "count")); got != CategoryPrimitive {
		t.Errorf("expected primitive, got %v", got)
	}
}

func TestCategoryOfIdentifierWithArrayAnnotation(t *testing.T) {
	root := parseFile(t, "function f(items: string[]) { use(items); }\n")
	r := New(root)

	if got := r.CategoryOf(identNamed(t, root, "items")); got != CategoryObjectLike {
		t.Errorf("expected object-like, got %v", got)
	}
}

func TestCategoryOfUnknownIdentifier(t *testing.T) {
	root := parseFile(t, "use(imported);\n")
	r := New(root)

	if got := r.CategoryOf(identNamed(t, root, "imported")); got != CategoryUnknown {
		t.Errorf("expected unknown, got %v", got)
	}
}

func TestCategoryOfPrimitiveUnionAnnotation(t *testing.T) {
	root := parseFile(t, "function f(label: string | undefined) { use(label); }\n")
	r := New(root)

	if got := r.CategoryOf(identNamed(t, root, "label")); got != CategoryPrimitive {
		t.Errorf("expected primitive for string | undefined, got %v", got)
	}
}

func TestNilResolverDegradesToUnknown(t *testing.T) {
	root := parseFile(t, "use(whatever);\n")
	var r *Resolver

	if got := r.CategoryOf(identNamed(t, root, "whatever")); got != CategoryUnknown {
		t.Errorf("nil resolver must answer unknown, got %v", got)
	}
}

func TestFunctionDeclLookup(t *testing.T) {
	root := parseFile(t, "function load(id: string | undefined) {}\nload('x');\n")
	r := New(root)

	fn := r.FunctionDecl("load")
	if !fn.Valid() {
		t.Fatal("expected to find function declaration")
	}
	if r.FunctionDecl("missing").Valid() {
		t.Error("did not expect to find 'missing'")
	}
}
