package rules

import (
	"context"
	"testing"

	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/source"
	"nativelint/internal/syntax"
	"nativelint/internal/typeinfo"
)

// analyze parses src and runs a single rule over every node it subscribes to,
// returning the collected diagnostics. Extension of name selects the grammar.
func analyze(t *testing.T, r rule.Rule, name, src string, opts ...func(*rule.Context)) *diag.Bag {
	t.Helper()

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(src)))

	tree, err := syntax.Parse(context.Background(), file)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer tree.Close()

	bag := diag.NewBag(64)
	ctx := &rule.Context{
		Reporter:   diag.BagReporter{Bag: bag},
		File:       file,
		Resolver:   typeinfo.New(tree.Root()),
		TestIDs:    rule.NewTestIDRegistry(),
		Severity:   r.Meta().Severity,
		FixEnabled: true,
	}
	for _, opt := range opts {
		opt(ctx)
	}

	want := make(map[syntax.NodeKind]bool, len(r.Kinds()))
	for _, k := range r.Kinds() {
		want[k] = true
	}
	syntax.Walk(tree.Root(), func(n syntax.Node) bool {
		if want[n.Kind()] {
			r.Visit(ctx, n)
		}
		return true
	})
	return bag
}

func wantDiagnostics(t *testing.T, bag *diag.Bag, n int) []diag.Diagnostic {
	t.Helper()
	if bag.Len() != n {
		for _, d := range bag.Items() {
			t.Logf("  got: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("expected %d diagnostic(s), got %d", n, bag.Len())
	}
	return bag.Items()
}

func firstFixText(t *testing.T, d diag.Diagnostic) string {
	t.Helper()
	if len(d.Fixes) == 0 {
		t.Fatal("expected a fix on the diagnostic")
	}
	if len(d.Fixes[0].Edits) == 0 {
		t.Fatal("expected at least one edit on the fix")
	}
	return d.Fixes[0].Edits[0].NewText
}

func TestAllRulesHaveDistinctNamesAndCodes(t *testing.T) {
	names := make(map[string]bool)
	codes := make(map[diag.Code]bool)
	for _, r := range All() {
		meta := r.Meta()
		if names[meta.Name] {
			t.Errorf("duplicate rule name %q", meta.Name)
		}
		if codes[meta.Code] {
			t.Errorf("duplicate rule code %s", meta.Code.ID())
		}
		names[meta.Name] = true
		codes[meta.Code] = true
		if len(r.Kinds()) == 0 {
			t.Errorf("rule %q subscribes to no node kinds", meta.Name)
		}
	}
	if len(names) != 12 {
		t.Errorf("expected 12 rules, got %d", len(names))
	}
}

func TestByName(t *testing.T) {
	if ByName("immutability") == nil {
		t.Error("expected to find the immutability rule")
	}
	if ByName("no-such-rule") != nil {
		t.Error("unknown names must return nil")
	}
}
