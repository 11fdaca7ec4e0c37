package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"nativelint/internal/config"
	"nativelint/internal/diag"
	"nativelint/internal/fix"
	"nativelint/internal/rule"
	"nativelint/internal/source"
	"nativelint/internal/syntax"
	"nativelint/internal/vcs"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func codes(bag *diag.Bag) map[string]int {
	out := make(map[string]int)
	for _, d := range bag.Items() {
		out[d.Code.ID()]++
	}
	return out
}

func TestRunFindsDiagnosticsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Greet.ts", "function greet(name?: string) { return name; }\n")
	writeSource(t, dir, "Row.tsx", "const Row = () => <View style={{ flex: 1 }} />;\n")

	res, err := Run(context.Background(), Options{Paths: []string{dir}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := codes(res.Bag)
	if got["TYP1002"] != 1 {
		t.Errorf("expected one optional-parameter diagnostic, got %v", got)
	}
	if got["STY4002"] != 1 {
		t.Errorf("expected one inline-style diagnostic, got %v", got)
	}
	if len(res.Files) != 2 {
		t.Errorf("expected 2 file results, got %d", len(res.Files))
	}
}

func TestRunHonoursExcludes(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "api.generated.ts", "function f(a?: number) {}\n")
	writeSource(t, dir, "App.ts", "function g(b?: number) {}\n")

	cfg := config.Config{Exclude: []string{"*.generated.ts"}}
	res, err := Run(context.Background(), Options{Paths: []string{dir}, Config: cfg})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Files) != 1 {
		t.Fatalf("expected 1 file after excludes, got %d", len(res.Files))
	}
	if res.Bag.Len() != 1 {
		t.Errorf("expected 1 diagnostic, got %d", res.Bag.Len())
	}
}

func TestRunSkipsNodeModules(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, filepath.Join("node_modules", "pkg", "index.ts"), "function f(a?: number) {}\n")
	writeSource(t, dir, "App.ts", "const ok = 1;\n")

	res, err := Run(context.Background(), Options{Paths: []string{dir}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Files) != 1 {
		t.Errorf("expected node_modules to be skipped, got %d files", len(res.Files))
	}
}

func TestRunDisabledRuleStaysSilent(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Greet.ts", "function greet(name?: string) {}\n")

	off := false
	cfg := config.Config{Rules: map[string]config.RuleConfig{
		"explicit-optional-union": {Enabled: &off},
	}}
	res, err := Run(context.Background(), Options{Paths: []string{dir}, Config: cfg})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("expected no diagnostics, got %d", res.Bag.Len())
	}
}

func TestRunSeverityOverride(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Greet.ts", "function greet(name?: string) {}\n")

	cfg := config.Config{Rules: map[string]config.RuleConfig{
		"explicit-optional-union": {Severity: "error"},
	}}
	res, err := Run(context.Background(), Options{Paths: []string{dir}, Config: cfg})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Error("expected the overridden severity to produce an error")
	}
}

func TestRunDuplicateTestIDsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "A.tsx", "const A = () => <Button testID=\"home\" />;\n")
	writeSource(t, dir, "B.tsx", "const B = () => <Button testID=\"home\" />;\n")

	res, err := Run(context.Background(), Options{Paths: []string{dir}, Jobs: 4})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := codes(res.Bag)["TST5001"]; got != 1 {
		t.Errorf("expected exactly one duplicate-test-id diagnostic, got %d", got)
	}
}

func TestOptionalUnionFixIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "Greet.ts",
		"function greet(name?: string, times?: number) { return name; }\n")

	res, err := Run(context.Background(), Options{Paths: []string{dir}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := codes(res.Bag)["TYP1002"]; got != 2 {
		t.Fatalf("expected 2 optional-parameter diagnostics, got %d", got)
	}

	applied, err := fix.Apply(res.FileSet, res.Bag.Items(), fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(applied.Applied) != 2 {
		t.Fatalf("expected 2 applied fixes, got %d", len(applied.Applied))
	}

	rewritten, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "function greet(name: string | undefined, times: number | undefined) { return name; }\n"
	if string(rewritten) != want {
		t.Fatalf("rewritten source = %q, want %q", rewritten, want)
	}

	// The fix output must re-analyze clean.
	again, err := Run(context.Background(), Options{Paths: []string{dir}})
	if err != nil {
		t.Fatalf("Run after fix: %v", err)
	}
	if got := codes(again.Bag)["TYP1002"]; got != 0 {
		t.Errorf("fix output re-flagged %d time(s)", got)
	}
}

func TestRunChangedFilesFromSubdirectory(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	writeSource(t, dir, filepath.Join("app", "Screen.ts"), "const n = 1;\n")
	if _, err := worktree.Add("."); err != nil {
		t.Fatal(err)
	}
	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()}
	if _, err := worktree.Commit("initial", &git.CommitOptions{Author: sig}); err != nil {
		t.Fatal(err)
	}

	// Re-introduce the annotation as a worktree edit.
	writeSource(t, dir, filepath.Join("app", "Screen.ts"), "const n: any = 1;\n")

	// Lint from inside the package directory, not the repository root.
	t.Chdir(filepath.Join(dir, "app"))
	res, err := Run(context.Background(), Options{Paths: []string{"."}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := codes(res.Bag)["TYP1001"]; got != 1 {
		t.Errorf("expected one any-in-changed-files diagnostic, got %v", codes(res.Bag))
	}
}

func TestRunGoldenOutput(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Greet.ts", "function greet(name?: string) { return name; }\n")
	writeSource(t, dir, "Row.tsx", "const Row = () => <View style={{ flex: 1 }} />;\n")

	res, err := Run(context.Background(), Options{Paths: []string{dir}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := diag.FormatGoldenDiagnostics(res.Bag.Items(), res.FileSet, false)
	want := "WARNING TYP1002 Greet.ts:1:16 optional parameter \"name\" hides the undefined case; declare the union explicitly\n" +
		"WARNING STY4002 Row.tsx:1:32 inline style object is rebuilt on every render; move it into a StyleSheet"
	if got != want {
		t.Errorf("golden output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunProgressCallback(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "A.ts", "const a = 1;\n")
	writeSource(t, dir, "B.ts", "const b = 2;\n")

	var calls int
	_, err := Run(context.Background(), Options{
		Paths: []string{dir},
		Jobs:  1,
		Progress: func(done, total int, path string) {
			calls++
			if total != 2 {
				t.Errorf("total = %d, want 2", total)
			}
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 progress calls, got %d", calls)
	}
}

func TestRunMissingPathFails(t *testing.T) {
	if _, err := Run(context.Background(), Options{Paths: []string{"/no/such/dir"}}); err == nil {
		t.Error("expected an error for a missing path")
	}
}

// panicRule blows up on every identifier; used to prove per-node containment.
type panicRule struct{}

func (panicRule) Meta() rule.Meta {
	return rule.Meta{Name: "panic-rule", Code: diag.UnknownCode, Severity: diag.SevError}
}
func (panicRule) Kinds() []syntax.NodeKind { return []syntax.NodeKind{syntax.KindIdentifier} }
func (panicRule) Visit(*rule.Context, syntax.Node) {
	panic("boom")
}

func TestRulePanicIsContainedPerNode(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("App.ts", []byte("const a = b;\nfunction f(x?: number) {}\n")))

	br := &boundRule{impl: panicRule{}, meta: panicRule{}.Meta(), severity: diag.SevError}
	eng := newEngine(config.Config{})
	eng.bound = append(eng.bound, br)
	for _, kind := range br.impl.Kinds() {
		eng.byKind[kind] = append(eng.byKind[kind], br)
	}

	bag := diag.NewBag(64)
	eng.analyzeFile(context.Background(), file, bag, (*vcs.ChangedSet)(nil), rule.NewTestIDRegistry())

	got := codes(bag)
	if got["ENG8001"] == 0 {
		t.Fatal("expected the panic to surface as an engine diagnostic")
	}
	// The rest of the analysis still ran.
	if got["TYP1002"] != 1 {
		t.Errorf("expected the optional-parameter rule to keep working, got %v", got)
	}
}
