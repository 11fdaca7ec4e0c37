package vcs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestNilChangedSetContainsNothing(t *testing.T) {
	var s *ChangedSet
	if s.Contains("anything.tsx") {
		t.Error("nil set must contain nothing")
	}
	if s.Len() != 0 {
		t.Error("nil set must be empty")
	}
}

func TestChangedFilesOutsideRepoFails(t *testing.T) {
	dir := t.TempDir()
	if _, err := ChangedFiles(dir, ""); err == nil {
		t.Error("expected an error outside a git repository")
	}
}

func TestChangedFilesPicksUpWorktreeEdits(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("App.tsx", "const a = 1;\n")
	write("Stable.tsx", "const b = 2;\n")
	if _, err := worktree.Add("."); err != nil {
		t.Fatal(err)
	}
	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()}
	if _, err := worktree.Commit("initial", &git.CommitOptions{Author: sig}); err != nil {
		t.Fatal(err)
	}

	// Modify one tracked file, add one untracked file.
	write("App.tsx", "const a: any = 1;\n")
	write("New.tsx", "const c = 3;\n")

	set, err := ChangedFiles(dir, "")
	if err != nil {
		t.Fatalf("ChangedFiles: %v", err)
	}

	if !set.Contains("App.tsx") {
		t.Error("expected modified App.tsx in the changed set")
	}
	if !set.Contains("New.tsx") {
		t.Error("expected untracked New.tsx in the changed set")
	}
	if set.Contains("Stable.tsx") {
		t.Error("did not expect unmodified Stable.tsx in the changed set")
	}

	// Absolute paths resolve against the worktree root.
	if !set.Contains(filepath.Join(dir, "App.tsx")) {
		t.Error("expected absolute path lookup to hit")
	}
}

func TestContainsResolvesWorkingDirectoryRelativePaths(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "app")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	set := NewChangedSet(root, "app/Screen.ts")

	// Linting from inside the package directory hands the set paths that
	// are relative to the working directory, not the repository root.
	t.Chdir(sub)
	if !set.Contains("Screen.ts") {
		t.Error("expected a cwd-relative path to resolve through the repository root")
	}
	if set.Contains("Other.ts") {
		t.Error("unrelated path must stay out of the set")
	}
}

func TestChangedFilesWithBaseRef(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}
	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()}

	if err := os.WriteFile(filepath.Join(dir, "Screen.tsx"), []byte("v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := worktree.Add("."); err != nil {
		t.Fatal(err)
	}
	first, err := worktree.Commit("first", &git.CommitOptions{Author: sig})
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "Screen.tsx"), []byte("v2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := worktree.Add("."); err != nil {
		t.Fatal(err)
	}
	if _, err := worktree.Commit("second", &git.CommitOptions{Author: sig}); err != nil {
		t.Fatal(err)
	}

	set, err := ChangedFiles(dir, first.String())
	if err != nil {
		t.Fatalf("ChangedFiles: %v", err)
	}
	if !set.Contains("Screen.tsx") {
		t.Error("expected Screen.tsx to appear in the base-ref diff")
	}
}
