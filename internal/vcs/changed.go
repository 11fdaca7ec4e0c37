// Package vcs supplies the changed-file set consumed by the
// any-in-changed-files rule. Metadata comes from the enclosing git repository
// via go-git; callers treat any error as "no files qualify" rather than a
// failed run.
package vcs

import (
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ChangedSet is an immutable set of repository-relative file paths.
// A nil ChangedSet contains nothing.
type ChangedSet struct {
	root  string
	paths map[string]struct{}
}

// NewChangedSet builds a set from explicit repository-relative paths.
func NewChangedSet(root string, paths ...string) *ChangedSet {
	set := &ChangedSet{
		root:  root,
		paths: make(map[string]struct{}, len(paths)),
	}
	for _, p := range paths {
		set.paths[filepath.ToSlash(p)] = struct{}{}
	}
	return set
}

// Contains reports whether the given path is in the set. The path may be
// repository-root-relative, absolute, or relative to the working directory;
// relative inputs that miss as given are resolved against the working
// directory and re-rooted, so lookups work when the linter runs from a
// package subdirectory.
func (s *ChangedSet) Contains(path string) bool {
	if s == nil || len(s.paths) == 0 {
		return false
	}
	if !filepath.IsAbs(path) && s.has(path) {
		return true
	}
	abs := path
	if !filepath.IsAbs(abs) {
		a, err := filepath.Abs(abs)
		if err != nil {
			return false
		}
		abs = a
	}
	if s.root == "" {
		return false
	}
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return false
	}
	return s.has(rel)
}

func (s *ChangedSet) has(path string) bool {
	_, ok := s.paths[filepath.ToSlash(path)]
	return ok
}

// Len returns the number of paths in the set.
func (s *ChangedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.paths)
}

// Root returns the repository root the set's member paths are relative to.
func (s *ChangedSet) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// ChangedFiles collects the files that differ from the committed state: the
// worktree status (staged and unstaged) plus, when baseRef is non-empty, the
// tree diff between baseRef and HEAD.
func ChangedFiles(repoDir, baseRef string) (*ChangedSet, error) {
	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", repoDir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("repository worktree: %w", err)
	}

	set := &ChangedSet{
		root:  worktree.Filesystem.Root(),
		paths: make(map[string]struct{}),
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}
	for path, st := range status {
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}
		set.paths[filepath.ToSlash(path)] = struct{}{}
	}

	if baseRef != "" {
		if err := addTreeDiff(repo, baseRef, set); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func addTreeDiff(repo *git.Repository, baseRef string, set *ChangedSet) error {
	baseHash, err := repo.ResolveRevision(plumbing.Revision(baseRef))
	if err != nil {
		return fmt.Errorf("resolve base ref %q: %w", baseRef, err)
	}
	headRef, err := repo.Head()
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}

	baseTree, err := commitTree(repo, *baseHash)
	if err != nil {
		return err
	}
	headTree, err := commitTree(repo, headRef.Hash())
	if err != nil {
		return err
	}

	changes, err := object.DiffTree(baseTree, headTree)
	if err != nil {
		return fmt.Errorf("diff trees: %w", err)
	}
	for _, change := range changes {
		if change.To.Name != "" {
			set.paths[filepath.ToSlash(change.To.Name)] = struct{}{}
		} else if change.From.Name != "" {
			set.paths[filepath.ToSlash(change.From.Name)] = struct{}{}
		}
	}
	return nil
}

func commitTree(repo *git.Repository, hash plumbing.Hash) (*object.Tree, error) {
	commit, err := repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %s: %w", hash, err)
	}
	return tree, nil
}
