// Package driver orchestrates a lint run: it discovers TypeScript sources,
// parses them, dispatches syntax nodes to the enabled rules, and merges the
// per-file diagnostics into one deterministic Bag.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"nativelint/internal/config"
	"nativelint/internal/diag"
	"nativelint/internal/rule"
	"nativelint/internal/rules"
	"nativelint/internal/source"
	"nativelint/internal/syntax"
	"nativelint/internal/typeinfo"
	"nativelint/internal/vcs"
)

// DefaultMaxDiagnostics caps the per-file diagnostic count unless overridden.
const DefaultMaxDiagnostics = 1000

// Options configures a run.
type Options struct {
	// Paths are the files or directories to analyze; empty means ".".
	Paths []string
	// Config carries rule enablement, severity overrides and excludes.
	Config config.Config
	// MaxDiagnostics limits diagnostics per file (0 = DefaultMaxDiagnostics).
	MaxDiagnostics int
	// Jobs bounds file-level parallelism (0 = GOMAXPROCS).
	Jobs int
	// ChangedBase overrides Config.ChangedBase when non-empty.
	ChangedBase string
	// Progress, when set, is called after each file completes. It must be
	// safe for concurrent use.
	Progress func(done, total int, path string)
}

// FileResult is the outcome for a single file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	// Failed marks files that never made it into the FileSet.
	Failed bool
}

// Result aggregates a run.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	// Bag holds every diagnostic, sorted and deduplicated.
	Bag *diag.Bag
}

// Run executes the full pipeline. The returned error covers environmental
// failures only; lint findings live in the Result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	baseDir, err := resolveBaseDir(paths)
	if err != nil {
		return nil, err
	}

	files, err := listSourceFiles(paths, opts.Config, baseDir)
	if err != nil {
		return nil, err
	}

	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}

	fileSet := source.NewFileSetWithBase(baseDir)
	if len(files) == 0 {
		return &Result{FileSet: fileSet, Bag: diag.NewBag(1)}, nil
	}

	// Preload everything up front so FileIDs are assigned in sorted order
	// and the parallel phase never touches the FileSet.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Missing VCS metadata degrades to an empty changed set: the rule that
	// consumes it simply stays silent.
	changedBase := opts.ChangedBase
	if changedBase == "" {
		changedBase = opts.Config.ChangedBase
	}
	changed, vcsErr := vcs.ChangedFiles(baseDir, changedBase)
	if vcsErr != nil {
		changed = nil
	}

	eng := newEngine(opts.Config)
	testIDs := rule.NewTestIDRegistry()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	var done atomic.Int64

	// Indices are unique per goroutine, no mutex needed for results.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			results[i] = FileResult{Path: path, Bag: bag}

			if loadErr, failed := loadErrors[path]; failed {
				results[i].Failed = true
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
			} else {
				fileID := fileIDs[path]
				results[i].FileID = fileID
				eng.analyzeFile(gctx, fileSet.Get(fileID), bag, changed, testIDs)
			}

			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), len(files), path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := diag.NewBag(maxDiagnostics * len(files))
	for i := range results {
		total.Merge(results[i].Bag)
	}
	total.Sort()
	total.Dedup()

	return &Result{FileSet: fileSet, Files: results, Bag: total}, nil
}

// ListFiles returns the files Run would analyze for the given paths and
// config, in the same order. The CLI uses it to seed the progress view.
func ListFiles(paths []string, cfg config.Config) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	baseDir, err := resolveBaseDir(paths)
	if err != nil {
		return nil, err
	}
	return listSourceFiles(paths, cfg, baseDir)
}

// boundRule is a rule specialised with its effective run settings.
type boundRule struct {
	impl     rule.Rule
	meta     rule.Meta
	severity diag.Severity
	fix      bool
}

// engine holds the kind-indexed dispatch table of enabled rules.
type engine struct {
	bound  []*boundRule
	byKind map[syntax.NodeKind][]*boundRule
}

func newEngine(cfg config.Config) *engine {
	eng := &engine{byKind: make(map[syntax.NodeKind][]*boundRule)}
	for _, r := range rules.All() {
		meta := r.Meta()
		if !cfg.Enabled(meta.Name) {
			continue
		}
		br := &boundRule{
			impl:     r,
			meta:     meta,
			severity: cfg.Severity(meta.Name, meta.Severity),
			fix:      meta.HasFix && cfg.FixEnabled(meta.Name, true),
		}
		eng.bound = append(eng.bound, br)
		for _, kind := range r.Kinds() {
			eng.byKind[kind] = append(eng.byKind[kind], br)
		}
	}
	return eng
}

// analyzeFile parses one file and walks its tree once, dispatching each node
// to the rules subscribed to its kind.
func (e *engine) analyzeFile(ctx context.Context, file *source.File, bag *diag.Bag, changed *vcs.ChangedSet, testIDs *rule.TestIDRegistry) {
	// Rules revisiting equivalent nodes must not double-report.
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	tree, err := syntax.Parse(ctx, file)
	if err != nil {
		diag.ReportError(reporter, diag.IOParseError,
			source.Span{File: file.ID},
			"failed to parse file: "+err.Error()).Emit()
		return
	}
	defer tree.Close()

	resolver := typeinfo.New(tree.Root())
	contexts := make(map[*boundRule]*rule.Context, len(e.bound))
	for _, br := range e.bound {
		contexts[br] = &rule.Context{
			Reporter:   reporter,
			File:       file,
			Resolver:   resolver,
			Changed:    changed,
			TestIDs:    testIDs,
			Severity:   br.severity,
			FixEnabled: br.fix,
		}
	}

	syntax.Walk(tree.Root(), func(n syntax.Node) bool {
		for _, br := range e.byKind[n.Kind()] {
			visitNode(br, contexts[br], n, reporter)
		}
		return true
	})
}

// visitNode contains a single rule visit: a panic in one rule on one node is
// converted into a diagnostic and the walk continues.
func visitNode(br *boundRule, rctx *rule.Context, n syntax.Node, reporter diag.Reporter) {
	defer func() {
		if rec := recover(); rec != nil {
			diag.ReportWarning(reporter, diag.EngineRulePanic, n.Span(),
				fmt.Sprintf("rule %s aborted on this node: %v", br.meta.Name, rec)).Emit()
		}
	}()
	br.impl.Visit(rctx, n)
}

// sourceExtensions are the file types the linter understands.
var sourceExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".jsx": true,
}

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// listSourceFiles expands the given paths into a sorted, deduplicated list of
// lintable files, honouring the config's exclude patterns.
func listSourceFiles(paths []string, cfg config.Config, baseDir string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			rel = path
		}
		if cfg.Excluded(rel) || seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			if sourceExtensions[strings.ToLower(filepath.Ext(path))] {
				add(path)
			}
			continue
		}
		err = filepath.WalkDir(path, func(sub string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skippedDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if sourceExtensions[strings.ToLower(filepath.Ext(sub))] {
				add(sub)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// resolveBaseDir picks the directory diagnostics are rendered relative to.
func resolveBaseDir(paths []string) (string, error) {
	first := paths[0]
	info, err := os.Stat(first)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", first, err)
	}
	if !info.IsDir() {
		first = filepath.Dir(first)
	}
	return filepath.Abs(first)
}
