package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nativelint/internal/config"
	"nativelint/internal/diag"
	"nativelint/internal/diagfmt"
	"nativelint/internal/driver"
	"nativelint/internal/ui"
	"nativelint/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Lint TypeScript and React Native sources",
	Long:  `Run every enabled rule over the given files or directories (default ".") and report the findings`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("changed-base", "", "git base ref for the changed-file set (overrides config)")
	checkCmd.Flags().Bool("no-warnings", false, "drop warnings from the output")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	changedBase, err := cmd.Flags().GetString("changed-base")
	if err != nil {
		return fmt.Errorf("failed to get changed-base flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, cfgPath, err := loadConfigFor(args)
	if err != nil {
		return err
	}
	if cfgPath != "" && !quiet && format == "pretty" {
		fmt.Fprintf(os.Stderr, "using config %s\n", cfgPath)
	}

	opts := driver.Options{
		Paths:          args,
		Config:         cfg,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		ChangedBase:    changedBase,
	}

	interactive := format == "pretty" && !quiet && isTerminal(os.Stdout)
	var result *driver.Result
	if interactive {
		result, err = runWithProgress(cmd.Context(), opts, cfg)
	} else {
		result, err = driver.Run(cmd.Context(), opts)
	}
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	bag := adjustSeverities(result.Bag, noWarnings, warningsAsErrors)

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor,
			PathMode:  pathMode,
			ShowNotes: withNotes,
			ShowFixes: suggest,
		})
		if !quiet {
			printRunSummary(os.Stdout, len(result.Files), bag)
		}
	case "short":
		diagfmt.Short(os.Stdout, bag, result.FileSet, pathMode)
	case "json":
		err := diagfmt.JSON(os.Stdout, bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
			IncludeFixes:     suggest,
			IncludePreviews:  suggest,
		})
		if err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "sarif":
		err := diagfmt.Sarif(os.Stdout, bag, result.FileSet, diagfmt.SarifRunMeta{
			ToolName:       "nativelint",
			ToolVersion:    version.Plain,
			InvocationArgs: os.Args,
		})
		if err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		// Suppress cobra usage output, the findings are already printed.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// loadConfigFor discovers the configuration starting from the first lint path.
func loadConfigFor(paths []string) (config.Config, string, error) {
	start := "."
	if len(paths) > 0 {
		start = paths[0]
		if info, err := os.Stat(start); err == nil && !info.IsDir() {
			start = filepath.Dir(start)
		}
	}
	cfg, cfgPath, err := config.Load(start)
	if err != nil {
		return config.Default(), "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, cfgPath, nil
}

// runWithProgress runs the driver behind a Bubble Tea progress view. Files are
// marked clean as they complete; findings counts land once the run finishes.
func runWithProgress(ctx context.Context, opts driver.Options, cfg config.Config) (*driver.Result, error) {
	files, err := driver.ListFiles(opts.Paths, cfg)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return driver.Run(ctx, opts)
	}

	events := make(chan ui.Event, 256)
	type outcome struct {
		result *driver.Result
		err    error
	}
	outcomeCh := make(chan outcome, 1)

	opts.Progress = func(done, total int, path string) {
		events <- ui.Event{Path: path, Status: ui.StatusClean}
	}

	go func() {
		res, err := driver.Run(ctx, opts)
		if err == nil {
			for _, fr := range res.Files {
				events <- ui.Event{Path: fr.Path, Status: fileStatus(fr), Findings: fr.Bag.Len()}
			}
		}
		outcomeCh <- outcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("nativelint", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil && out.err == nil {
		return out.result, uiErr
	}
	return out.result, out.err
}

func fileStatus(fr driver.FileResult) ui.Status {
	switch {
	case fr.Failed:
		return ui.StatusError
	case fr.Bag == nil || fr.Bag.Len() == 0:
		return ui.StatusClean
	default:
		return ui.StatusFindings
	}
}

// adjustSeverities applies --no-warnings / --warnings-as-errors to a sorted
// bag, returning a new bag when anything changes.
func adjustSeverities(bag *diag.Bag, noWarnings, warningsAsErrors bool) *diag.Bag {
	if !noWarnings && !warningsAsErrors {
		return bag
	}
	out := diag.NewBag(bag.Cap())
	for _, d := range bag.Items() {
		if d.Severity == diag.SevWarning {
			if noWarnings {
				continue
			}
			d.Severity = diag.SevError
		}
		out.Add(d)
	}
	out.Sort()
	return out
}

func printRunSummary(w *os.File, fileCount int, bag *diag.Bag) {
	errors, warnings := 0, 0
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errors++
		case diag.SevWarning:
			warnings++
		}
	}
	if bag.Len() == 0 {
		fmt.Fprintf(w, "%d file(s) checked, no issues found\n", fileCount)
		return
	}
	fmt.Fprintf(w, "%d file(s) checked: %d error(s), %d warning(s)\n", fileCount, errors, warnings)
}
