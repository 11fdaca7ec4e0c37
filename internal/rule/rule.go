// Package rule defines the contract between the driver and individual lint
// rules: the Rule interface, the per-file Context they receive, and the
// run-scoped test-id registry shared across files.
package rule

import (
	"nativelint/internal/diag"
	"nativelint/internal/source"
	"nativelint/internal/syntax"
	"nativelint/internal/typeinfo"
	"nativelint/internal/vcs"
)

// Meta describes a rule for registries, config and the `rules` listing.
type Meta struct {
	// Name is the kebab-case rule identifier used in config files.
	Name string
	// Code is the diagnostic code every finding of this rule carries.
	Code diag.Code
	// Severity is the default severity, overridable per rule in config.
	Severity diag.Severity
	// HasFix marks rules that can attach an automated fix.
	HasFix bool
	// Doc is a one-line description shown by the CLI.
	Doc string
}

// Rule is a single independent lint check. The driver walks each file's tree
// once and dispatches nodes to every enabled rule subscribed to the node's
// kind. Visit must not retain the node beyond the call.
type Rule interface {
	Meta() Meta
	// Kinds lists the node kinds the rule wants to see.
	Kinds() []syntax.NodeKind
	// Visit inspects one node and reports findings through ctx.
	Visit(ctx *Context, node syntax.Node)
}

// Context carries everything a rule may consult while visiting nodes of one
// file. It is constructed per file by the driver; Severity and FixEnabled are
// specialised per rule. The TestIDs registry is the only field shared across
// files (and goroutines) within a run.
type Context struct {
	Reporter diag.Reporter
	File     *source.File
	// Resolver answers type-category questions; may be nil, in which case
	// rules needing type information produce no verdict.
	Resolver *typeinfo.Resolver
	// Changed is the version-control changed-file set; may be nil.
	Changed *vcs.ChangedSet
	// TestIDs is the run-scoped registry for duplicate-test-id; never nil
	// during a run.
	TestIDs *TestIDRegistry

	// Severity is the effective severity for the current rule.
	Severity diag.Severity
	// FixEnabled gates fix suggestions for the current rule.
	FixEnabled bool
}

// Report starts a diagnostic at the context's effective severity.
func (c *Context) Report(code diag.Code, primary source.Span, msg string) *diag.ReportBuilder {
	return diag.NewReportBuilder(c.Reporter, c.Severity, code, primary, msg)
}
