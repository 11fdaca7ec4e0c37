// Package diag defines the core diagnostic model shared by the whole linter.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by lint rules.
//   - Offer light-weight utilities (Reporter, Bag) that let rules emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model fix suggestions as structured edits that the driver or CLI can
//     optionally apply.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in internal/diagfmt,
// whereas selection and application of fixes lives in internal/fix.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing how to address the problem.
//
// Notes should be used sparingly: each note must add new context (e.g. "first
// occurrence here") rather than repeating the diagnostic message.
//
// # Fix suggestions
//
// Fix represents a possible automated correction. Each fix carries a Title,
// a Kind (quick fix, rewrite, source action), an Applicability confidence
// level (AlwaysSafe, SafeWithHeuristics, ManualReview) and concrete TextEdits.
// TextEdit spans are in source byte coordinates; OldText acts as an optional
// guard that the fix engine uses to validate the context before applying.
//
// # Emitting diagnostics
//
// Rules emit through a diag.Reporter to decouple emission from storage. A rule
// constructs a ReportBuilder via the helpers ReportError/ReportWarning/
// ReportInfo and chains WithNote / WithFixSuggestion before calling Emit.
// diag.BagReporter aggregates into a Bag; DedupReporter filters repeats.
package diag
