package rules

import (
	"testing"

	"nativelint/internal/rule"
	"nativelint/internal/vcs"
)

func TestAnyFlaggedInChangedFile(t *testing.T) {
	src := "function parse(input: any): number { return 0; }\n"
	bag := analyze(t, NewAnyInChangedFiles(), "Parse.ts", src, func(ctx *rule.Context) {
		ctx.Changed = vcs.NewChangedSet("", "Parse.ts")
	})
	diags := wantDiagnostics(t, bag, 1)
	if got := diags[0].Message; got == "" {
		t.Error("expected a message")
	}
}

func TestAnySilentInUntouchedFile(t *testing.T) {
	src := "function parse(input: any): number { return 0; }\n"
	bag := analyze(t, NewAnyInChangedFiles(), "Parse.ts", src, func(ctx *rule.Context) {
		ctx.Changed = vcs.NewChangedSet("", "Other.ts")
	})
	wantDiagnostics(t, bag, 0)
}

func TestAnySilentWithoutChangedSet(t *testing.T) {
	src := "const x: any = 1;\n"
	bag := analyze(t, NewAnyInChangedFiles(), "Parse.ts", src)
	wantDiagnostics(t, bag, 0)
}

func TestOtherPredefinedTypesPass(t *testing.T) {
	src := "function parse(input: string): unknown { return input; }\n"
	bag := analyze(t, NewAnyInChangedFiles(), "Parse.ts", src, func(ctx *rule.Context) {
		ctx.Changed = vcs.NewChangedSet("", "Parse.ts")
	})
	wantDiagnostics(t, bag, 0)
}
