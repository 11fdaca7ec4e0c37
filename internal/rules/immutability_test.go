package rules

import "testing"

func TestPushOnParameterFlagged(t *testing.T) {
	src := "function add(items: string[], item: string) {\n  items.push(item);\n}\n"
	bag := analyze(t, NewImmutability(), "Add.ts", src)
	wantDiagnostics(t, bag, 1)
}

func TestPushOnLocalPasses(t *testing.T) {
	src := "function add(item: string) {\n  const items: string[] = [];\n  items.push(item);\n  return items;\n}\n"
	bag := analyze(t, NewImmutability(), "Add.ts", src)
	wantDiagnostics(t, bag, 0)
}

func TestSpliceOnOuterBindingFlagged(t *testing.T) {
	src := "const cache: number[] = [];\nfunction evict() {\n  cache.splice(0, 1);\n}\n"
	bag := analyze(t, NewImmutability(), "Cache.ts", src)
	wantDiagnostics(t, bag, 1)
}

func TestModuleLevelMutationOfOwnBindingPasses(t *testing.T) {
	src := "const registry: string[] = [];\nregistry.push('init');\n"
	bag := analyze(t, NewImmutability(), "Registry.ts", src)
	wantDiagnostics(t, bag, 0)
}

func TestIndexAssignmentOnParameterFlagged(t *testing.T) {
	src := "function zero(row: number[]) {\n  row[0] = 0;\n}\n"
	bag := analyze(t, NewImmutability(), "Zero.ts", src)
	wantDiagnostics(t, bag, 1)
}

func TestIncrementOnParameterFlagged(t *testing.T) {
	src := "function bump(count: number) {\n  count++;\n}\n"
	bag := analyze(t, NewImmutability(), "Bump.ts", src)
	wantDiagnostics(t, bag, 1)
}

func TestIncrementOnLocalPasses(t *testing.T) {
	src := "function total(values: number[]) {\n  let sum = 0;\n  for (let i = 0; i < values.length; i++) {\n    sum += values[i];\n  }\n  return sum;\n}\n"
	bag := analyze(t, NewImmutability(), "Total.ts", src)
	wantDiagnostics(t, bag, 0)
}

func TestCompoundAssignmentOnOuterFlagged(t *testing.T) {
	src := "let total = 0;\nfunction accumulate(n: number) {\n  total += n;\n}\n"
	bag := analyze(t, NewImmutability(), "Acc.ts", src)
	wantDiagnostics(t, bag, 1)
}

func TestRefCurrentAssignmentPasses(t *testing.T) {
	src := "function focus(inputRef: { current: unknown }) {\n  inputRef.current = null;\n}\n"
	bag := analyze(t, NewImmutability(), "Focus.ts", src)
	wantDiagnostics(t, bag, 0)
}

func TestSelectorCompositionPasses(t *testing.T) {
	src := "function sorted(state: unknown) {\n  return selectItems(state).sort();\n}\n"
	bag := analyze(t, NewImmutability(), "Select.ts", src)
	wantDiagnostics(t, bag, 0)
}

func TestPropertyAssignmentOnParameterFlagged(t *testing.T) {
	src := "function rename(user: { name: string }) {\n  user.name = 'anon';\n}\n"
	bag := analyze(t, NewImmutability(), "Rename.ts", src)
	wantDiagnostics(t, bag, 1)
}

func TestNonMutatingMethodPasses(t *testing.T) {
	src := "function copy(items: string[]) {\n  return items.map(x => x);\n}\n"
	bag := analyze(t, NewImmutability(), "Copy.ts", src)
	wantDiagnostics(t, bag, 0)
}
