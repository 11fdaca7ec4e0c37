package rules

import "testing"

func TestClassNameStringFlagged(t *testing.T) {
	src := "const View1 = () => <View className=\"flex-1 p-4\" />;\n"
	bag := analyze(t, NewNoTailwindClass(), "View1.tsx", src)
	wantDiagnostics(t, bag, 1)
}

func TestTwAttributeFlagged(t *testing.T) {
	src := "const View1 = () => <View tw=\"mt-2\" />;\n"
	bag := analyze(t, NewNoTailwindClass(), "View1.tsx", src)
	wantDiagnostics(t, bag, 1)
}

func TestTemplateClassNameFlagged(t *testing.T) {
	src := "const View1 = () => <View className={`p-${pad}`} />;\n"
	bag := analyze(t, NewNoTailwindClass(), "View1.tsx", src)
	wantDiagnostics(t, bag, 1)
}

func TestStyleAttributeIgnoredByTailwindRule(t *testing.T) {
	src := "const View1 = () => <View style={styles.root} />;\n"
	bag := analyze(t, NewNoTailwindClass(), "View1.tsx", src)
	wantDiagnostics(t, bag, 0)
}

func TestNonStringClassNameIgnored(t *testing.T) {
	src := "const View1 = () => <View className={classes} />;\n"
	bag := analyze(t, NewNoTailwindClass(), "View1.tsx", src)
	wantDiagnostics(t, bag, 0)
}
