package rules

import "testing"

func TestInlineStyleObjectFlagged(t *testing.T) {
	src := "const Row = () => <View style={{ flex: 1 }} />;\n"
	bag := analyze(t, NewNoInlineStyles(), "Row.tsx", src)
	wantDiagnostics(t, bag, 1)
}

func TestStyleSheetReferencePasses(t *testing.T) {
	src := "const Row = () => <View style={styles.row} />;\n"
	bag := analyze(t, NewNoInlineStyles(), "Row.tsx", src)
	wantDiagnostics(t, bag, 0)
}

func TestStyleArrayWithLiteralFlagged(t *testing.T) {
	src := "const Row = () => <View style={[styles.row, { opacity: 0.5 }]} />;\n"
	bag := analyze(t, NewNoInlineStyles(), "Row.tsx", src)
	wantDiagnostics(t, bag, 1)
}

func TestStyleArrayOfReferencesPasses(t *testing.T) {
	src := "const Row = () => <View style={[styles.row, styles.dim]} />;\n"
	bag := analyze(t, NewNoInlineStyles(), "Row.tsx", src)
	wantDiagnostics(t, bag, 0)
}

func TestOtherAttributesIgnored(t *testing.T) {
	src := "const Row = () => <View layout={{ flex: 1 }} />;\n"
	bag := analyze(t, NewNoInlineStyles(), "Row.tsx", src)
	wantDiagnostics(t, bag, 0)
}
