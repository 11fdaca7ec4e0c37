package rules

import "testing"

func TestRawTextInViewFlagged(t *testing.T) {
	src := "const C = () => <View>hello</View>;\n"
	bag := analyze(t, NewNoRawText(), "C.tsx", src)
	wantDiagnostics(t, bag, 1)
}

func TestTextElementPasses(t *testing.T) {
	src := "const C = () => <Text>hello</Text>;\n"
	bag := analyze(t, NewNoRawText(), "C.tsx", src)
	wantDiagnostics(t, bag, 0)
}

func TestNamespacedTextPasses(t *testing.T) {
	src := "const C = () => <Animated.Text>hello</Animated.Text>;\n"
	bag := analyze(t, NewNoRawText(), "C.tsx", src)
	wantDiagnostics(t, bag, 0)
}

func TestWhitespaceOnlyTextIgnored(t *testing.T) {
	src := "const C = () => (\n  <View>\n    <Text>ok</Text>\n  </View>\n);\n"
	bag := analyze(t, NewNoRawText(), "C.tsx", src)
	wantDiagnostics(t, bag, 0)
}

func TestNestedRawTextFlaggedOnce(t *testing.T) {
	src := "const C = () => <View><Text>ok</Text>stray</View>;\n"
	bag := analyze(t, NewNoRawText(), "C.tsx", src)
	wantDiagnostics(t, bag, 1)
}
