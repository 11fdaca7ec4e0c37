package rules

import "testing"

func TestStandaloneImageRequireRewritten(t *testing.T) {
	src := "const logo = require('./assets/logo.png');\n"
	bag := analyze(t, NewNoRequireImage(), "App.tsx", src)
	diags := wantDiagnostics(t, bag, 1)
	if got, want := firstFixText(t, diags[0]), "import logo from './assets/logo.png';"; got != want {
		t.Errorf("fix text = %q, want %q", got, want)
	}
}

func TestSourcePropRequireIsExempt(t *testing.T) {
	src := "const C = () => <Image source={require('./assets/logo.png')} />;\n"
	bag := analyze(t, NewNoRequireImage(), "C.tsx", src)
	wantDiagnostics(t, bag, 0)
}

func TestNonImageRequireIgnored(t *testing.T) {
	src := "const config = require('./config.json');\n"
	bag := analyze(t, NewNoRequireImage(), "App.ts", src)
	wantDiagnostics(t, bag, 0)
}

func TestRequireInOtherPropFlaggedWithoutRewrite(t *testing.T) {
	src := "const C = () => <Preview thumb={require('./thumb.jpg')} />;\n"
	bag := analyze(t, NewNoRequireImage(), "C.tsx", src)
	diags := wantDiagnostics(t, bag, 1)
	if len(diags[0].Fixes) != 0 {
		t.Error("only the standalone binding form has a rewrite")
	}
}

func TestMultiDeclaratorRequireFlaggedWithoutRewrite(t *testing.T) {
	src := "const a = require('./a.png'), b = 1;\n"
	bag := analyze(t, NewNoRequireImage(), "App.ts", src)
	diags := wantDiagnostics(t, bag, 1)
	if len(diags[0].Fixes) != 0 {
		t.Error("multi-declarator statements cannot be rewritten wholesale")
	}
}

func TestUppercaseExtensionStillCounts(t *testing.T) {
	src := "const hero = require('./hero.PNG');\n"
	bag := analyze(t, NewNoRequireImage(), "App.ts", src)
	wantDiagnostics(t, bag, 1)
}
