package diag

import (
	"fmt"
)

type Code uint16

const (
	// Fallback for uncategorised problems.
	UnknownCode Code = 0

	// Type discipline (1000-1999)
	TypAnyInChangedFiles Code = 1001
	TypOptionalParam     Code = 1002
	TypImplicitUndefined Code = 1003
	TypUntypedNavigation Code = 1004

	// Hooks (2000-2999)
	HookUnstableDep Code = 2001

	// Expressions (3000-3999)
	ExprUnused Code = 3001

	// Styling (4000-4999)
	StyleTailwindClass Code = 4001
	StyleInlineObject  Code = 4002
	StyleRawText       Code = 4003

	// Test ids (5000-5999)
	TestDuplicateID Code = 5001

	// Imports and assets (6000-6499)
	ImportRequireImage Code = 6001

	// Mutability (6500-6999)
	MutForeignBinding Code = 6501

	// I/O and parsing (7000-7999)
	IOLoadFileError Code = 7001
	IOParseError    Code = 7002

	// Rule engine internals (8000-8999)
	EngineRulePanic Code = 8001
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown problem",
	TypAnyInChangedFiles: "Explicit any in a changed file",
	TypOptionalParam:     "Optional parameter shorthand",
	TypImplicitUndefined: "Implicitly omitted undefined argument",
	TypUntypedNavigation: "Untyped navigation hook",
	HookUnstableDep:      "Unstable hook dependency",
	ExprUnused:           "Unused expression",
	StyleTailwindClass:   "Utility class string in JSX",
	StyleInlineObject:    "Inline style object in JSX",
	StyleRawText:         "Raw text outside Text element",
	TestDuplicateID:      "Duplicate testID",
	ImportRequireImage:   "require() used for image asset",
	MutForeignBinding:    "Mutation of a non-local binding",
	IOLoadFileError:      "Failed to load file",
	IOParseError:         "Failed to parse file",
	EngineRulePanic:      "Rule aborted on this node",
}

// ID returns the stable string form of the code, grouped by rule family.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("HOK%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EXP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("TST%04d", ic)
	case ic >= 6000 && ic < 6500:
		return fmt.Sprintf("IMP%04d", ic)
	case ic >= 6500 && ic < 7000:
		return fmt.Sprintf("MUT%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 8000 && ic < 9000:
		return fmt.Sprintf("ENG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
