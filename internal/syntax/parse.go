package syntax

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"nativelint/internal/source"
)

// Tree owns a parsed syntax tree for one source file. The underlying
// tree-sitter tree is kept alive for the lifetime of the Tree.
type Tree struct {
	file  *source.File
	inner *sitter.Tree
}

// Parse runs the tree-sitter parser over the file content. The grammar is
// chosen by extension: .tsx uses the TSX grammar, everything else plain
// TypeScript. Parsing always yields a tree; syntactic garbage surfaces as
// ERROR nodes rather than a failed parse.
func Parse(ctx context.Context, file *source.File) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(file.Path))

	inner, err := parser.ParseCtx(ctx, nil, file.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file.Path, err)
	}

	return &Tree{file: file, inner: inner}, nil
}

func languageFor(path string) *sitter.Language {
	if strings.HasSuffix(path, ".tsx") || strings.HasSuffix(path, ".jsx") {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return Node{inner: t.inner.RootNode(), file: t.file}
}

// File returns the parsed file.
func (t *Tree) File() *source.File {
	return t.file
}

// HasError reports whether the parse produced any ERROR nodes.
func (t *Tree) HasError() bool {
	return t.inner.RootNode().HasError()
}

// Close releases the underlying tree-sitter resources.
func (t *Tree) Close() {
	if t.inner != nil {
		t.inner.Close()
		t.inner = nil
	}
}
