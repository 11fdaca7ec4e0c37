package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"

	"nativelint/internal/source"
)

// Node is a light wrapper around a tree-sitter node carrying its file so that
// spans and text can be produced without threading the content separately.
// The zero Node is invalid; check Valid() after navigation calls.
type Node struct {
	inner *sitter.Node
	file  *source.File
}

func (n Node) Valid() bool {
	return n.inner != nil
}

// Kind returns the closed NodeKind tag for the node.
func (n Node) Kind() NodeKind {
	if n.inner == nil {
		return KindUnknown
	}
	return KindOf(n.inner.Type())
}

// RawType exposes the grammar's type string, mainly for diagnostics and tests.
func (n Node) RawType() string {
	if n.inner == nil {
		return ""
	}
	return n.inner.Type()
}

// Span returns the byte span of the node within its file.
func (n Node) Span() source.Span {
	if n.inner == nil {
		return source.Span{}
	}
	return source.Span{
		File:  n.file.ID,
		Start: n.inner.StartByte(),
		End:   n.inner.EndByte(),
	}
}

// Text returns the source text covered by the node.
func (n Node) Text() string {
	if n.inner == nil {
		return ""
	}
	return n.inner.Content(n.file.Content)
}

func (n Node) Parent() Node {
	if n.inner == nil {
		return Node{}
	}
	return Node{inner: n.inner.Parent(), file: n.file}
}

func (n Node) NamedChildCount() int {
	if n.inner == nil {
		return 0
	}
	return int(n.inner.NamedChildCount())
}

func (n Node) NamedChild(i int) Node {
	if n.inner == nil || i < 0 || i >= int(n.inner.NamedChildCount()) {
		return Node{}
	}
	return Node{inner: n.inner.NamedChild(i), file: n.file}
}

// ChildByField returns the child bound to a grammar field name ("function",
// "arguments", "left", ...).
func (n Node) ChildByField(name string) Node {
	if n.inner == nil {
		return Node{}
	}
	return Node{inner: n.inner.ChildByFieldName(name), file: n.file}
}

func (n Node) ChildCount() int {
	if n.inner == nil {
		return 0
	}
	return int(n.inner.ChildCount())
}

func (n Node) Child(i int) Node {
	if n.inner == nil || i < 0 || i >= int(n.inner.ChildCount()) {
		return Node{}
	}
	return Node{inner: n.inner.Child(i), file: n.file}
}

func (n Node) NextNamedSibling() Node {
	if n.inner == nil {
		return Node{}
	}
	return Node{inner: n.inner.NextNamedSibling(), file: n.file}
}

func (n Node) PrevNamedSibling() Node {
	if n.inner == nil {
		return Node{}
	}
	return Node{inner: n.inner.PrevNamedSibling(), file: n.file}
}

// HasError reports whether the subtree contains parse errors.
func (n Node) HasError() bool {
	if n.inner == nil {
		return false
	}
	return n.inner.HasError()
}

// File returns the file the node belongs to.
func (n Node) File() *source.File {
	return n.file
}

// NamedChildren collects all named children into a slice.
func (n Node) NamedChildren() []Node {
	count := n.NamedChildCount()
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// Ancestor walks up the tree until pred returns true, or returns an invalid
// Node when the root is passed without a match.
func (n Node) Ancestor(pred func(Node) bool) Node {
	for cur := n.Parent(); cur.Valid(); cur = cur.Parent() {
		if pred(cur) {
			return cur
		}
	}
	return Node{}
}

// StringValue returns the unquoted value of a string literal node ("string"
// grammar nodes, including their quote characters). Non-string nodes return
// their raw text.
func (n Node) StringValue() string {
	text := n.Text()
	if n.Kind() != KindString && n.Kind() != KindTemplateString {
		return text
	}
	if len(text) >= 2 {
		switch text[0] {
		case '\'', '"', '`':
			if text[len(text)-1] == text[0] {
				return text[1 : len(text)-1]
			}
		}
	}
	return text
}
