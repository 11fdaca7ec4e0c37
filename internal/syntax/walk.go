package syntax

// Walk visits the named nodes of the subtree in preorder. The callback may
// return false to skip the node's children (the traversal itself continues
// with siblings).
func Walk(root Node, visit func(Node) bool) {
	if !root.Valid() {
		return
	}
	if !visit(root) {
		return
	}
	count := root.NamedChildCount()
	for i := 0; i < count; i++ {
		Walk(root.NamedChild(i), visit)
	}
}

// FindAll collects every named node in the subtree matching the predicate.
func FindAll(root Node, pred func(Node) bool) []Node {
	var out []Node
	Walk(root, func(n Node) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindFirst returns the first named node in preorder matching the predicate.
func FindFirst(root Node, pred func(Node) bool) Node {
	var found Node
	Walk(root, func(n Node) bool {
		if found.Valid() {
			return false
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}
