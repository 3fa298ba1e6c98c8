package parse

// Preorder calls fn for n and then for each descendant, parents before
// children and left operands before right ones. Traversal stops early
// when fn returns false.
func Preorder(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children() {
		if !Preorder(child, fn) {
			return false
		}
	}
	return true
}

// KindsPreorder collects node kinds in preorder.
func KindsPreorder(n *Node) []Kind {
	var out []Kind
	Preorder(n, func(m *Node) bool {
		out = append(out, m.Kind)
		return true
	})
	return out
}

// Count returns the number of nodes in the tree.
func Count(n *Node) int {
	total := 0
	Preorder(n, func(*Node) bool {
		total++
		return true
	})
	return total
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(Depth(n.Left), Depth(n.Right))
}

// FindFirstKind returns the first node with the given kind in preorder.
func FindFirstKind(n *Node, k Kind) *Node {
	var found *Node
	Preorder(n, func(m *Node) bool {
		if m.Kind == k {
			found = m
			return false
		}
		return true
	})
	return found
}
