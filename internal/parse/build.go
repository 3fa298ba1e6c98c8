package parse

// graft makes the pending subtree the left operand of a new operator
// node, so the earlier operator ends up deeper in the tree.
func graft(op Token, pending, right *Node) *Node {
	n := N(op.Kind, pending, right)
	n.Pos = op.Pos
	return n
}
