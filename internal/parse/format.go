package parse

import (
	"fmt"
	"strings"
)

// Format renders a tree as an expression using only the parentheses
// needed to parse back to the same shape.
func Format(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	formatNode(&b, n)
	return b.String()
}

func formatNode(b *strings.Builder, n *Node) {
	if n.Kind == KNumber {
		b.WriteString(n.Label())
		return
	}
	// A right operand of equal precedence needs parentheses, a left one
	// does not: the parser groups equal-precedence chains to the left.
	formatOperand(b, n.Left, precedence(n.Left) < precedence(n))
	b.WriteString(n.Kind.String())
	formatOperand(b, n.Right, precedence(n.Right) <= precedence(n))
}

func formatOperand(b *strings.Builder, n *Node, paren bool) {
	if !paren {
		formatNode(b, n)
		return
	}
	b.WriteByte('(')
	formatNode(b, n)
	b.WriteByte(')')
}

func precedence(n *Node) int {
	switch {
	case n.Kind.Additive():
		return 1
	case n.Kind.Multiplicative():
		return 2
	default:
		return 3
	}
}

// Dump returns an indented listing of the tree, one node per line.
func Dump(n *Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, indent int) {
	if n == nil {
		return
	}
	pad := strings.Repeat(" ", indent)
	fmt.Fprintf(b, "%s- %s @%d\n", pad, n.Label(), n.Pos)
	for _, child := range n.Children() {
		dumpNode(b, child, indent+4)
	}
}
