package parse

import "strconv"

// Kind classifies both tokens and AST nodes.
type Kind int

const (
	KNumber Kind = iota
	KPlus
	KMinus
	KStar
	KSlash
	KLParen
	KRParen
	KEnd
)

// String returns the source symbol for the kind.
func (k Kind) String() string {
	switch k {
	case KNumber:
		return "number"
	case KPlus:
		return "+"
	case KMinus:
		return "-"
	case KStar:
		return "*"
	case KSlash:
		return "/"
	case KLParen:
		return "("
	case KRParen:
		return ")"
	case KEnd:
		return "end of input"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsOperator reports whether k is one of the four binary operators.
func (k Kind) IsOperator() bool {
	return k == KPlus || k == KMinus || k == KStar || k == KSlash
}

// Additive reports whether k is + or -.
func (k Kind) Additive() bool {
	return k == KPlus || k == KMinus
}

// Multiplicative reports whether k is * or /.
func (k Kind) Multiplicative() bool {
	return k == KStar || k == KSlash
}

// Pos is a 1-based column in the input.
type Pos int

// Token is a classified unit of input.
type Token struct {
	Kind  Kind
	Value int
	Pos   Pos
}

func (t Token) String() string {
	if t.Kind == KNumber {
		return strconv.Itoa(t.Value)
	}
	return t.Kind.String()
}

// Node is an AST node. Leaves have Kind KNumber and no children;
// operator nodes always have both Left and Right set.
type Node struct {
	Kind        Kind
	Value       int
	Pos         Pos
	Left, Right *Node
}

// N constructs a binary operator node.
func N(k Kind, a, b *Node) *Node {
	return &Node{Kind: k, Left: a, Right: b}
}

// Num constructs a number leaf.
func Num(v int) *Node {
	return &Node{Kind: KNumber, Value: v}
}

// Label is the display text of a node: its digit or operator symbol.
func (n *Node) Label() string {
	if n.Kind == KNumber {
		return strconv.Itoa(n.Value)
	}
	return n.Kind.String()
}

// Children returns the operands of n in order.
func (n *Node) Children() []*Node {
	if n == nil || n.Kind == KNumber {
		return nil
	}
	return []*Node{n.Left, n.Right}
}
