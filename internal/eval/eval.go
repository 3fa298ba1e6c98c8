package eval

import (
	"errors"
	"fmt"
	"io"

	"calc/internal/parse"
)

// ErrDivisionByZero is matched by every DivisionByZeroError.
var ErrDivisionByZero = errors.New("division by zero")

// DivisionByZeroError reports a '/' node whose right operand is zero.
type DivisionByZeroError struct {
	Node *parse.Node
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero at column %d", e.Node.Pos)
}

func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// Evaluator reduces trees to values.
type Evaluator struct {
	Trace       bool
	TraceWriter io.Writer
}

// Eval evaluates n without tracing.
func Eval(n *parse.Node) (Value, error) {
	return (&Evaluator{}).Eval(n)
}

// Eval evaluates n. When tracing, one line is written per operator node
// after both of its operands are reduced.
func (e *Evaluator) Eval(n *parse.Node) (Value, error) {
	if n == nil {
		return Value{}, errors.New("eval: nil tree")
	}
	if n.Kind == parse.KNumber {
		return Int(int64(n.Value)), nil
	}
	if !n.Kind.IsOperator() {
		return Value{}, fmt.Errorf("eval: unexpected node %s", n.Kind)
	}
	left, err := e.Eval(n.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return Value{}, err
	}
	var out Value
	switch n.Kind {
	case parse.KPlus:
		out = add(left, right)
	case parse.KMinus:
		out = sub(left, right)
	case parse.KStar:
		out = mul(left, right)
	case parse.KSlash:
		if right.IsZero() {
			return Value{}, &DivisionByZeroError{Node: n}
		}
		out = div(left, right)
	}
	if e.Trace && e.TraceWriter != nil {
		fmt.Fprintf(e.TraceWriter, "+ %s%s%s = %s\n", left, n.Kind, right, out)
	}
	return out, nil
}
