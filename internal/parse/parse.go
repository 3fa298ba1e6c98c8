package parse

import (
	"fmt"
	"io"
	"strings"
)

// SyntaxError reports a token that does not fit the grammar at its position.
type SyntaxError struct {
	Found    Token
	Expected []Kind
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at column %d: unexpected %s", e.Found.Pos, e.Found)
	if len(e.Expected) == 0 {
		return msg
	}
	names := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		names[i] = k.String()
	}
	return msg + ", expected " + strings.Join(names, " or ")
}

// Parse reads input and returns the parsed AST.
func Parse(rd io.Reader) (*Node, error) {
	toks, err := LexAll(rd)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseString parses a single expression.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// ParseTokens parses a token sequence as produced by Lex. The slice is
// read but never modified. The whole sequence must form one expression
// followed by End.
func ParseTokens(toks []Token) (*Node, error) {
	p := &parser{toks: toks}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.match(KEnd); err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	var at Pos
	if n := len(p.toks); n > 0 {
		at = p.toks[n-1].Pos + 1
	}
	return Token{Kind: KEnd, Pos: at}
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

// match consumes the current token if it has kind k.
func (p *parser) match(k Kind) (Token, error) {
	tok := p.peek()
	if tok.Kind != k {
		return Token{}, &SyntaxError{Found: tok, Expected: []Kind{k}}
	}
	return p.next(), nil
}

// expr parses Term (('+'|'-') Term)*, folding each operator onto the
// tree built so far so that equal-precedence chains group to the left.
func (p *parser) expr() (*Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind.Additive() {
		op := p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = graft(op, left, right)
	}
	return left, nil
}

// term parses Factor (('*'|'/') Factor)*. The finished chain is returned
// whole to expr and becomes a single operand there.
func (p *parser) term() (*Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind.Multiplicative() {
		op := p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = graft(op, left, right)
	}
	return left, nil
}

func (p *parser) factor() (*Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case KNumber:
		p.next()
		return &Node{Kind: KNumber, Value: tok.Value, Pos: tok.Pos}, nil
	case KLParen:
		p.next()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.match(KRParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, &SyntaxError{Found: tok, Expected: []Kind{KNumber, KLParen}}
	}
}
