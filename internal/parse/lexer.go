package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// LexError reports a character that is not a digit, operator, or parenthesis.
// Input that is not valid UTF-8 is reported by its raw byte.
type LexError struct {
	Char    rune
	Byte    byte
	BadUTF8 bool
	Pos     Pos
}

func (e *LexError) Error() string {
	if e.BadUTF8 {
		return fmt.Sprintf("invalid byte %#02x at column %d", e.Byte, e.Pos)
	}
	return fmt.Sprintf("invalid character %q at column %d", e.Char, e.Pos)
}

// Lexer turns runes into tokens, one rune per token.
type Lexer struct {
	r   *bufio.Reader
	col int
	eof bool
}

func NewLexer(rd io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(rd)}
}

// Next returns the next token. After the input is exhausted it returns
// an End token on every call.
func (lx *Lexer) Next() (Token, error) {
	if lx.eof {
		return Token{Kind: KEnd, Pos: Pos(lx.col + 1)}, nil
	}
	r, size, err := lx.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			lx.eof = true
			return Token{Kind: KEnd, Pos: Pos(lx.col + 1)}, nil
		}
		return Token{}, err
	}
	lx.col++
	pos := Pos(lx.col)
	switch r {
	case '+':
		return Token{Kind: KPlus, Pos: pos}, nil
	case '-':
		return Token{Kind: KMinus, Pos: pos}, nil
	case '*':
		return Token{Kind: KStar, Pos: pos}, nil
	case '/':
		return Token{Kind: KSlash, Pos: pos}, nil
	case '(':
		return Token{Kind: KLParen, Pos: pos}, nil
	case ')':
		return Token{Kind: KRParen, Pos: pos}, nil
	}
	if r >= '0' && r <= '9' {
		return Token{Kind: KNumber, Value: int(r - '0'), Pos: pos}, nil
	}
	if r == utf8.RuneError && size == 1 {
		return Token{}, lx.badByte(pos)
	}
	return Token{}, &LexError{Char: r, Pos: pos}
}

// badByte re-reads the byte that failed to decode as UTF-8.
func (lx *Lexer) badByte(pos Pos) error {
	if err := lx.r.UnreadRune(); err != nil {
		return err
	}
	b, err := lx.r.ReadByte()
	if err != nil {
		return err
	}
	return &LexError{Char: utf8.RuneError, Byte: b, BadUTF8: true, Pos: pos}
}

// LexAll reads the whole input and returns its tokens followed by exactly
// one End token.
func LexAll(rd io.Reader) ([]Token, error) {
	lx := NewLexer(rd)
	var out []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == KEnd {
			return out, nil
		}
	}
}

// Lex tokenizes s.
func Lex(s string) ([]Token, error) {
	return LexAll(strings.NewReader(s))
}
