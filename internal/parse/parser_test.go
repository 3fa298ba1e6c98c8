package parse

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
)

func TestParseReadsInput(t *testing.T) {
	node, err := Parse(strings.NewReader("1+2"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if node == nil {
		t.Fatalf("expected non-nil AST")
	}
	if node.Kind != KPlus {
		t.Fatalf("expected plus node, got %s", repr.String(node))
	}
	if node.Left.Value != 1 || node.Right.Value != 2 {
		t.Fatalf("unexpected operands: %s", repr.String(node))
	}
}

func TestParseLeftAssociative(t *testing.T) {
	tests := []struct {
		input string
		want  *Node
	}{
		{"3-2+1", N(KPlus, N(KMinus, Num(3), Num(2)), Num(1))},
		{"8/4/2", N(KSlash, N(KSlash, Num(8), Num(4)), Num(2))},
		{"1-2-3-4", N(KMinus, N(KMinus, N(KMinus, Num(1), Num(2)), Num(3)), Num(4))},
		{"2*3/4*5", N(KStar, N(KSlash, N(KStar, Num(2), Num(3)), Num(4)), Num(5))},
	}
	for _, tt := range tests {
		got, err := ParseString(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, Format(tt.want), Format(got), tt.input)
		require.Equal(t, KindsPreorder(tt.want), KindsPreorder(got), tt.input)
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  *Node
	}{
		{"2+3*4", N(KPlus, Num(2), N(KStar, Num(3), Num(4)))},
		{"2*3+4", N(KPlus, N(KStar, Num(2), Num(3)), Num(4))},
		{"2*(3+4)", N(KStar, Num(2), N(KPlus, Num(3), Num(4)))},
		{"1-2*3-4", N(KMinus, N(KMinus, Num(1), N(KStar, Num(2), Num(3))), Num(4))},
		{"8/((1+3)*2)", N(KSlash, Num(8), N(KStar, N(KPlus, Num(1), Num(3)), Num(2)))},
		{"((((5))))", Num(5)},
	}
	for _, tt := range tests {
		got, err := ParseString(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, KindsPreorder(tt.want), KindsPreorder(got), "%s: %s", tt.input, repr.String(got))
		require.Equal(t, Format(tt.want), Format(got), tt.input)
	}
}

func TestParseRecordsOperatorPositions(t *testing.T) {
	node, err := ParseString("1+2*3")
	require.NoError(t, err)
	require.Equal(t, Pos(2), node.Pos)
	require.Equal(t, Pos(4), node.Right.Pos)
	require.Equal(t, Pos(5), node.Right.Right.Pos)
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		input    string
		found    Kind
		expected []Kind
	}{
		{"1+1)", KRParen, []Kind{KEnd}},
		{"(1+1", KEnd, []Kind{KRParen}},
		{"", KEnd, []Kind{KNumber, KLParen}},
		{"1+", KEnd, []Kind{KNumber, KLParen}},
		{"*2", KStar, []Kind{KNumber, KLParen}},
		{"12", KNumber, []Kind{KEnd}},
		{"2(3)", KLParen, []Kind{KEnd}},
		{"()", KRParen, []Kind{KNumber, KLParen}},
		{"(1)(2)", KLParen, []Kind{KEnd}},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.input)
		var syn *SyntaxError
		require.True(t, errors.As(err, &syn), "%q: expected SyntaxError, got %v", tt.input, err)
		require.Equal(t, tt.found, syn.Found.Kind, tt.input)
		require.Equal(t, tt.expected, syn.Expected, tt.input)
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseString("1+1)")
	require.EqualError(t, err, "syntax error at column 4: unexpected ), expected end of input")
}

func TestParseLexErrorPassesThrough(t *testing.T) {
	_, err := ParseString("1+x")
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 'x', lexErr.Char)
}

func TestParseTokensDoesNotConsumeInput(t *testing.T) {
	toks, err := Lex("1-2-3")
	require.NoError(t, err)
	snapshot := append([]Token(nil), toks...)
	first, err := ParseTokens(toks)
	require.NoError(t, err)
	second, err := ParseTokens(toks)
	require.NoError(t, err)
	require.Equal(t, snapshot, toks)
	require.Equal(t, Format(first), Format(second))
}

func TestParseTokensWithoutEnd(t *testing.T) {
	node, err := ParseTokens([]Token{{Kind: KNumber, Value: 4, Pos: 1}})
	require.NoError(t, err)
	require.Equal(t, 4, node.Value)
}

func TestParseLongChainIsShallowPerLevel(t *testing.T) {
	input := "1" + strings.Repeat("-1", 10000)
	node, err := ParseString(input)
	require.NoError(t, err)
	require.Equal(t, 20001, Count(node))
	// Every right operand is a leaf, so the chain descends down the left.
	require.Equal(t, 10001, Depth(node))
}

func TestFormatRoundTrip(t *testing.T) {
	g := &Generator{Rand: rand.New(rand.NewSource(1))}
	for i := 0; i < 500; i++ {
		tree := g.Generate(6)
		text := Format(tree)
		parsed, err := ParseString(text)
		require.NoError(t, err, text)
		require.Equal(t, text, Format(parsed))
		require.Equal(t, KindsPreorder(tree), KindsPreorder(parsed), text)
	}
}

func TestFormatMinimalParens(t *testing.T) {
	tests := []struct {
		tree *Node
		want string
	}{
		{N(KMinus, N(KMinus, Num(1), Num(2)), Num(3)), "1-2-3"},
		{N(KMinus, Num(1), N(KMinus, Num(2), Num(3))), "1-(2-3)"},
		{N(KStar, N(KPlus, Num(1), Num(2)), Num(3)), "(1+2)*3"},
		{N(KPlus, Num(1), N(KStar, Num(2), Num(3))), "1+2*3"},
		{N(KSlash, Num(8), N(KStar, Num(2), Num(2))), "8/(2*2)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Format(tt.tree))
	}
}

func TestDump(t *testing.T) {
	node, err := ParseString("3-2+1")
	require.NoError(t, err)
	want := "- + @4\n" +
		"    - - @2\n" +
		"        - 3 @1\n" +
		"        - 2 @3\n" +
		"    - 1 @5\n"
	require.Equal(t, want, Dump(node))
}

func TestFindFirstKind(t *testing.T) {
	node, err := ParseString("1+2*(3/4)")
	require.NoError(t, err)
	slash := FindFirstKind(node, KSlash)
	require.NotNil(t, slash)
	require.Equal(t, 3, slash.Left.Value)
	require.Nil(t, FindFirstKind(node, KMinus))
}
