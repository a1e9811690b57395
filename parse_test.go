package jitcalc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse parses input or fails the test.
func mustParse(t *testing.T, input string) Node {
	t.Helper()
	root, err := Parse(input)
	require.NoError(t, err, "parse %q", input)
	return root
}

func TestParseTree(t *testing.T) {
	// The rendered form is fully parenthesized, so it pins down the
	// exact shape of the tree.
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", "42", "42"},
		{"precedence", "1 + 2 * 3", "(1 + (2 * 3))"},
		{"grouping beats precedence", "(1 + 2) * 3", "((1 + 2) * 3)"},
		{"left associative sub", "8 - 3 - 2", "((8 - 3) - 2)"},
		{"left associative div", "100 / 10 / 5", "((100 / 10) / 5)"},
		{"mixed", "10 / 2 - 3", "((10 / 2) - 3)"},
		{"nested grouping", "((2 + 3) * (4 - 1))", "((2 + 3) * (4 - 1))"},
		{"decimal", "2.5 * 4", "(2.5 * 4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.input).String())
		})
	}
}

func TestParseUnaryMinus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"negated literal", "-3", "-3"},
		{"double negation", "- - 3", "3"},
		{"negated factor", "2 * -3", "(2 * -3)"},
		{"negated group", "-(1 + 2)", "(0 - (1 + 2))"},
		{"negated group in division", "4 / ( - 5 )", "(4 / -5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.input).String())
		})
	}
}

func TestParseNodeShape(t *testing.T) {
	root := mustParse(t, "(1 + 2) * 3")

	mul, ok := root.(*binaryNode)
	require.True(t, ok)
	assert.Equal(t, NodeBinary, mul.Kind())
	assert.Equal(t, opMul, mul.op)

	group, ok := mul.left.(*groupingNode)
	require.True(t, ok)
	assert.Equal(t, NodeGrouping, group.Kind())

	add, ok := group.inner.(*binaryNode)
	require.True(t, ok)
	assert.Equal(t, opAdd, add.op)

	three, ok := mul.right.(*numberNode)
	require.True(t, ok)
	assert.Equal(t, NodeNumber, three.Kind())
	assert.Equal(t, 3.0, three.val)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParseErrorKind
	}{
		{"empty input", "", ErrEmptyExpression},
		{"only whitespace", "   ", ErrEmptyExpression},
		{"missing operand", "1 + ", ErrUnexpectedToken},
		{"doubled operator", "1 * / 2", ErrUnexpectedToken},
		{"leading operator", "* 2", ErrUnexpectedToken},
		{"lone close paren", ")", ErrUnexpectedToken},
		{"unmatched paren", "(1 + 2", ErrUnmatchedParen},
		{"unmatched nested paren", "((1 + 2)", ErrUnmatchedParen},
		{"trailing number", "1 2", ErrTrailingInput},
		{"trailing close paren", "1 + 2)", ErrTrailingInput},
		{"empty parens", "()", ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr, "want *ParseError, got %T", err)
			assert.Equal(t, tt.want, perr.Kind, "error: %v", err)
		})
	}
}

func TestParseLexErrorPropagates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantPos Pos
	}{
		{"error in operand position", "$", 0},
		{"error in operator position", "1 $ 2", 2},
		{"error inside parens", "(1 + %)", 5},
		{"malformed number", "1 + 2..3", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var lerr *LexError
			require.ErrorAs(t, err, &lerr, "want *LexError, got %T", err)
			assert.Equal(t, tt.wantPos, lerr.Pos)

			var perr *ParseError
			assert.False(t, errors.As(err, &perr))
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	_, err := Parse("")
	require.EqualError(t, err, "parse error: empty expression")

	_, err = Parse("(1 + 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected ')'")

	_, err = Parse("1 $ 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 2")
}

func TestParsePositions(t *testing.T) {
	root := mustParse(t, "1 + 2 * 3")

	add, ok := root.(*binaryNode)
	require.True(t, ok)
	assert.Equal(t, Pos(2), add.Position(), "root is the '+' at offset 2")

	mul, ok := add.right.(*binaryNode)
	require.True(t, ok)
	assert.Equal(t, Pos(6), mul.Position())
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse("1 + 2 * (3 - 4) / 5.5"); err != nil {
			b.Fatal(err)
		}
	}
}
