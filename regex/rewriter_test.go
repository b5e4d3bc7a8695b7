package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertConcat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"operand operand", "ab", "a·b"},
		{"operand lparen", "a(b)", "a·(b)"},
		{"rparen operand", "(a)b", "(a)·b"},
		{"unary operand", "a*b", "a*·b"},
		{"unary lparen", "a*(b)", "a*·(b)"},
		{"rparen lparen", "(a)(b)", "(a)·(b)"},
		{"no concat across alternation", "a|b", "a|b"},
		{"no concat after lparen", "(ab)", "(a·b)"},
		{"star alone", "a*", "a*"},
		{"plus then question", "a+?", "a+?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertConcat(tt.input))
		})
	}
}

func TestToPostfixRoundTrip(t *testing.T) {
	// Round-trip invariant: stripping all '·' from the rewritten form
	// yields back the original regex.
	inputs := []string{"ab", "a|b", "(a|b)*", "a+b?c", "a(b|c)*d"}
	for _, in := range inputs {
		withConcat := InsertConcat(in)
		stripped := make([]rune, 0, len(withConcat))
		for _, r := range withConcat {
			if r != Concat {
				stripped = append(stripped, r)
			}
		}
		assert.Equal(t, in, string(stripped))
	}
}

func TestShuntingYard(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple concat", "a·b", "ab·"},
		{"alternation", "a|b", "ab|"},
		{"star", "a*", "a*"},
		{"grouped alternation star", "(a|b)*", "ab|*"},
		{"precedence", "a·b|c", "ab·c|"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShuntingYard(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShuntingYardUnbalanced(t *testing.T) {
	_, err := ShuntingYard("(a·b")
	require.Error(t, err)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)

	_, err = ShuntingYard("a·b)")
	require.Error(t, err)
	require.ErrorAs(t, err, &syntaxErr)
}

func TestToPostfixEmptyRegex(t *testing.T) {
	_, err := ToPostfix("")
	require.Error(t, err)
}

func TestToPostfixEndToEnd(t *testing.T) {
	got, err := ToPostfix("a(b|c)*")
	require.NoError(t, err)
	assert.Equal(t, "abc|*·", got)
}
