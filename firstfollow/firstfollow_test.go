package firstfollow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/lexcore/grammar"
)

// classicExpressionGrammar builds the textbook expression grammar:
//
//	E  -> T E'
//	E' -> + T E' | ε
//	T  -> F T'
//	T' -> * F T' | ε
//	F  -> ( E ) | id
func classicExpressionGrammar() *grammar.Grammar {
	E, Ep := grammar.NonTerminal("E"), grammar.NonTerminal("E'")
	T, Tp := grammar.NonTerminal("T"), grammar.NonTerminal("T'")
	F := grammar.NonTerminal("F")
	plus, star := grammar.Terminal("+"), grammar.Terminal("*")
	lparen, rparen := grammar.Terminal("("), grammar.Terminal(")")
	id := grammar.Terminal("id")

	g := grammar.New(E)
	g.AddProduction(E, T, Ep)
	g.AddProduction(Ep, plus, T, Ep)
	g.AddProduction(Ep, grammar.Epsilon)
	g.AddProduction(T, F, Tp)
	g.AddProduction(Tp, star, F, Tp)
	g.AddProduction(Tp, grammar.Epsilon)
	g.AddProduction(F, lparen, E, rparen)
	g.AddProduction(F, id)
	return g
}

func symbolSetOf(syms ...grammar.Symbol) SymbolSet {
	out := make(SymbolSet, len(syms))
	for _, s := range syms {
		out[s] = true
	}
	return out
}

func TestComputeFirstClassicGrammar(t *testing.T) {
	g := classicExpressionGrammar()
	first := ComputeFirst(g)

	id, lparen := grammar.Terminal("id"), grammar.Terminal("(")
	plus, star := grammar.Terminal("+"), grammar.Terminal("*")

	assert.Equal(t, symbolSetOf(lparen, id), first.Of(grammar.NonTerminal("F")))
	assert.Equal(t, symbolSetOf(lparen, id), first.Of(grammar.NonTerminal("T")))
	assert.Equal(t, symbolSetOf(lparen, id), first.Of(grammar.NonTerminal("E")))
	assert.Equal(t, symbolSetOf(star, grammar.Epsilon), first.Of(grammar.NonTerminal("T'")))
	assert.Equal(t, symbolSetOf(plus, grammar.Epsilon), first.Of(grammar.NonTerminal("E'")))
	assert.True(t, first.IsNullable(grammar.NonTerminal("T'")))
	assert.False(t, first.IsNullable(grammar.NonTerminal("E")))
}

func TestComputeFollowClassicGrammar(t *testing.T) {
	g := classicExpressionGrammar()
	first := ComputeFirst(g)
	follow, err := ComputeFollow(g, first)
	require.NoError(t, err)

	plus, star := grammar.Terminal("+"), grammar.Terminal("*")
	rparen := grammar.Terminal(")")

	assert.Equal(t, symbolSetOf(grammar.EndOfInput, rparen), follow.Of(grammar.NonTerminal("E")))
	assert.Equal(t, symbolSetOf(grammar.EndOfInput, rparen), follow.Of(grammar.NonTerminal("E'")))
	assert.Equal(t, symbolSetOf(plus, grammar.EndOfInput, rparen), follow.Of(grammar.NonTerminal("T")))
	assert.Equal(t, symbolSetOf(plus, grammar.EndOfInput, rparen), follow.Of(grammar.NonTerminal("T'")))
	assert.Equal(t, symbolSetOf(star, plus, grammar.EndOfInput, rparen), follow.Of(grammar.NonTerminal("F")))
}

func TestComputeFollowMissingStartSymbol(t *testing.T) {
	g := grammar.New(grammar.NonTerminal("Missing"))
	g.AddProduction(grammar.NonTerminal("S"), grammar.Terminal("a"))

	first := ComputeFirst(g)
	_, err := ComputeFollow(g, first)
	require.Error(t, err)

	var missing *MissingStartSymbolError
	require.ErrorAs(t, err, &missing)
}
