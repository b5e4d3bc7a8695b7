// Package firstfollow computes FIRST and FOLLOW sets for a context-free
// grammar by iterating a monotone fixed-point computation over a finite
// symbolic domain — the same "iterate to convergence" pattern the automata
// package's subset construction and minimizer use, just over grammar
// symbols instead of automaton states.
package firstfollow

import "github.com/shadowCow/lexcore/grammar"

// SymbolSet is a FIRST or FOLLOW set: a set of terminals (including,
// for FIRST, possibly grammar.Epsilon; and for FOLLOW, possibly
// grammar.EndOfInput).
type SymbolSet map[grammar.Symbol]bool

func (s SymbolSet) add(sym grammar.Symbol) bool {
	if s[sym] {
		return false
	}
	s[sym] = true
	return true
}

func (s SymbolSet) addAll(other SymbolSet) bool {
	changed := false
	for sym := range other {
		if s.add(sym) {
			changed = true
		}
	}
	return changed
}

// withoutEpsilon returns a copy of s with grammar.Epsilon removed.
func (s SymbolSet) withoutEpsilon() SymbolSet {
	out := make(SymbolSet, len(s))
	for sym := range s {
		if sym != grammar.Epsilon {
			out[sym] = true
		}
	}
	return out
}

// First holds the FIRST set for every symbol of a grammar.
type First struct {
	sets map[grammar.Symbol]SymbolSet
}

// Of returns the FIRST set for any symbol, terminal or non-terminal.
func (f *First) Of(sym grammar.Symbol) SymbolSet {
	if set, ok := f.sets[sym]; ok {
		return set
	}
	return SymbolSet{}
}

// IsNullable reports whether grammar.Epsilon ∈ FIRST(sym).
func (f *First) IsNullable(sym grammar.Symbol) bool {
	return f.Of(sym)[grammar.Epsilon]
}

// OfSequence computes FIRST of a symbol sequence X1...Xn: FIRST(X1), plus
// FIRST(X2) if X1 is nullable, and so on, stopping at the first
// non-nullable element; if every element is nullable (or the sequence is
// empty), ε is included.
func (f *First) OfSequence(seq []grammar.Symbol) SymbolSet {
	result := make(SymbolSet)
	allNullable := true
	for _, sym := range seq {
		first := f.Of(sym)
		result.addAll(first.withoutEpsilon())
		if !first[grammar.Epsilon] {
			allNullable = false
			break
		}
	}
	if allNullable {
		result.add(grammar.Epsilon)
	}
	return result
}

// ComputeFirst computes FIRST sets for every terminal and non-terminal in g.
func ComputeFirst(g *grammar.Grammar) *First {
	f := &First{sets: make(map[grammar.Symbol]SymbolSet)}

	for t := range g.Terminals {
		f.sets[t] = SymbolSet{t: true}
	}
	f.sets[grammar.Epsilon] = SymbolSet{grammar.Epsilon: true}
	for nt := range g.NonTerminals {
		if _, ok := f.sets[nt]; !ok {
			f.sets[nt] = make(SymbolSet)
		}
	}

	changed := true
	for changed {
		changed = false
		for _, prod := range g.Productions {
			if f.sets[prod.Left] == nil {
				f.sets[prod.Left] = make(SymbolSet)
			}

			if isEpsilonProduction(prod) {
				if f.sets[prod.Left].add(grammar.Epsilon) {
					changed = true
				}
				continue
			}

			rhsFirst := f.OfSequence(prod.Right)
			if f.sets[prod.Left].addAll(rhsFirst) {
				changed = true
			}
		}
	}

	return f
}

// isEpsilonProduction reports whether prod's right-hand side is the
// singleton ε production.
func isEpsilonProduction(prod grammar.Production) bool {
	return len(prod.Right) == 1 && prod.Right[0] == grammar.Epsilon
}
