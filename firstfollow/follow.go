package firstfollow

import "github.com/shadowCow/lexcore/grammar"

// MissingStartSymbolError is returned when a grammar's declared start
// symbol is not among its non-terminals. FOLLOW(start) seeds with
// end-of-input, so a start symbol that was never declared as a
// non-terminal is treated as caller error rather than silently ignored.
type MissingStartSymbolError struct {
	Start grammar.Symbol
}

func (e *MissingStartSymbolError) Error() string {
	return "firstfollow: start symbol " + e.Start.Name + " is not a non-terminal of the grammar"
}

// Follow holds the FOLLOW set for every non-terminal of a grammar.
type Follow struct {
	sets map[grammar.Symbol]SymbolSet
}

// Of returns the FOLLOW set for a non-terminal.
func (fo *Follow) Of(sym grammar.Symbol) SymbolSet {
	if set, ok := fo.sets[sym]; ok {
		return set
	}
	return SymbolSet{}
}

// ComputeFollow computes FOLLOW sets for every non-terminal in g, given its
// precomputed FIRST sets.
func ComputeFollow(g *grammar.Grammar, first *First) (*Follow, error) {
	if !g.NonTerminals[g.Start] {
		return nil, &MissingStartSymbolError{Start: g.Start}
	}

	fo := &Follow{sets: make(map[grammar.Symbol]SymbolSet)}
	for nt := range g.NonTerminals {
		fo.sets[nt] = make(SymbolSet)
	}
	fo.sets[g.Start].add(grammar.EndOfInput)

	changed := true
	for changed {
		changed = false
		for _, prod := range g.Productions {
			if applyProduction(fo, first, prod) {
				changed = true
			}
		}
	}

	return fo, nil
}

// applyProduction folds one production B -> X1...Xn into the FOLLOW sets,
// returning whether anything changed.
func applyProduction(fo *Follow, first *First, prod grammar.Production) bool {
	changed := false
	for i, sym := range prod.Right {
		if sym.Kind != grammar.NonTerminalKind {
			continue
		}
		following := prod.Right[i+1:]
		firstOfFollowing := first.OfSequence(following)

		if fo.sets[sym].addAll(firstOfFollowing.withoutEpsilon()) {
			changed = true
		}
		if firstOfFollowing[grammar.Epsilon] {
			if fo.sets[sym].addAll(fo.Of(prod.Left)) {
				changed = true
			}
		}
	}
	return changed
}
