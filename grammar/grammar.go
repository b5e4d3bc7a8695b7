// Package grammar defines the context-free grammar data model that the
// firstfollow package's FIRST/FOLLOW analyzer operates over.
package grammar

// SymbolKind discriminates a Symbol as a terminal or non-terminal.
type SymbolKind int

const (
	TerminalKind SymbolKind = iota
	NonTerminalKind
)

// Symbol is a named grammar atom. Two spellings are distinguished: Epsilon,
// a terminal named "ε" denoting the empty production, and EndOfInput, the
// reserved end-of-input marker "$". Epsilon-as-grammar-symbol and
// epsilon-as-NFA-transition (automata.NFATransition.IsEpsilon) are unrelated
// representations; nothing couples the two packages' notions of epsilon.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Epsilon is the distinguished empty-production terminal.
var Epsilon = Symbol{Name: "ε", Kind: TerminalKind}

// EndOfInput is the reserved end-of-input marker.
var EndOfInput = Symbol{Name: "$", Kind: TerminalKind}

// Terminal builds a terminal symbol.
func Terminal(name string) Symbol { return Symbol{Name: name, Kind: TerminalKind} }

// NonTerminal builds a non-terminal symbol.
func NonTerminal(name string) Symbol { return Symbol{Name: name, Kind: NonTerminalKind} }

// Production is an ordered pair: a non-terminal left-hand side and the
// ordered sequence of symbols on its right-hand side. The right sequence may
// be the singleton {Epsilon}.
type Production struct {
	Left  Symbol
	Right []Symbol
}

// Grammar is (terminals, non-terminals, productions, start symbol).
// Terminals and non-terminals partition the symbol universe.
type Grammar struct {
	Terminals    map[Symbol]bool
	NonTerminals map[Symbol]bool
	Productions  []Production
	Start        Symbol
}

// New builds an empty grammar with the given start symbol.
func New(start Symbol) *Grammar {
	return &Grammar{
		Terminals:    make(map[Symbol]bool),
		NonTerminals: make(map[Symbol]bool),
		Start:        start,
	}
}

// AddProduction registers a production, folding its symbols into the
// grammar's terminal/non-terminal partitions.
func (g *Grammar) AddProduction(left Symbol, right ...Symbol) {
	g.NonTerminals[left] = true
	for _, sym := range right {
		if sym.Kind == TerminalKind {
			g.Terminals[sym] = true
		} else {
			g.NonTerminals[sym] = true
		}
	}
	g.Productions = append(g.Productions, Production{Left: left, Right: right})
}

// ProductionsFor returns every production whose left-hand side is sym, in
// registration order.
func (g *Grammar) ProductionsFor(sym Symbol) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Left == sym {
			out = append(out, p)
		}
	}
	return out
}
