package token

import (
	"sort"

	"github.com/shadowCow/lexcore/automata"
)

// rule is one (dfa, type, priority) triple, plus its registration order —
// the stable tie-breaker among equal priorities.
type rule struct {
	dfa      *automata.DFA
	tokType  string
	priority int
	order    int
}

// Tokenizer holds an ordered collection of rules and scans input text under
// a longest-match / highest-priority discipline. A Tokenizer is safe to
// reuse across Tokenize calls: it retains only the immutable rule list.
type Tokenizer struct {
	rules []rule
	next  int
}

// New creates an empty Tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// AddRule accumulates a rule into the tokenizer and resorts the rule list by
// descending priority, preserving registration order among ties.
func (t *Tokenizer) AddRule(dfa *automata.DFA, tokenType string, priority int) {
	t.rules = append(t.rules, rule{dfa: dfa, tokType: tokenType, priority: priority, order: t.next})
	t.next++
	sort.SliceStable(t.rules, func(i, j int) bool {
		return t.rules[i].priority > t.rules[j].priority
	})
}

// candidate is a successful match attempt for one rule at one cursor
// position.
type candidate struct {
	tokType  string
	length   int
	priority int
	order    int
}

// Tokenize scans input left to right under longest-match / highest-priority
// discipline, emitting a Token per match. It fails on the first position
// that produces no candidate.
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	runes := []rune(input)
	var tokens []Token
	i := 0
	for i < len(runes) {
		best, ok := t.bestCandidateAt(runes, i)
		if !ok {
			return tokens, &UnrecognizedCharacterError{Position: i, Char: runes[i]}
		}
		tokens = append(tokens, Token{
			Type:     best.tokType,
			Value:    string(runes[i : i+best.length]),
			Position: i,
		})
		i += best.length
	}
	return tokens, nil
}

// bestCandidateAt runs every rule's DFA from position i and picks the
// candidate with (a) the largest match length, (b) on ties, the highest
// priority, (c) on further ties, the earliest registration order.
func (t *Tokenizer) bestCandidateAt(input []rune, i int) (candidate, bool) {
	var best candidate
	found := false

	for _, r := range t.rules {
		length, ok := tryMatch(r.dfa, input, i)
		if !ok {
			continue
		}
		c := candidate{tokType: r.tokType, length: length, priority: r.priority, order: r.order}
		if !found || better(c, best) {
			best = c
			found = true
		}
	}

	return best, found
}

// better reports whether a should replace b as the current best candidate.
func better(a, b candidate) bool {
	if a.length != b.length {
		return a.length > b.length
	}
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.order < b.order
}

// tryMatch walks dfa from position i over input, recording the length of
// the longest prefix that lands on a final state. Walking halts as soon as
// the current state has no transition on the current character — there is
// no explicit dead-state value to check against.
func tryMatch(dfa *automata.DFA, input []rune, i int) (int, bool) {
	state := dfa.Start
	bestLen := -1

	k := 0
	for i+k < len(input) {
		next, ok := dfa.Step(state, input[i+k])
		if !ok {
			break
		}
		state = next
		k++
		if dfa.States[state].Final {
			bestLen = k
		}
	}

	if bestLen < 0 {
		return 0, false
	}
	return bestLen, true
}
