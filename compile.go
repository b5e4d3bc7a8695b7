// Package lexcore is the regex-to-DFA compile facade: the single entry
// point a rule-registration collaborator calls per rule, chaining the regex
// rewriter, the Thompson NFA builder, subset construction, and the DFA
// minimizer into one minimized DFA per rule.
package lexcore

import (
	"fmt"

	"github.com/shadowCow/lexcore/automata"
	"github.com/shadowCow/lexcore/regex"
)

// Compile rewrites pattern to postfix, runs Thompson construction, subset
// construction over alphabet, and minimization, returning one minimized DFA
// ready to be registered with a token.Tokenizer.
func Compile(pattern string, alphabet []rune) (*automata.DFA, error) {
	postfix, err := regex.ToPostfix(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", pattern, err)
	}

	nfa, err := automata.Build(postfix)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", pattern, err)
	}

	dfa := automata.Subset(nfa, alphabet)
	return automata.Minimize(dfa, alphabet), nil
}
