package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	lexcore "github.com/shadowCow/lexcore"
	"github.com/shadowCow/lexcore/token"
)

// ruleDecl is one YAML rule declaration: a token type, its regex pattern,
// and its match priority. This is demonstration glue for the command-line
// driver — the core library (Compile, token.Tokenizer) never imports this
// file.
type ruleDecl struct {
	Type     string `yaml:"type"`
	Pattern  string `yaml:"pattern"`
	Priority int    `yaml:"priority"`
}

// ruleSetFile is the top-level shape of a rules YAML document.
type ruleSetFile struct {
	Rules []ruleDecl `yaml:"rules"`
}

// loadRuleSetFile reads and parses a rules YAML document from path.
func loadRuleSetFile(path string) (*ruleSetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule set %q: %w", path, err)
	}
	var file ruleSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rule set %q: %w", path, err)
	}
	return &file, nil
}

// alphabetOf derives Σ by scanning every rule pattern for literal operand
// characters; every DFA construction needs an explicit alphabet, and
// operator characters never belong in it.
func alphabetOf(rules []ruleDecl) []rune {
	const operators = "|*+?()·"
	seen := make(map[rune]bool)
	for _, r := range rules {
		for _, c := range r.Pattern {
			if !seen[c] && !containsRune(operators, c) {
				seen[c] = true
			}
		}
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// buildTokenizer compiles every rule declaration with the lexcore facade
// and registers it with a fresh Tokenizer, wrapping any compile failure
// with the token type it was trying to define.
func buildTokenizer(file *ruleSetFile) (*token.Tokenizer, error) {
	alphabet := alphabetOf(file.Rules)
	tz := token.New()
	for _, r := range file.Rules {
		dfa, err := lexcore.Compile(r.Pattern, alphabet)
		if err != nil {
			return nil, fmt.Errorf("compiling rule %q: %w", r.Type, err)
		}
		tz.AddRule(dfa, r.Type, r.Priority)
	}
	return tz, nil
}
