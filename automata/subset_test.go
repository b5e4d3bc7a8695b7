package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDFA(dfa *DFA, input string) bool {
	state := dfa.Start
	for _, r := range input {
		next, ok := dfa.Step(state, r)
		if !ok {
			return false
		}
		state = next
	}
	return dfa.States[state].Final
}

func TestSubsetSoundnessAgainstNFA(t *testing.T) {
	// subset construction soundness: for every input string, the DFA
	// accepts iff some run of the NFA accepts.
	nfa, err := Build("ab|*") // (a|b)*
	require.NoError(t, err)
	dfa := Subset(nfa, []rune{'a', 'b'})

	inputs := []string{"", "a", "b", "ab", "ba", "aabb", "abc"}
	for _, in := range inputs {
		assert.Equal(t, acceptsNFA(t, nfa, in), runDFA(dfa, in), "input %q", in)
	}
}

func TestSubsetNoSharedNameSets(t *testing.T) {
	nfa, err := Build("ab|*")
	require.NoError(t, err)
	dfa := Subset(nfa, []rune{'a', 'b'})

	seen := make(map[string]bool)
	for _, s := range dfa.States {
		name := canonicalName(s.nameSet)
		assert.False(t, seen[name], "duplicate name set %s", name)
		seen[name] = true
	}
}

func TestSubsetDeadTransitionIsAbsent(t *testing.T) {
	nfa, err := Build("a")
	require.NoError(t, err)
	dfa := Subset(nfa, []rune{'a', 'b'})

	_, ok := dfa.Step(dfa.Start, 'b')
	assert.False(t, ok)
}
