package automata

import (
	"sort"
	"strconv"
	"strings"
)

// Subset converts an NFA into a DFA via subset construction, over the given
// input alphabet. Every DFA state's name set is canonicalized by sorted id
// vector for dedup, never by reference equality.
func Subset(nfa *NFA, alphabet []rune) *DFA {
	dfa := &DFA{}
	byName := make(map[string]int) // canonical name set -> DFA state id

	start := epsilonClosure(nfa, []int{nfa.Start})
	startID := internState(dfa, byName, nfa, start)
	dfa.Start = startID

	worklist := []int{startID}
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		state := dfa.States[id]

		for _, c := range alphabet {
			m := move(nfa, state.nameSet, c)
			if len(m) == 0 {
				continue
			}
			t := epsilonClosure(nfa, m)
			name := canonicalName(t)
			targetID, exists := byName[name]
			if !exists {
				targetID = internState(dfa, byName, nfa, t)
				worklist = append(worklist, targetID)
			}
			state.Transitions[c] = targetID
		}
	}

	return dfa
}

// internState creates (or, via byName, recognizes) the DFA state for a given
// NFA name set and registers it under its canonical name.
func internState(dfa *DFA, byName map[string]int, nfa *NFA, nameSet []int) int {
	name := canonicalName(nameSet)
	if id, ok := byName[name]; ok {
		return id
	}
	final := false
	for _, id := range nameSet {
		if nfa.States[id].Final {
			final = true
			break
		}
	}
	s := dfa.newState(final, nameSet)
	byName[name] = s.Id
	return s.Id
}

// epsilonClosure computes all NFA states reachable from seed via zero or
// more epsilon transitions, including seed itself, as a sorted id slice.
func epsilonClosure(nfa *NFA, seed []int) []int {
	seen := make(map[int]bool, len(seed))
	var stack []int
	for _, id := range seed {
		if !seen[id] {
			seen[id] = true
			stack = append(stack, id)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range nfa.States[cur].Transitions {
			if t.IsEpsilon && !seen[t.Target] {
				seen[t.Target] = true
				stack = append(stack, t.Target)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// move returns every NFA state directly reachable from a set S via a single
// transition labelled c (ε transitions never qualify).
func move(nfa *NFA, set []int, c rune) []int {
	seen := make(map[int]bool)
	var out []int
	for _, id := range set {
		for _, t := range nfa.States[id].Transitions {
			if !t.IsEpsilon && t.Label == c && !seen[t.Target] {
				seen[t.Target] = true
				out = append(out, t.Target)
			}
		}
	}
	return out
}

// canonicalName builds a stable hash key for a (sorted) NFA state id set.
func canonicalName(ids []int) string {
	if len(ids) == 0 {
		return "∅"
	}
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
