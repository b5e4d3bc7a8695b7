package automata

// DFAState is a node in a DFA, addressed by its Id, which is assigned in
// creation order and never reused. nameSet is the backing set of NFA state
// ids this DFA state represents; it is load-bearing only during subset
// construction (as the dedup key) and is preserved afterward purely as a
// debugging aid, never as a semantic identifier callers should rely on.
type DFAState struct {
	Id          int
	Final       bool
	Transitions map[rune]int
	nameSet     []int
}

// DFA is a deterministic finite automaton: a start state plus the
// authoritative collection of every state reachable from it. Transitions
// may only reference states present in States.
type DFA struct {
	Start  int
	States []*DFAState
}

// Step returns the state reached from `from` on input r, and whether such a
// transition exists. A missing transition denotes rejection, not an
// implicit dead state.
func (d *DFA) Step(from int, r rune) (int, bool) {
	to, ok := d.States[from].Transitions[r]
	return to, ok
}

func (d *DFA) newState(final bool, nameSet []int) *DFAState {
	s := &DFAState{
		Id:          len(d.States),
		Final:       final,
		Transitions: make(map[rune]int),
		nameSet:     nameSet,
	}
	d.States = append(d.States, s)
	return s
}
