package automata

import "fmt"

// fragment is an NFA-under-construction: a start state and an end state,
// both already present in the owning NFA's arena.
type fragment struct {
	start int
	end   int
}

// UnknownOperatorError signals that the NFA builder encountered a postfix
// token it does not recognize as a literal or one of ·, |, *, +, ?. Since the
// postfix form is produced by the regex rewriter, this can only happen if
// the rewriter and builder have drifted apart — a defensive check, distinct
// from a malformed-regex error.
type UnknownOperatorError struct {
	Operator rune
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("nfa builder: unknown operator %q in postfix form", e.Operator)
}

// MalformedPostfixError reports a postfix expression that does not reduce to
// exactly one NFA fragment — either the operand stack ran dry mid-operator
// or more than one fragment remained once the input was consumed.
type MalformedPostfixError struct {
	Postfix string
	Reason  string
}

func (e *MalformedPostfixError) Error() string {
	return fmt.Sprintf("nfa builder: malformed postfix %q: %s", e.Postfix, e.Reason)
}

// isBuilderOperator reports whether r is one of the internal operators the
// builder dispatches on; everything else is treated as a literal operand.
func isBuilderOperator(r rune) bool {
	switch r {
	case '·', '|', '*', '+', '?':
		return true
	default:
		return false
	}
}

// Build consumes a postfix regex (as produced by regex.ToPostfix) and runs
// Thompson construction, producing a single NFA. It is the sole entry point
// for component B.
func Build(postfix string) (*NFA, error) {
	nfa := &NFA{}
	var stack []fragment

	pop := func() (fragment, bool) {
		if len(stack) == 0 {
			return fragment{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	for _, r := range postfix {
		switch r {
		case '·':
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, &MalformedPostfixError{Postfix: postfix, Reason: "'·' needs two operands"}
			}
			nfa.States[a.end].Final = false
			nfa.addEpsilon(a.end, b.start)
			stack = append(stack, fragment{start: a.start, end: b.end})

		case '|':
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, &MalformedPostfixError{Postfix: postfix, Reason: "'|' needs two operands"}
			}
			s := nfa.newState()
			e := nfa.newState()
			nfa.States[e].Final = true
			nfa.addEpsilon(s, a.start)
			nfa.addEpsilon(s, b.start)
			nfa.States[a.end].Final = false
			nfa.States[b.end].Final = false
			nfa.addEpsilon(a.end, e)
			nfa.addEpsilon(b.end, e)
			stack = append(stack, fragment{start: s, end: e})

		case '*':
			a, ok := pop()
			if !ok {
				return nil, &MalformedPostfixError{Postfix: postfix, Reason: "'*' needs one operand"}
			}
			s := nfa.newState()
			e := nfa.newState()
			nfa.States[e].Final = true
			nfa.addEpsilon(s, a.start)
			nfa.addEpsilon(s, e)
			nfa.addEpsilon(a.end, a.start)
			nfa.States[a.end].Final = false
			nfa.addEpsilon(a.end, e)
			stack = append(stack, fragment{start: s, end: e})

		case '+':
			a, ok := pop()
			if !ok {
				return nil, &MalformedPostfixError{Postfix: postfix, Reason: "'+' needs one operand"}
			}
			s := nfa.newState()
			e := nfa.newState()
			nfa.States[e].Final = true
			nfa.addEpsilon(s, a.start)
			nfa.addEpsilon(a.end, a.start)
			nfa.States[a.end].Final = false
			nfa.addEpsilon(a.end, e)
			stack = append(stack, fragment{start: s, end: e})

		case '?':
			a, ok := pop()
			if !ok {
				return nil, &MalformedPostfixError{Postfix: postfix, Reason: "'?' needs one operand"}
			}
			s := nfa.newState()
			e := nfa.newState()
			nfa.States[e].Final = true
			nfa.addEpsilon(s, a.start)
			nfa.addEpsilon(s, e)
			nfa.States[a.end].Final = false
			nfa.addEpsilon(a.end, e)
			stack = append(stack, fragment{start: s, end: e})

		default:
			if isBuilderOperator(r) {
				return nil, &UnknownOperatorError{Operator: r}
			}
			s := nfa.newState()
			e := nfa.newState()
			nfa.States[e].Final = true
			nfa.addTransition(s, r, e)
			stack = append(stack, fragment{start: s, end: e})
		}
	}

	if len(stack) != 1 {
		return nil, &MalformedPostfixError{
			Postfix: postfix,
			Reason:  fmt.Sprintf("expected exactly one NFA on the stack, found %d", len(stack)),
		}
	}

	final := stack[0]
	nfa.Start = final.start
	nfa.End = final.end
	return nfa, nil
}
