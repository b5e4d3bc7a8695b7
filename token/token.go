// Package token implements the toolkit's longest-match / highest-priority
// scanner: an ordered collection of per-rule DFAs that is walked over the
// input text one cursor position at a time.
package token

import "fmt"

// Token is an immutable value record produced by the scanner.
type Token struct {
	Type     string
	Value    string
	Position int
}

// UnrecognizedCharacterError reports that tokenization reached a position
// where no rule produced a candidate match.
type UnrecognizedCharacterError struct {
	Position int
	Char     rune
}

func (e *UnrecognizedCharacterError) Error() string {
	return fmt.Sprintf("unrecognized character %q at position %d", e.Char, e.Position)
}
