package parser

import "fmt"

// ParseError indicates a grammar violation.
type ParseError struct {
	// Expected describes the token the parser was looking for.
	Expected string
	// Pos is the 0-based offset of the token that did not match.
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at position %d", e.Expected, e.Pos)
}
