package tagpath

import (
	"errors"
	"fmt"
)

// ErrSyntax matches every *SyntaxError via errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports input that does not follow the grammar: a missing
// literal, an empty identifier, an unterminated value, or a mismatched
// closing tag in strict mode. Parsing stops at the first one.
type SyntaxError struct {
	Offset    int
	Expected  string
	Got       string
	Remaining string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error near offset %d: expected %s, got %s", e.Offset, e.Expected, e.Got)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Diagnostic is the two line report printed before a batch run aborts.
func (e *SyntaxError) Diagnostic() string {
	return fmt.Sprintf("!! Syntax Error near offset %d !!\n%s", e.Offset, e.Remaining)
}
