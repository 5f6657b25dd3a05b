package parser

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ErrUnterminatedQuote is reported when input ends inside a quoted region.
var ErrUnterminatedQuote = errors.New("unterminated quoted region")

// QuoteError reports an unterminated quoted region with the position of the
// opening quote and of the last character scanned.
type QuoteError struct {
	// Record is the 1-based index of the record being split into fields, or 0
	// when the error came from scanning the whole text.
	Record int
	Open   ast.Position
	End    ast.Position
}

// Error returns a formatted error message with position information.
func (e *QuoteError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("record %d: %v: quote opened at %s, input ended at %s",
			e.Record, ErrUnterminatedQuote, e.Open, e.End)
	}
	return fmt.Sprintf("%v: quote opened at %s, input ended at %s", ErrUnterminatedQuote, e.Open, e.End)
}

// Unwrap returns ErrUnterminatedQuote.
func (e *QuoteError) Unwrap() error {
	return ErrUnterminatedQuote
}
