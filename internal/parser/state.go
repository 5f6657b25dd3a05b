package parser

import (
	"fmt"
	"strings"

	"github.com/shapestone/csvsplit/internal/tokenizer"
	"github.com/shapestone/shape-core/pkg/ast"
)

// QuoteState is the quoting mode of a scan. It is local to one scan.
type QuoteState int

const (
	// Normal means structural characters are interpreted.
	Normal QuoteState = iota
	// Quoted means delimiters and line breaks are content.
	Quoted
)

// String returns the string representation of QuoteState.
func (s QuoteState) String() string {
	switch s {
	case Normal:
		return "normal"
	case Quoted:
		return "quoted"
	default:
		return fmt.Sprintf("QuoteState(%d)", int(s))
	}
}

// Emit says what a transition appends to the unit being built.
type Emit int

const (
	// EmitNothing drops the consumed characters (structural).
	EmitNothing Emit = iota
	// EmitChar appends the current character.
	EmitChar
	// EmitChars appends the current character and the lookahead character.
	EmitChars
	// EmitQuote appends one literal quote for an escaped pair.
	EmitQuote
)

// Step is the result of one transition.
type Step struct {
	// Mode is the quote state after the transition.
	Mode QuoteState
	// Consumed is the number of characters consumed: 1, or 2 for an escaped quote pair.
	Consumed int
	// Emit is what gets appended to the current unit.
	Emit Emit
	// Boundary is true when the current unit (record or field) ends here.
	Boundary bool
	// Opened is true when this transition opened a quoted region.
	Opened bool
}

// Transition maps the current mode and the classes of the current and next
// characters to a Step. hasNext is false at the last character.
type Transition func(mode QuoteState, c, next tokenizer.Class, hasNext bool) Step

// scanState is the explicit state threaded through a scan.
type scanState struct {
	mode     QuoteState
	buf      strings.Builder
	hasQuote bool
	openedAt ast.Position
}

// scan reads text one character at a time, applies transition, and calls
// flush whenever a unit ends: on a boundary, or at end of input in Normal mode.
// atEnd tells flush whether the unit ended at the last character.
func scan(text string, delim rune, transition Transition, flush func(st *scanState, step Step, atEnd bool)) error {
	stream := newStream(text)
	st := &scanState{}

	for !stream.IsEos() {
		at := streamPosition(stream)
		r, _ := stream.NextChar()
		next, hasNext := stream.PeekChar()

		nextClass := tokenizer.ClassOther
		if hasNext {
			nextClass = tokenizer.Classify(next, delim)
		}
		step := transition(st.mode, tokenizer.Classify(r, delim), nextClass, hasNext)

		if step.Opened {
			st.hasQuote = true
			st.openedAt = at
		}
		switch step.Emit {
		case EmitChar:
			st.buf.WriteRune(r)
		case EmitChars:
			st.buf.WriteRune(r)
			st.buf.WriteRune(next)
		case EmitQuote:
			st.buf.WriteRune(tokenizer.Quote)
		}
		if step.Consumed == 2 {
			at = streamPosition(stream)
			stream.NextChar()
		}
		st.mode = step.Mode

		atEnd := stream.IsEos()
		if st.mode == Quoted && atEnd {
			return &QuoteError{Open: st.openedAt, End: at}
		}
		if step.Boundary || (st.mode == Normal && atEnd) {
			flush(st, step, atEnd)
			st.buf.Reset()
		}
	}

	return nil
}
