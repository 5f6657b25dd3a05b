// Package tokenizer provides character classification and line-ending
// normalization for CSV text using Shape's tokenizer framework.
package tokenizer

import "fmt"

// Token type constants produced by the line-ending tokenizer.
const (
	TokenNewline = "Newline" // \r\n, lone \r or lone \n
	TokenText    = "Text"    // run of characters that are neither CR nor LF
)

// Structural characters recognized by the splitters.
const (
	Quote          = '"'
	CarriageReturn = '\r'
	LineFeed       = '\n'

	// CRLF is the canonical line ending produced by NormalizeLineEndings.
	CRLF = "\r\n"
)

// Class is the character class a splitter transition is selected by.
type Class int

const (
	// ClassOther is any character without structural meaning.
	ClassOther Class = iota
	// ClassQuote is the quote character.
	ClassQuote
	// ClassDelimiter is the configured field delimiter.
	ClassDelimiter
	// ClassCR is a carriage return.
	ClassCR
	// ClassLF is a line feed.
	ClassLF
)

// String returns the string representation of Class.
func (c Class) String() string {
	switch c {
	case ClassOther:
		return "other"
	case ClassQuote:
		return "quote"
	case ClassDelimiter:
		return "delimiter"
	case ClassCR:
		return "cr"
	case ClassLF:
		return "lf"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Classify returns the class of r when delim is the field delimiter.
func Classify(r rune, delim rune) Class {
	switch r {
	case Quote:
		return ClassQuote
	case CarriageReturn:
		return ClassCR
	case LineFeed:
		return ClassLF
	case delim:
		return ClassDelimiter
	default:
		return ClassOther
	}
}
