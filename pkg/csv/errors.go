// Package csv provides error types for CSV parsing.
package csv

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/shapestone/csvsplit/internal/parser"
)

// Parsing errors. Both kinds are caller-correctable: fix the path or fix the text.
var (
	// ErrNotFound indicates the file to parse does not exist.
	// It matches fs.ErrNotExist as well.
	ErrNotFound = fmt.Errorf("file not found: %w", fs.ErrNotExist)

	// ErrMalformedInput indicates text ended while a quoted region was open.
	ErrMalformedInput = errors.New("malformed input: unterminated quoted region")
)

// ErrorKind classifies errors returned by this package.
type ErrorKind int

const (
	// KindUnknown is any error that is not one of the parse kinds,
	// including I/O and option errors.
	KindUnknown ErrorKind = iota
	// KindNotFound is a missing file.
	KindNotFound
	// KindMalformedInput is an unterminated quoted region.
	KindMalformedInput
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMalformedInput:
		return "malformed_input"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err. A nil error is KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	default:
		return KindUnknown
	}
}

// ParseError represents a parsing error with position information.
// Lines and columns are 1-indexed and refer to the text after line endings
// were normalized to CRLF.
type ParseError struct {
	// Record is the 1-based record whose fields were being split, or 0 when
	// the error was found while splitting records.
	Record int
	// StartLine is the line of the quote that was never closed.
	StartLine int
	// Line is the line where input ended.
	Line int
	// Column is the column of the last character scanned.
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	prefix := ""
	if e.Record > 0 {
		prefix = fmt.Sprintf("record %d: ", e.Record)
	}
	if e.StartLine == e.Line {
		return fmt.Sprintf("%sparse error on line %d, column %d: %v", prefix, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%sparse error on line %d (started line %d), column %d: %v",
		prefix, e.Line, e.StartLine, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileError records the path of a file that could not be parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}

// fromParserError converts internal splitter errors to *ParseError.
func fromParserError(err error) error {
	var qe *parser.QuoteError
	if errors.As(err, &qe) {
		return &ParseError{
			Record:    qe.Record,
			StartLine: qe.Open.Line,
			Line:      qe.End.Line,
			Column:    qe.End.Column,
			Err:       ErrMalformedInput,
		}
	}
	return err
}
