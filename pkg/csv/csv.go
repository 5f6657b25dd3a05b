// Package csv splits CSV text into records and fields.
//
// Parsing is a two-stage scan. Line endings are first normalized to CRLF,
// records are then cut at CRLF outside quoted regions, and each record is cut
// into fields at the delimiter outside quoted regions. Quoted fields may hold
// delimiters, line breaks, and doubled quotes ("") standing for one quote.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call owns its scan state; nothing is shared between calls.
//
//	// Safe: Concurrent parsing
//	go func() { csv.ParseFromText(input1, csv.Comma) }()
//	go func() { csv.ParseFromText(input2, csv.Tab) }()
//
// # Parsing APIs
//
//   - ParseFieldsFromText(string, Delimiter) - fields of a single record
//   - ParseFromText(string, Delimiter) - all records of a text
//   - ParseFromFile(path, Delimiter, encoding.Encoding) - all records of a file
//   - ParseFromReader(io.Reader, Delimiter, encoding.Encoding) - all records of a reader
//
// # Errors
//
// A missing file yields an error matching ErrNotFound. Text that ends inside a
// quoted region yields a *ParseError matching ErrMalformedInput. No partial
// records are returned with an error.
//
//	records, err := csv.ParseFromFile("data.csv", csv.Comma, nil)
//	switch csv.KindOf(err) {
//	case csv.KindNotFound:
//	    // bad path
//	case csv.KindMalformedInput:
//	    // bad CSV
//	}
package csv

import (
	"io"
	"os"

	"golang.org/x/text/encoding"

	"github.com/shapestone/csvsplit/internal/parser"
)

// ParseFieldsFromText splits text into the fields of a single record.
//
// Line endings are normalized first; line breaks outside quotes are dropped.
// Invalid UTF-8 byte sequences become U+FFFD.
// A trailing delimiter yields a trailing empty field. Empty text yields no fields.
//
// Example:
//
//	fields, err := csv.ParseFieldsFromText("a,b,", csv.Comma)
//	// fields is []string{"a", "b", ""}
func ParseFieldsFromText(text string, delim Delimiter) ([]string, error) {
	if err := delim.Validate(); err != nil {
		return nil, err
	}

	fields, err := newParser(text, delim).Fields()
	if err != nil {
		return nil, fromParserError(err)
	}
	return fields, nil
}

// ParseFromText splits text into records, and each record into fields.
//
// Lone CR, lone LF and CRLF all end a record when outside quotes. Input need
// not end with a line break. Empty text yields no records. Invalid UTF-8 byte
// sequences become U+FFFD.
//
// Example:
//
//	records, err := csv.ParseFromText("name,age\r\nAlice,30", csv.Comma)
//	// records[0] is []string{"name", "age"}
//	// records[1] is []string{"Alice", "30"}
func ParseFromText(text string, delim Delimiter) ([][]string, error) {
	if err := delim.Validate(); err != nil {
		return nil, err
	}

	records, err := newParser(text, delim).Records()
	if err != nil {
		return nil, fromParserError(err)
	}
	return records, nil
}

// ParseFromFile reads the file at path, decodes it with enc, and parses the
// text with ParseFromText.
//
// A nil enc means UTF-8. A leading byte order mark selects its own Unicode
// encoding and is removed.
//
// If path does not name an existing file, the returned *FileError matches
// ErrNotFound and nothing is read.
func ParseFromFile(path string, delim Delimiter, enc encoding.Encoding) ([][]string, error) {
	if err := delim.Validate(); err != nil {
		return nil, err
	}

	file, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := ParseFromReader(file, delim, enc)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return records, nil
}

// OpenFile opens path for reading. Any path that cannot be stat'ed as a
// regular file, including one below a non-directory, yields a *FileError
// matching ErrNotFound.
func OpenFile(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &FileError{Path: path, Err: ErrNotFound}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return file, nil
}

// ParseFromReader reads all of r, decodes it with enc, and parses the text
// with ParseFromText. A nil enc means UTF-8.
//
// Example parsing a Shift_JIS stream:
//
//	enc, _ := csv.LookupEncoding("shift_jis")
//	records, err := csv.ParseFromReader(resp.Body, csv.Comma, enc)
func ParseFromReader(r io.Reader, delim Delimiter, enc encoding.Encoding) ([][]string, error) {
	if err := delim.Validate(); err != nil {
		return nil, err
	}

	text, err := decodeAll(r, enc)
	if err != nil {
		return nil, err
	}
	return ParseFromText(text, delim)
}

// Validate checks if text is well-formed CSV for the given delimiter.
//
// Returns nil if every quoted region is closed.
//
//	if err := csv.Validate(input, csv.Comma); err != nil {
//	    fmt.Println("Invalid CSV:", err)
//	}
func Validate(text string, delim Delimiter) error {
	_, err := ParseFromText(text, delim)
	return err
}

// Format returns the format identifier for this parser.
func Format() string {
	return "CSV"
}

func newParser(text string, delim Delimiter) *parser.Parser {
	return parser.NewParserWithOptions(text, parser.Options{Comma: delim.Rune()})
}
