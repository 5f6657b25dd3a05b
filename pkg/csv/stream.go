package csv

import (
	"io"

	"golang.org/x/text/encoding"
)

// Scanner hands out the records of a reader one at a time.
//
// The reader is consumed and split in full on the first Scan; partial input
// is never split.
//
//	s := csv.NewScanner(f).SetDelimiter(csv.Semicolon).SetHasHeaders(true)
//	for s.Scan() {
//	    name, _ := s.Record().GetByName("name")
//	    fmt.Println(name)
//	}
//	if err := s.Err(); err != nil {
//	    return err
//	}
type Scanner struct {
	r     io.Reader
	delim Delimiter
	enc   encoding.Encoding

	hasHeaders bool
	reuse      bool

	loaded  bool
	headers []string
	rows    [][]string
	pos     int
	err     error
	shared  Record
}

// NewScanner returns a Scanner for comma-delimited UTF-8 input without headers.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: r, delim: Comma, pos: -1}
}

// SetDelimiter selects the field delimiter.
func (s *Scanner) SetDelimiter(delim Delimiter) *Scanner {
	s.delim = delim
	return s
}

// SetEncoding selects the input encoding; nil means UTF-8.
func (s *Scanner) SetEncoding(enc encoding.Encoding) *Scanner {
	s.enc = enc
	return s
}

// SetHasHeaders makes the first record the column names for GetByName.
func (s *Scanner) SetHasHeaders(hasHeaders bool) *Scanner {
	s.hasHeaders = hasHeaders
	return s
}

// SetReuseRecord makes Record return the same value on every call, sharing
// memory between calls.
func (s *Scanner) SetReuseRecord(reuse bool) *Scanner {
	s.reuse = reuse
	return s
}

// Scan moves to the next record. It returns false at the end of input or on
// error; Err tells the two apart.
func (s *Scanner) Scan() bool {
	if !s.loaded {
		s.loaded = true
		s.err = s.load()
	}
	if s.err != nil {
		return false
	}
	s.pos++
	return s.pos < len(s.rows)
}

// Record returns the current record, or an empty one when Scan has not
// returned true.
func (s *Scanner) Record() Record {
	if s.pos < 0 || s.pos >= len(s.rows) {
		return Record{fields: []string{}, headers: s.headers}
	}
	if !s.reuse {
		return Record{fields: s.rows[s.pos], headers: s.headers}
	}
	s.shared.fields, s.shared.headers = s.rows[s.pos], s.headers
	return s.shared
}

// Err returns the error that stopped Scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Headers returns the column names once Scan has been called.
func (s *Scanner) Headers() []string {
	return s.headers
}

func (s *Scanner) load() error {
	rows, err := ParseFromReader(s.r, s.delim, s.enc)
	if err != nil {
		return err
	}
	s.headers = []string{}
	if s.hasHeaders && len(rows) > 0 {
		s.headers, rows = rows[0], rows[1:]
	}
	s.rows = rows
	return nil
}
