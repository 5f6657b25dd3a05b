package csv

import (
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/shapestone/csvsplit/internal/tokenizer"
)

// SniffSampleSize is the number of bytes SniffReader reads.
const SniffSampleSize = 64 << 10

var (
	nameLike = []*regexp.Regexp{
		regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),     // identifier, snake_case, camelCase
		regexp.MustCompile(`^[A-Z][a-z]+( [A-Z][a-z]+)*$`), // Title Case
		regexp.MustCompile(`^[a-z]+(-[a-z0-9]+)+$`),        // kebab-case
	}
	dateLike = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
	}
)

// Sniffer guesses which recognized delimiter a sample uses and whether its
// first row names the columns. The sample is analyzed once, by NewSniffer.
type Sniffer struct {
	delimiter Delimiter
	hasHeader bool
}

// NewSniffer analyzes sample. Two or more lines give the best guesses.
func NewSniffer(sample string) *Sniffer {
	lines := sampleLines(sample)
	delim := guessDelimiter(lines)
	return &Sniffer{
		delimiter: delim,
		hasHeader: guessHeader(lines, delim),
	}
}

// SniffReader builds a Sniffer from the first SniffSampleSize bytes of r,
// decoded with enc. A nil enc means UTF-8.
func SniffReader(r io.Reader, enc encoding.Encoding) (*Sniffer, error) {
	sample, err := decodeAll(io.LimitReader(r, SniffSampleSize), enc)
	if err != nil {
		return nil, err
	}
	return NewSniffer(sample), nil
}

// DetectDelimiter returns the guessed delimiter, Comma when no delimiter
// appears on the first line.
func (s *Sniffer) DetectDelimiter() Delimiter {
	return s.delimiter
}

// HasHeader reports whether the first row looks like column names.
func (s *Sniffer) HasHeader() bool {
	return s.hasHeader
}

// sampleLines splits sample at any line ending and drops empty lines.
// Quoted line breaks split too; the guesses only need an estimate.
func sampleLines(sample string) []string {
	lines := strings.Split(tokenizer.NormalizeLineEndings(sample), tokenizer.CRLF)
	return slices.DeleteFunc(lines, func(line string) bool { return line == "" })
}

// guessDelimiter scores each delimiter by how often it appears unquoted on
// the first line, times ten when every line has the same count. Ties go to
// the earlier delimiter in Delimiters().
func guessDelimiter(lines []string) Delimiter {
	best, bestScore := Comma, 0
	if len(lines) == 0 {
		return best
	}

	for _, delim := range Delimiters() {
		first := unquotedCount(lines[0], delim)
		score := first
		if first > 0 && slices.IndexFunc(lines[1:], func(l string) bool {
			return unquotedCount(l, delim) != first
		}) < 0 {
			score *= 10
		}
		if score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

func unquotedCount(line string, delim Delimiter) int {
	n := 0
	quoted := false
	for _, r := range line {
		switch {
		case r == tokenizer.Quote:
			quoted = !quoted
		case r == delim.Rune() && !quoted:
			n++
		}
	}
	return n
}

// cellKind is what a single cell looks like.
type cellKind int

const (
	cellOther cellKind = iota
	cellName
	cellValue
)

// guessHeader compares how many cells of the first row look like names with
// how many look like values. It needs at least two lines.
func guessHeader(lines []string, delim Delimiter) bool {
	if len(lines) < 2 {
		return false
	}

	// A sample cut inside a quoted field fails to split; assume no header.
	cells, err := ParseFieldsFromText(lines[0], delim)
	if err != nil || len(cells) == 0 {
		return false
	}

	names, values := 0, 0
	for _, cell := range cells {
		switch classifyCell(strings.TrimSpace(cell)) {
		case cellName:
			names++
		case cellValue:
			values++
		}
	}
	return names > values
}

func classifyCell(cell string) cellKind {
	if cell == "" {
		return cellOther
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return cellValue
	}
	if strings.Contains(cell, "@") || matchesAny(dateLike, cell) {
		return cellValue
	}
	if matchesAny(nameLike, cell) {
		return cellName
	}
	return cellOther
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	return slices.ContainsFunc(patterns, func(p *regexp.Regexp) bool { return p.MatchString(s) })
}
