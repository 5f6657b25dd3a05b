// Package parser implements the two-stage CSV splitting state machine.
//
// Text is first normalized so that every line ending is CRLF. The record
// splitter then cuts the text at CRLF outside quoted regions, and the field
// splitter cuts each record at the delimiter outside quoted regions. Both
// stages are driven by pure transition functions (see transitions.go) over a
// shape-core character stream, which supplies line and column positions for
// error reporting.
package parser

import (
	"errors"

	"github.com/shapestone/csvsplit/internal/tokenizer"
	"github.com/shapestone/shape-core/pkg/ast"
)

// Options configures the parser behavior.
type Options struct {
	// Comma is the field delimiter. Default: ','
	Comma rune
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Comma: ',',
	}
}

// Parser splits one input text into records and fields.
// A Parser holds no state between calls and may be reused.
type Parser struct {
	input string
	opts  Options
}

// NewParser creates a new CSV parser for the given input string.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a new CSV parser with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	return &Parser{
		input: tokenizer.NormalizeLineEndings(input),
		opts:  opts,
	}
}

// Records splits the input into records and each record into fields.
func (p *Parser) Records() ([][]string, error) {
	texts, err := SplitRecords(p.input, p.opts.Comma)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(texts))
	for i, text := range texts {
		fields, err := SplitFields(text, p.opts.Comma)
		if err != nil {
			return nil, withRecord(err, i+1)
		}
		records = append(records, fields)
	}
	return records, nil
}

// Fields splits the whole input as the field text of a single record.
func (p *Parser) Fields() ([]string, error) {
	return SplitFields(p.input, p.opts.Comma)
}

// Parse splits the input and returns an AST representing the CSV text.
//
// Returns *ast.ArrayDataNode - an array of records, where each record is an
// ArrayDataNode of LiteralNode string fields.
func (p *Parser) Parse() (*ast.ArrayDataNode, error) {
	records, err := p.Records()
	if err != nil {
		return nil, err
	}

	nodes := make([]ast.SchemaNode, len(records))
	for i, record := range records {
		fields := make([]ast.SchemaNode, len(record))
		for j, field := range record {
			fields[j] = ast.NewLiteralNode(field, ast.ZeroPosition())
		}
		nodes[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(nodes, ast.ZeroPosition()), nil
}

// withRecord tags a field-splitting error with the record it came from.
func withRecord(err error, record int) error {
	var qe *QuoteError
	if errors.As(err, &qe) {
		tagged := *qe
		tagged.Record = record
		return &tagged
	}
	return err
}
