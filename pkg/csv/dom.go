package csv

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

// Document holds split records with optional column names.
//
//	doc, _ := csv.ParseDocument("name,age\nAlice,30", csv.Comma)
//	doc.UseFirstRecordAsHeaders()
//	row, _ := doc.GetRecord(0)
//	age, _ := row.GetByName("age") // "30"
//
// Setters return the Document so calls can be chained.
type Document struct {
	headers []string
	rows    [][]string
}

// Record is one row of a Document, readable by position or by column name.
type Record struct {
	fields  []string
	headers []string // shared with the owning Document
}

// NewDocument returns a Document without headers or rows.
func NewDocument() *Document {
	return &Document{headers: []string{}, rows: [][]string{}}
}

// ParseDocument splits text with ParseFromText. Every record is a data row
// until UseFirstRecordAsHeaders or SetHeaders is called.
func ParseDocument(text string, delim Delimiter) (*Document, error) {
	rows, err := ParseFromText(text, delim)
	if err != nil {
		return nil, err
	}
	return &Document{headers: []string{}, rows: rows}, nil
}

// SetHeaders names the columns used by Record.GetByName.
func (d *Document) SetHeaders(headers []string) *Document {
	d.headers = headers
	return d
}

// UseFirstRecordAsHeaders promotes the first row to column names.
// A Document without rows is left unchanged.
func (d *Document) UseFirstRecordAsHeaders() *Document {
	if len(d.rows) > 0 {
		d.headers, d.rows = d.rows[0], d.rows[1:]
	}
	return d
}

// AddRecord appends a data row.
func (d *Document) AddRecord(fields []string) *Document {
	d.rows = append(d.rows, fields)
	return d
}

// Headers returns the column names, empty when none are set.
func (d *Document) Headers() []string {
	return d.headers
}

// RecordCount returns the number of data rows, excluding headers.
func (d *Document) RecordCount() int {
	return len(d.rows)
}

// Records returns every data row.
func (d *Document) Records() []Record {
	out := make([]Record, 0, len(d.rows))
	for _, row := range d.rows {
		out = append(out, d.record(row))
	}
	return out
}

// GetRecord returns data row i (0-based, headers excluded).
func (d *Document) GetRecord(i int) (Record, bool) {
	if i < 0 || i >= len(d.rows) {
		return Record{}, false
	}
	return d.record(d.rows[i]), true
}

func (d *Document) record(fields []string) Record {
	return Record{fields: fields, headers: d.headers}
}

// Get returns field i.
func (r Record) Get(i int) (string, bool) {
	if i < 0 || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// GetByName returns the field under the first header equal to name.
func (r Record) GetByName(name string) (string, bool) {
	for i, h := range r.headers {
		if h == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Fields returns a copy of the row.
func (r Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// ToAST returns the rows as ParseNode would, with the headers as the first
// row when set.
func (d *Document) ToAST() *ast.ArrayDataNode {
	if len(d.headers) == 0 {
		return RecordsToNode(d.rows)
	}
	all := make([][]string, 0, len(d.rows)+1)
	all = append(all, d.headers)
	all = append(all, d.rows...)
	return RecordsToNode(all)
}

// FromAST builds a Document from a node of the shape ParseNode returns.
// Every row becomes a data row.
func FromAST(node ast.SchemaNode) (*Document, error) {
	rows, err := NodeToRecords(node)
	if err != nil {
		return nil, err
	}
	return &Document{headers: []string{}, rows: rows}, nil
}
