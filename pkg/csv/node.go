// Package csv provides conversion between AST nodes and records.
package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ParseNode parses text like ParseFromText and returns the records as an AST:
//   - *ast.ArrayDataNode for the text (array of records)
//   - Each record is an *ast.ArrayDataNode of fields
//   - Each field is an *ast.LiteralNode containing a string value
//
// Example:
//
//	node, err := csv.ParseNode("name,age\nAlice,30", csv.Comma)
//	records := node.(*ast.ArrayDataNode).Elements()
func ParseNode(text string, delim Delimiter) (ast.SchemaNode, error) {
	if err := delim.Validate(); err != nil {
		return nil, err
	}

	node, err := newParser(text, delim).Parse()
	if err != nil {
		return nil, fromParserError(err)
	}
	return node, nil
}

// NodeToRecords converts an AST produced by ParseNode or RecordsToNode back
// to records.
func NodeToRecords(node ast.SchemaNode) ([][]string, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	records := make([][]string, 0, arrayNode.Len())
	for _, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make([]string, 0, recordNode.Len())
		for _, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			value, ok := literalNode.Value().(string)
			if !ok {
				return nil, fmt.Errorf("expected field value to be string, got %T", literalNode.Value())
			}
			fields = append(fields, value)
		}
		records = append(records, fields)
	}
	return records, nil
}

// RecordsToNode converts records to an AST of the shape ParseNode returns.
func RecordsToNode(records [][]string) *ast.ArrayDataNode {
	nodes := make([]ast.SchemaNode, len(records))
	for i, record := range records {
		fields := make([]ast.SchemaNode, len(record))
		for j, f := range record {
			fields[j] = ast.NewLiteralNode(f, ast.ZeroPosition())
		}
		nodes[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(nodes, ast.ZeroPosition())
}
