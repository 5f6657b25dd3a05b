// Package textfmt turns values into display text for CSV cells.
//
// It is the write-side companion of package csv: Quote wraps a single value
// so that csv.ParseFieldsFromText returns it unchanged, Join lays values out
// for reading, and Formatter renders numbers with optional digit grouping,
// fixed decimals and a replacement for absent or filtered values.
//
//	f := textfmt.New(textfmt.WithGrouping(), textfmt.WithDecimals(2))
//	f.Float(20000.125) // "20,000.13"
package textfmt

import (
	"strings"
)

// Separator is the text placed between joined values.
const Separator = ", "

// Join joins values with Separator, appending a newline when newline is true.
func Join(values []string, newline bool) string {
	text := strings.Join(values, Separator)
	if newline {
		text += "\n"
	}
	return text
}

// Quote wraps value in double quotes and doubles every quote inside it.
// The empty value becomes "".
func Quote(value string) string {
	var sb strings.Builder
	sb.Grow(len(value) + 2)
	sb.WriteByte('"')
	sb.WriteString(strings.ReplaceAll(value, `"`, `""`))
	sb.WriteByte('"')
	return sb.String()
}
