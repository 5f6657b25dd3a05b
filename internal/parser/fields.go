package parser

import (
	"strings"

	"github.com/shapestone/csvsplit/internal/tokenizer"
)

// SplitFields splits one record's text into field strings.
//
// A delimiter outside quotes ends a field; a delimiter that is the last
// character of the text implies one more, empty, trailing field. Empty text
// yields zero fields. Text ending inside a quoted region yields a *QuoteError
// and no fields.
func SplitFields(text string, delim rune) ([]string, error) {
	fields := make([]string, 0, 8)
	if text == "" {
		return fields, nil
	}

	err := scan(text, delim, fieldTransition, func(st *scanState, step Step, atEnd bool) {
		fields = append(fields, finalizeField(st.buf.String(), st.hasQuote))

		// "a,b," ends on a delimiter: the omitted last field is empty.
		if step.Boundary && atEnd {
			fields = append(fields, "")
		}
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// finalizeField strips the wrapping quotes of a quoted field.
//
// Spaces directly outside the wrapping quotes are trimmed with them, so
// ` "BBB" ` yields BBB. A buffer that is not quote-wrapped after trimming
// keeps its quotes but loses the surrounding spaces, so ` "a"b ` yields "a"b.
func finalizeField(raw string, hasQuote bool) string {
	if raw == "" {
		return ""
	}
	if !hasQuote || strings.Count(raw, string(tokenizer.Quote)) < 2 {
		return raw
	}

	trimmed := strings.Trim(raw, " ")
	if len(trimmed) >= 2 && trimmed[0] == tokenizer.Quote && trimmed[len(trimmed)-1] == tokenizer.Quote {
		return trimmed[1 : len(trimmed)-1]
	}
	return trimmed
}
