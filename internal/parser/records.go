package parser

// SplitRecords splits normalized text into record strings. A record ends at a
// CRLF outside a quoted region; CRLF inside quotes is kept as content.
//
// Empty text yields zero records. Text ending inside a quoted region yields a
// *QuoteError and no records.
func SplitRecords(text string, delim rune) ([]string, error) {
	records := make([]string, 0, 16)
	if text == "" {
		return records, nil
	}

	err := scan(text, delim, recordTransition, func(st *scanState, _ Step, _ bool) {
		records = append(records, st.buf.String())
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
