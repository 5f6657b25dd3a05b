package csv_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapestone/csvsplit/pkg/csv"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind csv.ErrorKind
		want string
	}{
		{csv.KindUnknown, "unknown"},
		{csv.KindNotFound, "not_found"},
		{csv.KindMalformedInput, "malformed_input"},
		{csv.ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want csv.ErrorKind
	}{
		{"nil", nil, csv.KindUnknown},
		{"other", errors.New("boom"), csv.KindUnknown},
		{"not found", csv.ErrNotFound, csv.KindNotFound},
		{"wrapped not found", &csv.FileError{Path: "x.csv", Err: csv.ErrNotFound}, csv.KindNotFound},
		{"malformed", &csv.ParseError{Err: csv.ErrMalformedInput}, csv.KindMalformedInput},
		{"fmt wrapped malformed", fmt.Errorf("batch: %w", &csv.ParseError{Err: csv.ErrMalformedInput}), csv.KindMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, csv.KindOf(tt.err))
		})
	}
}

func TestParseError(t *testing.T) {
	t.Run("same line", func(t *testing.T) {
		err := &csv.ParseError{
			StartLine: 5,
			Line:      5,
			Column:    10,
			Err:       csv.ErrMalformedInput,
		}
		assert.Equal(t, "parse error on line 5, column 10: malformed input: unterminated quoted region", err.Error())
	})

	t.Run("multi line", func(t *testing.T) {
		err := &csv.ParseError{
			StartLine: 3,
			Line:      5,
			Column:    2,
			Err:       csv.ErrMalformedInput,
		}
		assert.Equal(t, "parse error on line 5 (started line 3), column 2: malformed input: unterminated quoted region", err.Error())
	})

	t.Run("record prefix", func(t *testing.T) {
		err := &csv.ParseError{Record: 2, StartLine: 1, Line: 1, Column: 4, Err: csv.ErrMalformedInput}
		assert.Contains(t, err.Error(), "record 2: parse error on line 1")
	})

	t.Run("unwrap", func(t *testing.T) {
		err := &csv.ParseError{Err: csv.ErrMalformedInput}
		assert.ErrorIs(t, err, csv.ErrMalformedInput)
	})
}

func TestFileError(t *testing.T) {
	err := &csv.FileError{Path: "data.csv", Err: csv.ErrNotFound}
	assert.Equal(t, "data.csv: file not found: file does not exist", err.Error())
	assert.ErrorIs(t, err, csv.ErrNotFound)
}

func TestOptionsError(t *testing.T) {
	err := &csv.OptionsError{Field: "Delimiter", Message: "unsupported delimiter '|'"}
	assert.Equal(t, "csv: invalid Delimiter: unsupported delimiter '|'", err.Error())
}
