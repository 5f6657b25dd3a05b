package csv

import (
	"fmt"
	"strings"
)

// Delimiter is a field delimiter from the closed set of recognized
// delimiters. Values outside that set are rejected by every parse function.
type Delimiter rune

const (
	// Comma separates fields with ','.
	Comma Delimiter = ','
	// Tab separates fields with '\t'.
	Tab Delimiter = '\t'
	// Semicolon separates fields with ';'.
	Semicolon Delimiter = ';'
)

// Delimiters returns the recognized delimiters in sniffing preference order.
func Delimiters() []Delimiter {
	return []Delimiter{Comma, Tab, Semicolon}
}

// String returns the name of the delimiter.
func (d Delimiter) String() string {
	switch d {
	case Comma:
		return "comma"
	case Tab:
		return "tab"
	case Semicolon:
		return "semicolon"
	default:
		return fmt.Sprintf("Delimiter(%q)", rune(d))
	}
}

// Rune returns the delimiter character.
func (d Delimiter) Rune() rune {
	return rune(d)
}

// Validate returns an *OptionsError if d is not a recognized delimiter.
func (d Delimiter) Validate() error {
	switch d {
	case Comma, Tab, Semicolon:
		return nil
	default:
		return &OptionsError{Field: "Delimiter", Message: fmt.Sprintf("unsupported delimiter %q", rune(d))}
	}
}

// ParseDelimiter accepts a delimiter name ("comma", "tab", "semicolon"),
// the delimiter character itself, or the escape `\t`. Names are case-insensitive.
func ParseDelimiter(s string) (Delimiter, error) {
	switch strings.ToLower(s) {
	case "comma", ",":
		return Comma, nil
	case "tab", "\t", `\t`:
		return Tab, nil
	case "semicolon", ";":
		return Semicolon, nil
	default:
		return 0, &OptionsError{Field: "Delimiter", Message: fmt.Sprintf("unknown delimiter %q", s)}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Delimiter) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Delimiter) UnmarshalText(text []byte) error {
	parsed, err := ParseDelimiter(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
