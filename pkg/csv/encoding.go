package csv

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LookupEncoding returns the text encoding registered under name in the
// WHATWG Encoding Standard ("utf-8", "shift_jis", "euc-jp", "windows-1252",
// "utf-16le", ...). Names are case-insensitive. An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, &OptionsError{Field: "Encoding", Message: fmt.Sprintf("unknown encoding %q", name)}
	}
	return enc, nil
}

// EncodingName returns the canonical WHATWG name of enc, or "utf-8" for nil.
func EncodingName(enc encoding.Encoding) string {
	if enc == nil {
		return "utf-8"
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return fmt.Sprintf("%v", enc)
	}
	return name
}

// decodeAll reads r to the end and decodes it to a string.
// A byte order mark overrides enc and is dropped.
func decodeAll(r io.Reader, enc encoding.Encoding) (string, error) {
	if enc == nil {
		enc = unicode.UTF8
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", EncodingName(enc), err)
	}
	return string(data), nil
}
