// Package csv provides configurable options for parsing files.
package csv

import (
	"runtime"

	"golang.org/x/text/encoding"
)

// FileOptions configures ParseFiles and Scanner.
type FileOptions struct {
	// Delimiter is the field delimiter.
	// Default: Comma
	Delimiter Delimiter

	// Encoding decodes file bytes to text. nil means UTF-8.
	// Default: nil
	Encoding encoding.Encoding

	// Workers is the maximum number of files parsed at once by ParseFiles.
	// Values below 1 mean runtime.GOMAXPROCS(0).
	// Default: 0
	Workers int
}

// DefaultFileOptions returns the default file parsing configuration.
func DefaultFileOptions() FileOptions {
	return FileOptions{
		Delimiter: Comma,
		Encoding:  nil,
		Workers:   0,
	}
}

// Validate checks if the options are valid.
func (o FileOptions) Validate() error {
	return o.Delimiter.Validate()
}

func (o FileOptions) workers() int {
	if o.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}
