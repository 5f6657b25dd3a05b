//go:build go1.18
// +build go1.18

package tokenizer

import (
	"strings"
	"testing"
)

// FuzzNormalizeLineEndings checks that normalization never panics, leaves no
// bare CR or LF behind, and is idempotent.
// Run with: go test -fuzz=FuzzNormalizeLineEndings -fuzztime=30s ./internal/tokenizer
func FuzzNormalizeLineEndings(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"\n",
		"\r",
		"\r\n",
		"\n\r",
		"\r\r\n",
		"a\rb\nc\r\n",
		"\"with\nnewline\"",
		"日本\r国",
		"a\t\n  \ta\r",
		"\"a\nb\",c\r",
		"0123456789ab\ncd\ref\r\n",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		out := NormalizeLineEndings(input)
		if strings.Count(out, "\r") != strings.Count(out, "\n") ||
			strings.Count(out, "\r") != strings.Count(out, CRLF) {
			t.Fatalf("non-canonical line ending in %q", out)
		}
		if want := strings.Count(input, "\r") + strings.Count(input, "\n") - strings.Count(input, CRLF); strings.Count(out, CRLF) != want {
			t.Fatalf("%q has %d line endings, want %d", out, strings.Count(out, CRLF), want)
		}
		if again := NormalizeLineEndings(out); again != out {
			t.Fatalf("not idempotent: %q -> %q", out, again)
		}
	})
}
