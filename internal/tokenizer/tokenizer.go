package tokenizer

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewLineEndingTokenizer creates a tokenizer that splits text into newline
// tokens and text runs.
//
// Matchers are tried in order of specificity:
// 1. CRLF (before CR so the longer sequence wins)
// 2. Lone CR
// 3. Lone LF
// 4. Text (any run of characters that are not CR or LF)
func NewLineEndingTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, CRLF),
		tokenizer.CharMatcherFunc(TokenNewline, CarriageReturn),
		tokenizer.CharMatcherFunc(TokenNewline, LineFeed),
		TextMatcher(),
	)
}

// NormalizeLineEndings rewrites every lone CR, lone LF, or CRLF in text into
// a single CRLF. Text that already uses CRLF only is returned unchanged.
//
// Invalid UTF-8 sequences are replaced with U+FFFD before scanning; the
// stream keeps a rune index alongside the bytes and both must agree.
func NormalizeLineEndings(text string) string {
	if text == "" {
		return ""
	}
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}

	tok := NewLineEndingTokenizer()
	tok.Initialize(text)

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/8)
	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		if token.Kind() == TokenNewline {
			sb.WriteString(CRLF)
			continue
		}
		sb.WriteString(token.ValueString())
	}
	return sb.String()
}

// TextMatcher creates a matcher for runs of characters that are not CR or LF.
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return textMatcherByte(byteStream)
		}
		return textMatcherRune(stream)
	}
}

// textMatcherByte scans bytes; CR and LF never occur inside a multi-byte
// UTF-8 sequence, so stopping on them cannot split a rune.
//
// The run must end at the earliest CR or LF. tokenizer.FindAnyByte checks its
// targets one at a time per 8-byte chunk and can report a later CR before an
// earlier LF, so it is not used here.
func textMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	remaining := stream.RemainingBytes()

	end := bytes.IndexAny(remaining, "\r\n")
	if end < 0 {
		end = len(remaining)
	}
	if end == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenText, []rune(string(remaining[:end])))
}

// textMatcherRune is the fallback rune-based implementation.
func textMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == CarriageReturn || r == LineFeed {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}
	return tokenizer.NewToken(TokenText, value)
}
