package parser

import (
	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// newStream wraps text in a shape-core character stream with line and
// column tracking.
func newStream(text string) shapetokenizer.Stream {
	return shapetokenizer.NewStream(text)
}

// streamPosition returns the position of the next character in stream.
func streamPosition(stream shapetokenizer.Stream) ast.Position {
	return ast.NewPosition(stream.GetOffset(), stream.GetRow(), stream.GetColumn())
}
