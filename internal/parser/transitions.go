package parser

import "github.com/shapestone/csvsplit/internal/tokenizer"

// recordTransition is the transition table of the record splitter.
//
//	class      Normal                      Quoted
//	quote      -> Quoted, keep             next quote: keep both, stay; else -> Normal, keep
//	CR         drop                        keep
//	LF         drop, record boundary       keep
//	other      keep                        keep
//
// Quote characters stay in the record text; the field splitter needs them.
// The delimiter has no meaning at this stage and is kept like any other character.
func recordTransition(mode QuoteState, c, next tokenizer.Class, hasNext bool) Step {
	switch c {
	case tokenizer.ClassQuote:
		if mode == Normal {
			return Step{Mode: Quoted, Consumed: 1, Emit: EmitChar, Opened: true}
		}
		if hasNext && next == tokenizer.ClassQuote {
			return Step{Mode: Quoted, Consumed: 2, Emit: EmitChars}
		}
		return Step{Mode: Normal, Consumed: 1, Emit: EmitChar}
	case tokenizer.ClassCR:
		if mode == Normal {
			return Step{Mode: Normal, Consumed: 1, Emit: EmitNothing}
		}
	case tokenizer.ClassLF:
		if mode == Normal {
			return Step{Mode: Normal, Consumed: 1, Emit: EmitNothing, Boundary: true}
		}
	}
	return Step{Mode: mode, Consumed: 1, Emit: EmitChar}
}

// fieldTransition is the transition table of the field splitter.
//
//	class      Normal                      Quoted
//	quote      -> Quoted, keep             next quote: emit one quote, stay; else -> Normal, keep
//	CR, LF     drop                        keep
//	delimiter  drop, field boundary        keep
//	other      keep                        keep
//
// Opening and closing quotes are kept in the buffer and stripped when the
// field is finalized.
func fieldTransition(mode QuoteState, c, next tokenizer.Class, hasNext bool) Step {
	switch c {
	case tokenizer.ClassQuote:
		if mode == Normal {
			return Step{Mode: Quoted, Consumed: 1, Emit: EmitChar, Opened: true}
		}
		if hasNext && next == tokenizer.ClassQuote {
			return Step{Mode: Quoted, Consumed: 2, Emit: EmitQuote}
		}
		return Step{Mode: Normal, Consumed: 1, Emit: EmitChar}
	case tokenizer.ClassCR, tokenizer.ClassLF:
		if mode == Normal {
			return Step{Mode: Normal, Consumed: 1, Emit: EmitNothing}
		}
	case tokenizer.ClassDelimiter:
		if mode == Normal {
			return Step{Mode: Normal, Consumed: 1, Emit: EmitNothing, Boundary: true}
		}
	}
	return Step{Mode: mode, Consumed: 1, Emit: EmitChar}
}
