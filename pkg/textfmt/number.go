package textfmt

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDecimals bounds WithDecimals so that rounding stays within float64 precision.
const maxDecimals = 15

// Formatter renders numbers as text. Build one with New.
type Formatter struct {
	grouping bool
	decimals int // negative means shortest representation
	replace  string
	lang     language.Tag
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithGrouping inserts digit group separators ("20,000").
func WithGrouping() Option {
	return func(f *Formatter) {
		f.grouping = true
	}
}

// WithDecimals fixes the number of fraction digits. Values are rounded half
// away from zero, so 0.125 with two decimals is "0.13".
func WithDecimals(n int) Option {
	return func(f *Formatter) {
		f.decimals = min(max(n, 0), maxDecimals)
	}
}

// WithReplacement sets the text returned for nil or filtered values.
func WithReplacement(s string) Option {
	return func(f *Formatter) {
		f.replace = s
	}
}

// WithLanguage selects the separators used by grouping. Default: English.
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) {
		f.lang = tag
	}
}

// New returns a Formatter configured by opts.
func New(opts ...Option) Formatter {
	f := Formatter{decimals: -1, lang: language.English}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Int formats v.
func (f Formatter) Int(v int) string {
	if f.decimals > 0 {
		return f.Float(float64(v))
	}
	if !f.grouping {
		return strconv.Itoa(v)
	}
	return f.printer().Sprint(number.Decimal(v))
}

// Float formats v.
func (f Formatter) Float(v float64) string {
	decimals := f.decimals
	if decimals < 0 {
		decimals = shortestDecimals(v)
	} else {
		v = roundHalfAwayFromZero(v, decimals)
	}

	if !f.grouping {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return f.printer().Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// IntIf formats v when keep reports true, and returns the replacement otherwise.
func (f Formatter) IntIf(v int, keep func(int) bool) string {
	if !keep(v) {
		return f.replace
	}
	return f.Int(v)
}

// FloatIf formats v when keep reports true, and returns the replacement otherwise.
func (f Formatter) FloatIf(v float64, keep func(float64) bool) string {
	if !keep(v) {
		return f.replace
	}
	return f.Float(v)
}

// IntPtr formats *v, or returns the replacement when v is nil.
func (f Formatter) IntPtr(v *int) string {
	if v == nil {
		return f.replace
	}
	return f.Int(*v)
}

// FloatPtr formats *v, or returns the replacement when v is nil.
func (f Formatter) FloatPtr(v *float64) string {
	if v == nil {
		return f.replace
	}
	return f.Float(*v)
}

// IntPtrIf combines IntPtr and IntIf.
func (f Formatter) IntPtrIf(v *int, keep func(int) bool) string {
	if v == nil {
		return f.replace
	}
	return f.IntIf(*v, keep)
}

// FloatPtrIf combines FloatPtr and FloatIf.
func (f Formatter) FloatPtrIf(v *float64, keep func(float64) bool) string {
	if v == nil {
		return f.replace
	}
	return f.FloatIf(*v, keep)
}

// printer is built per call; message.Printer is not safe for concurrent use.
func (f Formatter) printer() *message.Printer {
	return message.NewPrinter(f.lang)
}

func roundHalfAwayFromZero(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow10(decimals)
	rounded := math.Round(v*scale) / scale
	if rounded == 0 {
		// Drop the sign of -0.
		return 0
	}
	return rounded
}

// shortestDecimals returns the fraction digits of the shortest decimal form of v.
func shortestDecimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return len(s) - i - 1
		}
	}
	return 0
}
