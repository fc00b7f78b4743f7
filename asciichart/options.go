package asciichart

import "fmt"

// DefaultOffset is the number of columns reserved for axis labels when the
// Offset option is absent or non-positive.
const DefaultOffset = 3

// config collects the resolved options of one render call. Every field has
// a working default; see the Option constructors for the semantics.
type config struct {
	min     *float64
	max     *float64
	height  *float64
	offset  int
	width   int
	format  LabelFormatter
	symbols SymbolSet
	colors  []string
	title   string
}

func newConfig(opts []Option) config {
	cfg := config{
		offset:  DefaultOffset,
		format:  FixedFormat(8, 2),
		symbols: DefaultSymbols(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.offset <= 0 {
		cfg.offset = DefaultOffset
	}
	cfg.symbols = cfg.symbols.merged()
	return cfg
}

// Option customises a single render call.
type Option func(*config)

// Min fixes the lower bound of the plotted range. Samples below it draw
// pinned to the bottom row.
func Min(v float64) Option {
	return func(c *config) { c.min = &v }
}

// Max fixes the upper bound of the plotted range. Samples above it draw
// pinned to the top row.
func Max(v float64) Option {
	return func(c *config) { c.max = &v }
}

// Height scales the chart to roughly h rows instead of one row per value
// unit. Negative values are treated as zero.
func Height(h float64) Option {
	return func(c *config) { c.height = &h }
}

// Offset sets the number of columns reserved for axis labels. Values below
// one fall back to DefaultOffset.
func Offset(n int) Option {
	return func(c *config) { c.offset = n }
}

// Width resamples every series onto n points by linear interpolation before
// plotting. Zero or negative values leave the data untouched.
func Width(n int) Option {
	return func(c *config) { c.width = n }
}

// Format sets the axis label template, applied as fmt.Sprintf(template, v).
// The template is not validated; it should consume exactly one float.
func Format(template string) Option {
	return func(c *config) {
		c.format = func(v float64) string { return fmt.Sprintf(template, v) }
	}
}

// FormatWith sets an arbitrary axis label formatter.
func FormatWith(f LabelFormatter) Option {
	return func(c *config) {
		if f != nil {
			c.format = f
		}
	}
}

// Symbols overrides drawing glyphs. Empty fields keep their default glyph.
func Symbols(s SymbolSet) Option {
	return func(c *config) { c.symbols = s }
}

// Colors assigns per-series color wrappers. The wrappers are opaque strings
// concatenated around each glyph: entry i opens series i's glyphs and the
// final entry closes every colored glyph, so a call coloring n series passes
// n+1 entries. Fewer than two entries disable coloring; more series than
// colors cycle through the pool.
func Colors(wrappers ...string) Option {
	return func(c *config) { c.colors = wrappers }
}

// Title prepends a heading line, centered over the plot area.
func Title(s string) Option {
	return func(c *config) { c.title = s }
}
