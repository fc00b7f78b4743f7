package asciichart

// SymbolSet holds the ten glyphs a chart is drawn with. Fields left empty
// fall back to the matching DefaultSymbols glyph, so single glyphs can be
// overridden in place:
//
//	asciichart.Symbols(asciichart.SymbolSet{Flat: "="})
//
// Field names follow the box-drawing reading of each glyph: UpRight is the
// corner joining the cell's top edge to its right edge, DownLeft joins the
// bottom edge to the left edge, and so on.
type SymbolSet struct {
	Origin    string // axis tick on the zero row, and series start marker
	Tick      string // axis tick on every other row
	Resume    string // line re-entering the chart after missing data
	Break     string // line running into missing data
	Flat      string // no row change between neighbouring samples
	UpRight   string // descending pair, drawn on the lower sample's row
	DownRight string // ascending pair, drawn on the upper sample's row
	DownLeft  string // descending pair, drawn on the upper sample's row
	UpLeft    string // ascending pair, drawn on the lower sample's row
	Vertical  string // filler for rows a steep segment passes through
}

// DefaultSymbols returns the box-drawing glyph set.
func DefaultSymbols() SymbolSet {
	return SymbolSet{
		Origin:    "┼",
		Tick:      "┤",
		Resume:    "╶",
		Break:     "╴",
		Flat:      "─",
		UpRight:   "╰",
		DownRight: "╭",
		DownLeft:  "╮",
		UpLeft:    "╯",
		Vertical:  "│",
	}
}

// ASCIISymbols returns a 7-bit fallback set for terminals without
// box-drawing fonts. Corners reuse the apostrophe and period the way
// classic ASCII diagrams draw arcs.
func ASCIISymbols() SymbolSet {
	return SymbolSet{
		Origin:    "+",
		Tick:      "+",
		Resume:    "-",
		Break:     "-",
		Flat:      "-",
		UpRight:   "'",
		DownRight: ".",
		DownLeft:  ".",
		UpLeft:    "'",
		Vertical:  "|",
	}
}

// merged fills empty fields from DefaultSymbols.
func (s SymbolSet) merged() SymbolSet {
	def := DefaultSymbols()
	if s.Origin == "" {
		s.Origin = def.Origin
	}
	if s.Tick == "" {
		s.Tick = def.Tick
	}
	if s.Resume == "" {
		s.Resume = def.Resume
	}
	if s.Break == "" {
		s.Break = def.Break
	}
	if s.Flat == "" {
		s.Flat = def.Flat
	}
	if s.UpRight == "" {
		s.UpRight = def.UpRight
	}
	if s.DownRight == "" {
		s.DownRight = def.DownRight
	}
	if s.DownLeft == "" {
		s.DownLeft = def.DownLeft
	}
	if s.UpLeft == "" {
		s.UpLeft = def.UpLeft
	}
	if s.Vertical == "" {
		s.Vertical = def.Vertical
	}
	return s
}
