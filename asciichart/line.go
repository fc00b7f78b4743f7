package asciichart

import "math"

// seriesPainter draws one series into the grid with one color wrapper.
type seriesPainter struct {
	grid    *grid
	scale   scale
	symbols SymbolSet
	offset  int
	color   string
	reset   string
}

func (p seriesPainter) wrap(glyph string) string {
	if p.color == "" && p.reset == "" {
		return glyph
	}
	return p.color + glyph + p.reset
}

// paint draws the series start marker and every adjacent-pair segment.
func (p seriesPainter) paint(series []float64) {
	if len(series) > 0 && !math.IsNaN(series[0]) {
		p.grid.set(p.scale.row(p.scale.scaled(series[0])), p.offset-1, p.wrap(p.symbols.Origin))
	}
	for x := 0; x+1 < len(series); x++ {
		p.segment(x, series[x], series[x+1])
	}
}

// segment draws the glyphs for the sample pair starting at plot column x.
func (p seriesPainter) segment(x int, d0, d1 float64) {
	col := x + p.offset
	switch {
	case math.IsNaN(d0) && math.IsNaN(d1):
		// Gap interior, nothing to draw.
	case math.IsNaN(d0):
		p.grid.set(p.scale.row(p.scale.scaled(d1)), col, p.wrap(p.symbols.Resume))
	case math.IsNaN(d1):
		p.grid.set(p.scale.row(p.scale.scaled(d0)), col, p.wrap(p.symbols.Break))
	default:
		y0 := p.scale.scaled(d0)
		y1 := p.scale.scaled(d1)
		if y0 == y1 {
			p.grid.set(p.scale.row(y0), col, p.wrap(p.symbols.Flat))
			return
		}
		if y0 > y1 {
			p.grid.set(p.scale.row(y1), col, p.wrap(p.symbols.UpRight))
			p.grid.set(p.scale.row(y0), col, p.wrap(p.symbols.DownLeft))
		} else {
			p.grid.set(p.scale.row(y1), col, p.wrap(p.symbols.DownRight))
			p.grid.set(p.scale.row(y0), col, p.wrap(p.symbols.UpLeft))
		}
		for y := min(y0, y1) + 1; y < max(y0, y1); y++ {
			p.grid.set(p.scale.row(y), col, p.wrap(p.symbols.Vertical))
		}
	}
}

// seriesColor picks the wrapper for series i. The final configured entry is
// reserved as the reset sequence; series cycle through the rest when there
// are more series than colors.
func seriesColor(colors []string, i int) string {
	if len(colors) < 2 {
		return ""
	}
	pool := colors[:len(colors)-1]
	return pool[i%len(pool)]
}

// resetColor returns the reset sequence closing every colored glyph.
func resetColor(colors []string) string {
	if len(colors) < 2 {
		return ""
	}
	return colors[len(colors)-1]
}
