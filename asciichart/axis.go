package asciichart

import "github.com/mattn/go-runewidth"

// paintAxis writes one label and one tick per grid row. Labels end at the
// tick column when they fit; wider labels start at column zero and run under
// the axis. The tick on the row whose scaled counter is zero uses the origin
// glyph, every other row the plain tick.
func paintAxis(g *grid, sc scale, cfg config) {
	denom := sc.rows
	if denom == 0 {
		denom = 1
	}
	for y := sc.min2; y <= sc.max2; y++ {
		row := y - sc.min2
		value := sc.maximum - float64(row)*sc.interval/float64(denom)
		label := cfg.format(value)
		col := cfg.offset - runewidth.StringWidth(label)
		if col < 0 {
			col = 0
		}
		g.set(row, col, label)
		if y == 0 {
			g.set(row, cfg.offset-1, cfg.symbols.Origin)
		} else {
			g.set(row, cfg.offset-1, cfg.symbols.Tick)
		}
	}
}
