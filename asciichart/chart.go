package asciichart

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Plot renders a single series as a multi-line chart. An empty series, or a
// series holding only NaN samples, renders to the empty string.
func Plot(series []float64, opts ...Option) (string, error) {
	numeric := false
	for _, v := range series {
		if !math.IsNaN(v) {
			numeric = true
			break
		}
	}
	if !numeric {
		return "", nil
	}
	return PlotMany([][]float64{series}, opts...)
}

// PlotMany renders one or more series onto a shared grid with a single
// y-axis. Series are drawn in order, so on contested cells the later series
// wins. An empty collection renders to the empty string; NaN samples mark
// gaps in the line they belong to.
//
// The call is pure: it reads the input slices, paints a fresh buffer and
// returns the joined text. Errors only arise from contradictory range
// overrides, reported as ErrInvalidRange.
func PlotMany(series [][]float64, opts ...Option) (string, error) {
	if len(series) == 0 {
		return "", nil
	}
	cfg := newConfig(opts)

	if cfg.width > 0 {
		series = resampleAll(series, cfg.width)
	}

	sc, err := resolveScale(series, cfg)
	if err != nil {
		return "", err
	}

	length := 0
	for _, s := range series {
		length = max(length, len(s))
	}
	g := newGrid(sc.rows+1, cfg.offset+length)

	paintAxis(g, sc, cfg)

	for i, s := range series {
		p := seriesPainter{
			grid:    g,
			scale:   sc,
			symbols: cfg.symbols,
			offset:  cfg.offset,
			color:   seriesColor(cfg.colors, i),
			reset:   resetColor(cfg.colors),
		}
		p.paint(s)
	}

	out := g.render()
	if cfg.title != "" {
		out = padTitle(cfg.title, g, cfg.offset) + "\n" + out
	}
	return out, nil
}

// padTitle left-pads the title so it sits halfway between the axis column
// and the right edge of the grid. Only the label cells are measured; every
// cell from the tick column on holds exactly one visible column no matter
// what color wrappers dress it up in, so the row width follows from the
// grid geometry instead of the rendered bytes.
func padTitle(title string, g *grid, offset int) string {
	axis := 0
	for _, cell := range g.cells[0][:offset-1] {
		axis += runewidth.StringWidth(cell)
	}
	lineWidth := axis + g.width - offset + 1
	return strings.Repeat(" ", (axis+lineWidth)/2) + title
}
