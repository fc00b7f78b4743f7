// Package asciichart renders numeric series as compact Unicode line charts
// for terminal output.
//
//	out, _ := asciichart.Plot([]float64{1, 2, 3, 4, 3, 2, 1})
//	fmt.Println(out)
//
//	    4.00  ┤  ╭╮
//	    3.00  ┤ ╭╯╰╮
//	    2.00  ┤╭╯  ╰╮
//	    1.00  ┼╯    ╰
//
// The renderer is a pure function over its inputs: each call resolves the
// value range, paints a labelled y-axis and one line per series into a fresh
// character grid, and returns the joined text. Nothing is probed or cached,
// there is no terminal handling, and the same input always renders the same
// chart.
//
// Vertical geometry derives from the data by default (one row per value
// unit); Height rescales it, Min and Max widen or clamp the range, and Width
// resamples the series horizontally. NaN samples are gaps: the line breaks
// before a gap and resumes after it, and nothing is drawn across.
//
// Color is the caller's business. Colors takes opaque wrapper strings, one
// per series plus a trailing reset, and concatenates them around glyphs
// without interpreting them. The pkg/theme package supplies ready palettes
// in that shape.
package asciichart
