package asciichart

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange reports a resolved minimum above the resolved maximum.
// Only the Min and Max options can produce it; data on its own always folds
// into a valid range.
var ErrInvalidRange = errors.New("asciichart: minimum greater than maximum")

// scale maps sample values onto integer grid rows. It is resolved once per
// render call and shared by the axis and line painters.
type scale struct {
	minimum  float64
	maximum  float64
	interval float64
	ratio    float64 // grid rows per value unit
	min2     int     // floor(minimum * ratio)
	max2     int     // ceil(maximum * ratio)
	rows     int     // max2 - min2; the grid has rows+1 text lines
}

// resolveScale folds the data range, applies option overrides and derives
// the row geometry. The fold skips NaN samples; a data set without a single
// numeric sample resolves to the degenerate range [0, 0].
func resolveScale(series [][]float64, cfg config) (scale, error) {
	minimum, maximum := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) {
				continue
			}
			minimum = math.Min(minimum, v)
			maximum = math.Max(maximum, v)
		}
	}
	if minimum > maximum {
		minimum, maximum = 0, 0
	}
	if cfg.min != nil {
		minimum = *cfg.min
	}
	if cfg.max != nil {
		maximum = *cfg.max
	}
	if minimum > maximum {
		return scale{}, fmt.Errorf("%w: min %v, max %v", ErrInvalidRange, minimum, maximum)
	}

	interval := maximum - minimum
	height := interval
	if cfg.height != nil {
		height = *cfg.height
	}
	if height < 0 {
		height = 0
	}
	ratio := 1.0
	if interval != 0 {
		ratio = height / interval
	}

	sc := scale{
		minimum:  minimum,
		maximum:  maximum,
		interval: interval,
		ratio:    ratio,
		min2:     int(math.Floor(minimum * ratio)),
		max2:     int(math.Ceil(maximum * ratio)),
	}
	sc.rows = sc.max2 - sc.min2
	return sc, nil
}

// scaled maps a sample onto [0, rows]. Samples outside the resolved range
// pin to the nearest bound instead of leaving the grid.
func (s scale) scaled(v float64) int {
	v = math.Max(s.minimum, math.Min(s.maximum, v))
	return int(math.Round(v*s.ratio)) - s.min2
}

// row converts a scaled value into a grid row index; row 0 is the top line.
func (s scale) row(scaled int) int {
	return s.rows - scaled
}
