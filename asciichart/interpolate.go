package asciichart

import "math"

// resample stretches or squeezes data onto fitCount samples using linear
// interpolation, keeping the first and last samples in place. Interpolating
// against a NaN neighbour yields NaN, so gaps survive resampling as gaps.
func resample(data []float64, fitCount int) []float64 {
	if len(data) == 0 || fitCount <= 0 || len(data) == fitCount {
		return data
	}
	if fitCount == 1 {
		return []float64{data[0]}
	}
	out := make([]float64, 0, fitCount)
	step := float64(len(data)-1) / float64(fitCount-1)
	out = append(out, data[0])
	for i := 1; i < fitCount-1; i++ {
		at := float64(i) * step
		before := math.Floor(at)
		after := math.Ceil(at)
		t := at - before
		d0, d1 := data[int(before)], data[int(after)]
		out = append(out, d0+(d1-d0)*t)
	}
	out = append(out, data[len(data)-1])
	return out
}

// resampleAll pads ragged series with NaN to a common length, then resamples
// each one onto width samples. Inputs are copied, never written to.
func resampleAll(series [][]float64, width int) [][]float64 {
	length := 0
	for _, s := range series {
		length = max(length, len(s))
	}
	out := make([][]float64, len(series))
	for i, s := range series {
		padded := make([]float64, length)
		copy(padded, s)
		for j := len(s); j < length; j++ {
			padded[j] = math.NaN()
		}
		out[i] = resample(padded, width)
	}
	return out
}
