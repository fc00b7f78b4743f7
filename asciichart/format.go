package asciichart

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LabelFormatter renders one axis value as a label. The renderer applies it
// verbatim: whatever string it returns is what lands in the label column, so
// formatters control both the number style and the gap before the tick.
type LabelFormatter func(value float64) string

// FixedFormat returns a formatter producing right-aligned fixed-point labels
// of the given column width, followed by one space. FixedFormat(8, 2) is the
// default chart formatter and turns 3 into "    3.00 ".
func FixedFormat(width, precision int) LabelFormatter {
	return func(v float64) string {
		return fmt.Sprintf("%*.*f ", width, precision, v)
	}
}

// LocalizedFormat is FixedFormat with digits, decimal marks and grouping
// rendered for the given locale. LocalizedFormat(language.German, 8, 2)
// turns 1234.5 into " 1.234,50 ".
func LocalizedFormat(tag language.Tag, width, precision int) LabelFormatter {
	p := message.NewPrinter(tag)
	verb := fmt.Sprintf("%%%d.%df ", width, precision)
	return func(v float64) string {
		return p.Sprintf(verb, v)
	}
}
