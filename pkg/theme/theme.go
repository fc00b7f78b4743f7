// Package theme supplies terminal color palettes shaped for asciichart:
// per-series SGR wrapper strings for the Colors option, matching hex values
// for lipgloss styling of legends and surrounding text.
package theme

import "github.com/charmbracelet/lipgloss"

// Reset clears any series color. It is the final entry of every wrapper
// list returned by Wrappers.
const Reset = "\033[0m"

// Palette is a named list of series colors. Hex holds #RRGGBB values for
// lipgloss styling; Prefixes holds the matching raw SGR sequences emitted
// into chart output. Both slices run in parallel.
type Palette struct {
	Name     string
	Hex      []string
	Prefixes []string
}

// Default returns Paul Tol's colorblind-safe qualitative palette, with
// 256-color approximations for the SGR prefixes.
func Default() Palette {
	return Palette{
		Name: "default",
		Hex: []string{
			"#4477AA", "#EE6677", "#228833", "#CCBB44", "#66CCEE",
			"#AA3377", "#BBBBBB", "#EE8866", "#44BB99", "#FFAABB",
		},
		Prefixes: []string{
			"\033[38;5;67m", "\033[38;5;204m", "\033[38;5;29m",
			"\033[38;5;179m", "\033[38;5;81m", "\033[38;5;132m",
			"\033[38;5;250m", "\033[38;5;209m", "\033[38;5;72m",
			"\033[38;5;217m",
		},
	}
}

// ANSI returns the basic 8-color palette for terminals without 256-color
// support.
func ANSI() Palette {
	return Palette{
		Name: "ansi",
		Hex: []string{
			"#0000EE", "#CD0000", "#00CD00", "#CDCD00",
			"#00CDCD", "#CD00CD", "#E5E5E5", "#7F7F7F",
		},
		Prefixes: []string{
			"\033[34m", "\033[31m", "\033[32m", "\033[33m",
			"\033[36m", "\033[35m", "\033[37m", "\033[90m",
		},
	}
}

// Mono returns the colorless palette. Its wrappers are empty strings, so
// charts rendered with it carry no escape sequences at all.
func Mono() Palette {
	return Palette{Name: "mono"}
}

// ByName resolves a palette from its name, falling back to Default for
// anything unrecognised.
func ByName(name string) Palette {
	switch name {
	case "ansi":
		return ANSI()
	case "mono":
		return Mono()
	default:
		return Default()
	}
}

// Wrappers returns n per-series color prefixes plus the reset sequence as
// the final entry, the exact shape asciichart.Colors expects. Series beyond
// the palette size cycle. For Mono every entry is empty, which asciichart
// treats as no coloring.
func (p Palette) Wrappers(n int) []string {
	if n < 0 {
		n = 0
	}
	out := make([]string, n+1)
	if len(p.Prefixes) == 0 {
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = p.Prefixes[i%len(p.Prefixes)]
	}
	out[n] = Reset
	return out
}

// Style returns a lipgloss style in series i's color, cycling the palette.
// Mono yields the unstyled zero style.
func (p Palette) Style(i int) lipgloss.Style {
	if len(p.Hex) == 0 {
		return lipgloss.NewStyle()
	}
	if i < 0 {
		i = -i
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Hex[i%len(p.Hex)]))
}
