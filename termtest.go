package main

import (
	"fmt"
	"math"

	"github.com/kroitor/ascii-chart/asciichart"
	"github.com/kroitor/ascii-chart/pkg/theme"
)

// Visual check for chart output. Run it in the terminal you plan to chart
// into; every section should look clean before trusting colored output there.
func main() {
	fmt.Println("--- Chart Glyph Test ---")
	fmt.Println("Note: if any cell below shows a replacement box, your font is missing")
	fmt.Println("box-drawing glyphs; switch to ASCIISymbols for that terminal.")
	fmt.Println()

	def := asciichart.DefaultSymbols()
	fmt.Println("Box drawing:", def.Origin, def.Tick, def.Resume, def.Break, def.Flat,
		def.UpRight, def.DownRight, def.DownLeft, def.UpLeft, def.Vertical)
	asc := asciichart.ASCIISymbols()
	fmt.Println("ASCII only: ", asc.Origin, asc.Tick, asc.Resume, asc.Break, asc.Flat,
		asc.UpRight, asc.DownRight, asc.DownLeft, asc.UpLeft, asc.Vertical)
	fmt.Println()

	wave := make([]float64, 48)
	for i := range wave {
		wave[i] = 5 * math.Sin(float64(i)*math.Pi/12)
	}

	fmt.Println("--- Uncolored Chart ---")
	out, _ := asciichart.Plot(wave, asciichart.Height(6))
	fmt.Println(out)
	fmt.Println()

	fmt.Println("--- Palette Swatches ---")
	fmt.Println("If you see raw escape codes (like '[38;5;67m'), the terminal is not")
	fmt.Println("interpreting SGR sequences; use the mono palette there.")
	for _, p := range []theme.Palette{theme.Default(), theme.ANSI()} {
		fmt.Printf("%-8s ", p.Name+":")
		for _, prefix := range p.Prefixes {
			fmt.Print(prefix + "██" + theme.Reset + " ")
		}
		fmt.Println()
	}
	fmt.Println()

	fmt.Println("--- Colored Charts ---")
	shifted := make([]float64, len(wave))
	for i := range wave {
		shifted[i] = 5 * math.Cos(float64(i)*math.Pi/12)
	}
	for _, name := range []string{"default", "ansi"} {
		p := theme.ByName(name)
		fmt.Printf("%s palette:\n", p.Name)
		out, _ := asciichart.PlotMany(
			[][]float64{wave, shifted},
			asciichart.Height(6),
			asciichart.Colors(p.Wrappers(2)...),
		)
		fmt.Println(out)
		fmt.Println()
	}

	fmt.Println("--- Test Complete ---")
}
