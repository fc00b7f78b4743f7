package asciichart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolSet_KeepsDefaults_When_PartiallyOverridden(t *testing.T) {
	t.Parallel()

	merged := SymbolSet{Flat: "="}.merged()
	assert.Equal(t, "=", merged.Flat)
	assert.Equal(t, "┤", merged.Tick)
	assert.Equal(t, "┼", merged.Origin)
	assert.Equal(t, "╰", merged.UpRight)
	assert.Equal(t, "│", merged.Vertical)
}

func TestPlot_UsesOverriddenGlyph_When_SingleSymbolReplaced(t *testing.T) {
	t.Parallel()

	got, err := Plot([]float64{7, 7, 7}, Symbols(SymbolSet{Flat: "="}))
	require.NoError(t, err)
	assert.Equal(t, "    7.00  ┼==", got)
}

func TestPlot_DrawsSevenBitChart_When_ASCIISymbolsSet(t *testing.T) {
	t.Parallel()

	got, err := Plot([]float64{1, 2, 1}, Symbols(ASCIISymbols()))
	require.NoError(t, err)

	want := strings.Join([]string{
		"    2.00  +..",
		"    1.00  +''",
	}, "\n")
	assert.Equal(t, want, got)

	for _, r := range got {
		assert.Less(t, int(r), 128, "glyph %q is not 7-bit", string(r))
	}
}
