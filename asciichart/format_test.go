package asciichart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFixedFormat_PadsToColumnWidth(t *testing.T) {
	t.Parallel()

	f := FixedFormat(8, 2)
	assert.Equal(t, "    3.00 ", f(3))
	assert.Equal(t, "   -1.50 ", f(-1.5))
	assert.Equal(t, " 1234.57 ", f(1234.567))
}

func TestFixedFormat_HonoursWidthAndPrecision(t *testing.T) {
	t.Parallel()

	f := FixedFormat(10, 3)
	assert.Equal(t, "     2.500 ", f(2.5))
}

func TestLocalizedFormat_UsesLocaleSeparators(t *testing.T) {
	t.Parallel()

	de := LocalizedFormat(language.German, 8, 2)
	assert.Equal(t, "    3,00 ", de(3))
	assert.Equal(t, "1.234,50 ", de(1234.5))

	en := LocalizedFormat(language.AmericanEnglish, 8, 2)
	assert.Equal(t, "1,234.50 ", en(1234.5))
}
