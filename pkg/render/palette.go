package render

import (
	"image/color"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/bloom/pkg/errors"
)

// Stroke widths and marker sizes in user units.
const (
	VeinWidth     = 0.8
	LogoVeinWidth = 1.4
	DotRadius     = 2.0
	LogoDotRadius = 4.0
)

// FontFamily is the caption font stack.
const FontFamily = "'MiriMedium', 'Heebo', sans-serif"

// Palette holds the fill and stroke colours as "#rrggbb" strings.
type Palette struct {
	Petal    string
	Vein     string
	LogoVein string
	Dark     string // overlap shading and center marker
	Text     string
}

// DefaultPalette returns the greens the flower was designed with.
func DefaultPalette() Palette {
	return Palette{
		Petal:    "#6bbf59",
		Vein:     "#5aaa4a",
		LogoVein: "#4a9a3a",
		Dark:     "#3a7d44",
		Text:     "#3a5a30",
	}
}

// Validate checks that every colour parses.
func (p Palette) Validate() error {
	fields := []struct{ name, hex string }{
		{"petal", p.Petal}, {"vein", p.Vein}, {"logo_vein", p.LogoVein}, {"dark", p.Dark}, {"text", p.Text},
	}
	for _, f := range fields {
		if _, err := ParseColor(f.hex); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette.%s", f.name)
		}
	}
	return nil
}

// ParseColor parses a "#rgb" or "#rrggbb" colour into an opaque RGBA value.
// Anything else, including trailing characters, is rejected: palette values
// end up in SVG attributes.
func ParseColor(hex string) (color.RGBA, error) {
	if !isHexColor(hex) {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidInput, "invalid colour %q (want #rgb or #rrggbb)", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid colour %q", hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func isHexColor(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return false
		}
	}
	return true
}
