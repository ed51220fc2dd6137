package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color in hue/saturation/lightness form, rounded to whole units.
// H is in degrees [0,360); S and L are percentages [0,100].
type HSL struct {
	H, S, L int
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ToHSL converts s to HSL. Invalid input yields HSL{0, 0, 0}.
// Saturation and lightness come from go-colorful; the hue is computed from
// the channel fractions so that .5 ties round the same way everywhere.
func ToHSL(s string) HSL {
	c := ToRGB(s)
	_, sat, l := c.colorful().Hsl()

	hue := int(math.Round(hueFraction(c) * 360))
	if hue >= 360 {
		hue -= 360
	}
	return HSL{
		H: hue,
		S: int(math.Round(sat * 100)),
		L: int(math.Round(l * 100)),
	}
}

// hueFraction returns the hue of c as a fraction of a full turn, in [0,1].
func hueFraction(c RGB) float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	d := hi - lo
	if d == 0 {
		return 0
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

// HSLString returns s as "hsl(h°, s%, l%)".
func HSLString(s string) string {
	c := ToHSL(s)
	return fmt.Sprintf("hsl(%d°, %d%%, %d%%)", c.H, c.S, c.L)
}

// Blend interpolates between a and b in RGB space; t=0 gives a, t=1 gives b.
// The result is a lowercase "#rrggbb" string.
func Blend(a, b string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	return ToRGB(a).colorful().BlendRgb(ToRGB(b).colorful(), t).Clamped().Hex()
}
