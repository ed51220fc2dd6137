package color

const (
	Black = "#000000"
	White = "#FFFFFF"
)

// Contrast returns black or white, whichever stays legible on top of s.
// The choice uses the YIQ luma threshold of 128.
func Contrast(s string) string {
	c := ToRGB(s)
	luma := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	// integer division floors, which matches a >= 128 test on the exact value
	if luma >= 128 {
		return Black
	}
	return White
}
