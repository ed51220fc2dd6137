// Package color converts hex color strings into the RGB, HSL and ARGB forms
// shown by huepick. Every function is pure; invalid input produces the
// documented fallback instead of an error, so callers validate with IsValid
// before storing anything.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// IsValid reports whether s is "#" followed by exactly 3 or 6 hex digits.
func IsValid(s string) bool {
	return hexPattern.MatchString(s)
}

// Normalize expands the 3-digit shorthand "#abc" to "#aabbcc".
// Any other input is returned unchanged.
func Normalize(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// ToRGB parses s into its channels. Invalid input yields black.
func ToRGB(s string) RGB {
	if !IsValid(s) {
		return RGB{}
	}
	n, err := strconv.ParseUint(Normalize(s)[1:], 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}
}

// Hex returns the channels as an uppercase "#RRGGBB" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexString returns the display form of s, e.g. "#abc" -> "#AABBCC".
func HexString(s string) string {
	return ToRGB(s).Hex()
}

// RGBString returns s as "rgb(r, g, b)".
func RGBString(s string) string {
	c := ToRGB(s)
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ARGBString returns s as "#FFRRGGBB" with the alpha channel forced opaque.
func ARGBString(s string) string {
	return "#FF" + strings.TrimPrefix(ToRGB(s).Hex(), "#")
}
