package color

import "strings"

// Format is one named string form of a color.
type Format struct {
	Name  string
	Value string
}

// FormatNames lists the formats in display order.
var FormatNames = []string{"HEX", "RGB", "HSL", "ARGB"}

// Formats returns every display form of s in FormatNames order.
func Formats(s string) []Format {
	return []Format{
		{Name: "HEX", Value: HexString(s)},
		{Name: "RGB", Value: RGBString(s)},
		{Name: "HSL", Value: HSLString(s)},
		{Name: "ARGB", Value: ARGBString(s)},
	}
}

// FormatByName looks up one form of s by name, ignoring case.
func FormatByName(s, name string) (Format, bool) {
	for _, f := range Formats(s) {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Format{}, false
}
