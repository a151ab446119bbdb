package report

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R, G, B int
}

var (
	colorBlack  = Color{33, 33, 33}
	colorGrey   = Color{128, 128, 128}
	colorGreen  = Color{46, 125, 50}
	colorRed    = Color{198, 40, 40}
	colorOrange = Color{230, 126, 34}
	colorLink   = Color{21, 101, 192}
)

// YesNo maps a boolean answer to its display text and color. A missing
// answer renders as a grey "N/A".
func YesNo(value *bool) (string, Color) {
	switch {
	case value == nil:
		return "N/A", colorGrey
	case *value:
		return "Yes", colorGreen
	default:
		return "No", colorRed
	}
}

// Rating maps a numeric score to its band color. The bands are a
// threshold ladder with cut points at 0, 2 and 4: anything at or below
// zero is grey, 1-2 red, 3-4 orange, 5 and up green.
func Rating(value float64) Color {
	switch {
	case value <= 0:
		return colorGrey
	case value <= 2:
		return colorRed
	case value <= 4:
		return colorOrange
	default:
		return colorGreen
	}
}
