package report

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// wrapLines splits text into lines whose measured width stays within
// maxWidth, using a greedy word fill against the font currently set on
// the document. A single word wider than maxWidth becomes its own line
// rather than being dropped.
func wrapLines(pdf *gofpdf.Fpdf, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 1)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if pdf.GetStringWidth(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
