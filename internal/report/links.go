package report

import "github.com/jung-kurt/gofpdf"

// attachLink adds a clickable rectangle pointing at url to the current
// page's annotation list. A document already in an error state is left
// alone: a missing hyperlink is cosmetic, never fatal.
func attachLink(pdf *gofpdf.Fpdf, x, y, w, h float64, url string) {
	if pdf.Err() || url == "" {
		return
	}
	pdf.LinkString(x, y, w, h, url)
}
