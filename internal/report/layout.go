package report

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/storeline/audit-backend/internal/pkg/sanitize"
)

// Page geometry and type scale, in points.
const (
	pageMargin = 40.0

	baseFontSize   = 11.0
	baseLineHeight = 16.0

	headingFontSize = 14.0
	headingLead     = 26.0

	captionFontSize   = 9.0
	captionLineHeight = 13.0
)

// layout owns the page, margin and vertical-cursor state for one
// document build. Every page-break decision flows through here, with the
// single exception of the image block renderer's larger reserved-space
// rule. The cursor tracks the top edge of the next block to draw.
type layout struct {
	pdf    *gofpdf.Fpdf
	family string

	pageW  float64
	pageH  float64
	margin float64
	y      float64
}

func newLayout(pdf *gofpdf.Fpdf, family string) *layout {
	w, h := pdf.GetPageSize()
	return &layout{
		pdf:    pdf,
		family: family,
		pageW:  w,
		pageH:  h,
		margin: pageMargin,
	}
}

func (l *layout) contentWidth() float64 {
	return l.pageW - 2*l.margin
}

func (l *layout) contentHeight() float64 {
	return l.pageH - 2*l.margin
}

// newPage starts a fresh page and resets the cursor to the top margin.
func (l *layout) newPage() {
	l.pdf.AddPage()
	l.y = l.margin
}

// ensureSpace starts a new page when the current one cannot fit another
// needed points of content above the bottom margin.
func (l *layout) ensureSpace(needed float64) {
	if l.pdf.PageCount() == 0 {
		l.newPage()
		return
	}
	if l.y+needed > l.pageH-l.margin {
		l.newPage()
	}
}

// setFont applies a font style and color for subsequent drawing.
func (l *layout) setFont(style string, size float64, c Color) {
	l.pdf.SetFont(l.family, style, size)
	l.pdf.SetTextColor(c.R, c.G, c.B)
}

// line draws one wrapped block of text at the cursor. A block that fits
// on one page is kept together and breaks before drawing; a block taller
// than a whole page is drawn in page-sized chunks so every line lands
// inside some page's content box. Text is sanitized here so the PDF
// layer never sees an unsafe rune.
func (l *layout) line(text, style string, size float64, c Color) {
	text = sanitize.String(text)
	l.setFont(style, size, c)

	lines := wrapLines(l.pdf, text, l.contentWidth())
	if needed := float64(len(lines)) * baseLineHeight; needed <= l.contentHeight() {
		l.ensureSpace(needed)
	} else {
		l.ensureSpace(baseLineHeight)
	}

	for _, line := range lines {
		if l.y+baseLineHeight > l.pageH-l.margin {
			l.newPage()
		}
		l.pdf.Text(l.margin, l.y+size, line)
		l.y += baseLineHeight
	}
}

// heading draws a bold section heading.
func (l *layout) heading(text string) {
	l.ensureSpace(headingLead + baseLineHeight)
	l.setFont("B", headingFontSize, colorBlack)
	l.pdf.Text(l.margin, l.y+headingFontSize, sanitize.String(text))
	l.y += headingLead
}

// labelValue draws a "label: value" line with the value's color applied
// to the whole line.
func (l *layout) labelValue(label, value string, c Color) {
	l.line(label+": "+value, "", baseFontSize, c)
}

// gap advances the cursor without drawing. Any overflow is resolved by
// the next ensureSpace call.
func (l *layout) gap(h float64) {
	l.y += h
}
