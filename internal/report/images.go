package report

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"github.com/storeline/audit-backend/internal/entity"
	"github.com/storeline/audit-backend/internal/pkg/sanitize"
)

const (
	// imageBlockMin is the vertical budget an image block must find on
	// the current page before drawing starts, caption included.
	imageBlockMin = 220.0

	imageCaptionGap   = 6.0
	imageBlockGap     = 14.0
	placeholderHeight = 120.0
	captionMaxRunes   = 100
)

// imageRenderer places normalized images into the flowing layout. It is
// the one component besides the layout itself allowed to start pages,
// because image heights vary too much for the shared line-based rule.
type imageRenderer struct {
	l   *layout
	seq int
}

func newImageRenderer(l *layout) *imageRenderer {
	return &imageRenderer{l: l}
}

// drawAll renders every image reference in order. A reference whose
// normalization failed, or whose bytes turn out undecodable, gets a
// neutral placeholder; sibling images are never affected.
func (r *imageRenderer) drawAll(refs []entity.ImageRef) {
	for _, ref := range refs {
		r.drawOne(ref)
	}
}

func (r *imageRenderer) drawOne(ref entity.ImageRef) {
	l := r.l

	if l.pdf.PageCount() == 0 || l.y+imageBlockMin > l.pageH-l.margin {
		l.newPage()
	}

	if ref.Entry == nil {
		r.placeholder(ref.URL)
		return
	}

	img, _, err := image.Decode(bytes.NewReader(ref.Entry.Bytes))
	if err != nil || img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		r.placeholder(ref.URL)
		return
	}

	srcW := float64(img.Bounds().Dx())
	srcH := float64(img.Bounds().Dy())

	// Fit the content width, aspect locked; very tall images shrink
	// further so image plus caption fit on one page.
	drawW := l.contentWidth()
	drawH := drawW * srcH / srcW
	maxH := l.contentHeight() - captionLineHeight - imageCaptionGap
	if drawH > maxH {
		drawH = maxH
		drawW = drawH * srcW / srcH
	}

	if l.y+drawH+imageCaptionGap+captionLineHeight > l.pageH-l.margin {
		l.newPage()
	}

	r.seq++
	name := fmt.Sprintf("audit-img-%03d", r.seq)
	opts := gofpdf.ImageOptions{ImageType: imageType(ref.Entry.Format)}
	l.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(ref.Entry.Bytes))
	l.pdf.ImageOptions(name, l.margin, l.y, drawW, drawH, false, opts, 0, "")
	l.y += drawH + imageCaptionGap

	r.caption(ref.URL)
	l.gap(imageBlockGap)
}

// caption draws the truncated source URL in link color and attaches a
// clickable annotation exactly over the rendered text, pointing at the
// untruncated URL.
func (r *imageRenderer) caption(url string) {
	l := r.l

	text := sanitize.String(url)
	if len(text) > captionMaxRunes {
		text = text[:captionMaxRunes] + "..."
	}

	l.setFont("", captionFontSize, colorLink)
	width := l.pdf.GetStringWidth(text)
	l.pdf.Text(l.margin, l.y+captionFontSize, text)
	attachLink(l.pdf, l.margin, l.y, width, captionFontSize+2, url)
	l.y += captionLineHeight
}

// placeholder draws a neutral box where an image should have been.
func (r *imageRenderer) placeholder(url string) {
	l := r.l

	l.pdf.SetDrawColor(colorGrey.R, colorGrey.G, colorGrey.B)
	l.pdf.SetFillColor(240, 240, 240)
	l.pdf.Rect(l.margin, l.y, l.contentWidth(), placeholderHeight, "FD")

	l.setFont("", baseFontSize, colorGrey)
	label := "Image unavailable"
	x := l.margin + (l.contentWidth()-l.pdf.GetStringWidth(label))/2
	l.pdf.Text(x, l.y+placeholderHeight/2+baseFontSize/2, label)
	l.y += placeholderHeight + imageCaptionGap

	if url != "" {
		r.caption(url)
	}
	l.gap(imageBlockGap)
}

func imageType(f entity.ImageFormat) string {
	if f == entity.ImageFormatPNG {
		return "PNG"
	}
	return "JPEG"
}
