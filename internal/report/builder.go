// Package report composes audit inspection records into paginated PDF
// documents: cover page, per-section question blocks with colorized
// answers, embedded photographs with clickable source captions, and a
// trailing photos appendix.
package report

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/storeline/audit-backend/internal/entity"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontFamily is the internal name used by gofpdf for the UTF-8
	// capable font registered in regular and bold styles.
	pdfFontFamily = "DejaVuSans"

	// In the Docker runtime fonts are copied to /app/ttf, so the
	// compiled binary sees ./ttf/*.ttf; the source-relative paths cover
	// `go run` from the repo root.
	fontRegularRuntimePath = "ttf/DejaVuSans.ttf"
	fontBoldRuntimePath    = "ttf/DejaVuSans-Bold.ttf"
	fontRegularSourcePath  = "internal/report/ttf/DejaVuSans.ttf"
	fontBoldSourcePath     = "internal/report/ttf/DejaVuSans-Bold.ttf"
)

// Builder turns a decoded audit into a finished document. It performs no
// I/O: every image must already be normalized onto the payload.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the whole document and serializes it. baseFileName, when
// empty, is derived from the resolved store name and the submission
// date. Rendering failures for individual images degrade to placeholders
// inside the renderers; only font registration and serialization
// failures surface here.
func (b *Builder) Build(audit *entity.Audit, baseFileName string) (*entity.GeneratedDocument, error) {
	if audit == nil {
		return nil, entity.ErrEmptyPayload
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	family := registerFonts(pdf)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: register fonts: %v", entity.ErrBuildFailed, err)
	}

	storeName := resolveStoreName(audit.StoreCandidates)
	if baseFileName == "" {
		baseFileName = reportFileName(storeName, audit.SubmittedAt, time.Now().UTC())
	}
	fileName := baseFileName + pdfFileExtension
	pdf.SetTitle(fileName, true)

	l := newLayout(pdf, family)
	ir := newImageRenderer(l)

	drawCover(l, coverData{
		FileName:    fileName,
		StoreName:   storeName,
		Template:    audit.TemplateName,
		Reporter:    audit.ReporterName,
		StartedAt:   audit.StartedAt,
		SubmittedAt: audit.SubmittedAt,
	})
	drawSections(l, ir, audit.Sections)
	drawAppendix(l, ir, audit.ExtraImages)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: serialize: %v", entity.ErrBuildFailed, err)
	}

	return &entity.GeneratedDocument{
		Bytes:    buf.Bytes(),
		FileName: fileName,
	}, nil
}

func (b *Builder) ContentType() string {
	return pdfContentType
}

// registerFonts registers the bundled UTF-8 font in regular and bold
// styles under one family, falling back to the core Helvetica when the
// TTF files are not present.
func registerFonts(pdf *gofpdf.Fpdf) string {
	regular := resolveFontPath(fontRegularRuntimePath, fontRegularSourcePath)
	if regular == "" {
		return "Helvetica"
	}

	bold := resolveFontPath(fontBoldRuntimePath, fontBoldSourcePath)
	if bold == "" {
		bold = regular
	}

	pdf.AddUTF8Font(pdfFontFamily, "", regular)
	pdf.AddUTF8Font(pdfFontFamily, "B", bold)
	return pdfFontFamily
}

func resolveFontPath(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
