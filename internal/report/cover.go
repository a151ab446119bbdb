package report

import (
	"time"

	"github.com/storeline/audit-backend/internal/pkg/sanitize"
)

const (
	coverTitle = "Audit Report"

	coverTitleY    = 140.0
	coverRowsTop   = 220.0
	coverRowLead   = 30.0
	coverLabelCol  = 120.0
	coverTitleSize = 22.0
)

// coverData is the metadata drawn on the cover page. Note the absence of
// any machine identifier: the audit id is storage-path material only.
type coverData struct {
	FileName    string
	StoreName   string
	Template    string
	Reporter    string
	StartedAt   *time.Time
	SubmittedAt *time.Time
}

// drawCover renders the fixed-layout metadata page as the document's
// first page.
func drawCover(l *layout, data coverData) {
	l.newPage()

	l.setFont("B", coverTitleSize, colorBlack)
	titleW := l.pdf.GetStringWidth(coverTitle)
	l.pdf.Text((l.pageW-titleW)/2, coverTitleY, coverTitle)

	rows := []struct {
		label string
		value string
	}{
		{"File", data.FileName},
		{"Store", orMissing(data.StoreName)},
		{"Template", orMissing(data.Template)},
		{"Reporter", orMissing(data.Reporter)},
		{"Started", humanDate(data.StartedAt)},
		{"Submitted", humanDate(data.SubmittedAt)},
	}

	y := coverRowsTop
	for _, row := range rows {
		l.setFont("B", baseFontSize, colorBlack)
		l.pdf.Text(l.margin, y, row.label)
		l.setFont("", baseFontSize, colorBlack)
		l.pdf.Text(l.margin+coverLabelCol, y, sanitize.String(row.value))
		y += coverRowLead
	}
	l.y = y
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}
