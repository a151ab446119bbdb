package report

import (
	"strconv"

	"github.com/storeline/audit-backend/internal/entity"
)

const (
	// scorePassThreshold derives the pass/fail verdict shown next to a
	// numeric score; it lines up with the red/orange band boundary.
	scorePassThreshold = 3.0

	questionGap = 10.0
)

var colorNotes = Color{97, 97, 97}

// drawSections walks the audit content in order: a heading per section,
// then each question with its colorized answer, notes and photographs.
func drawSections(l *layout, ir *imageRenderer, sections []entity.Section) {
	for _, section := range sections {
		l.heading(section.Title)
		for _, question := range section.Questions {
			drawQuestion(l, ir, question)
		}
	}
}

func drawQuestion(l *layout, ir *imageRenderer, q entity.Question) {
	title := q.Prompt
	if q.Code != "" {
		title = q.Code + " - " + q.Prompt
	}
	l.line(title, "B", baseFontSize, colorBlack)

	switch q.AnswerType {
	case entity.AnswerTypeBinary:
		var value *bool
		if q.Answer != nil {
			value = q.Answer.Bool
		}
		text, c := YesNo(value)
		l.labelValue("Answer", text, c)

	case entity.AnswerTypeScore:
		if q.Answer != nil && q.Answer.Score != nil {
			score := *q.Answer.Score
			pass := score >= scorePassThreshold
			text, c := YesNo(&pass)
			l.labelValue("Answer", text, c)
			l.labelValue("Score", strconv.FormatFloat(score, 'f', -1, 64), Rating(score))
		} else {
			text, c := YesNo(nil)
			l.labelValue("Answer", text, c)
			l.labelValue("Score", missingValue, colorGrey)
		}

	default: // text, photo, images
		value, c := missingValue, colorGrey
		if q.Answer != nil && q.Answer.Text != "" {
			value, c = q.Answer.Text, colorBlack
		}
		l.labelValue("Answer", value, c)
	}

	if q.Answer != nil && q.Answer.Notes != "" {
		l.labelValue("Notes", q.Answer.Notes, colorNotes)
	}

	if len(q.Images) > 0 {
		l.gap(4)
		ir.drawAll(q.Images)
	}

	l.gap(questionGap)
	l.ensureSpace(2 * baseLineHeight)
}

// drawAppendix renders audit-level photographs that belong to no
// particular question on their own trailing pages.
func drawAppendix(l *layout, ir *imageRenderer, images []entity.ImageRef) {
	if len(images) == 0 {
		return
	}
	l.newPage()
	l.heading("Photos")
	ir.drawAll(images)
}
