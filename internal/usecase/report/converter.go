package report

import (
	"time"

	"github.com/storeline/audit-backend/internal/entity"
	"github.com/storeline/audit-backend/internal/pkg/sanitize"
)

// toEntityAudit converts the wire payload into the strict domain model.
// Every displayable string is sanitized here, once, at the boundary.
// Image URLs stay untouched: they are fetched, not drawn (captions are
// sanitized at draw time).
func toEntityAudit(req *entity.AuditRequest) *entity.Audit {
	audit := &entity.Audit{
		ID:              sanitize.String(req.ID),
		StoreCandidates: sanitize.Strings([]string{req.Store, req.StoreName, req.Location}),
		TemplateName:    sanitize.String(firstNonEmpty(req.TemplateRef, req.Template)),
		ReporterName:    sanitize.String(firstNonEmpty(req.Reporter, req.SubmittedBy, req.UserName)),
		StartedAt:       parseTimestamp(req.StartedAt),
		SubmittedAt:     parseTimestamp(req.SubmittedAt),
	}

	for _, s := range req.Sections {
		section := entity.Section{Title: sanitize.String(s.Title)}
		for _, q := range s.Questions {
			section.Questions = append(section.Questions, toEntityQuestion(q))
		}
		audit.Sections = append(audit.Sections, section)
	}

	for _, u := range dedupeURLs(req.Images) {
		audit.ExtraImages = append(audit.ExtraImages, entity.ImageRef{URL: u})
	}

	return audit
}

func toEntityQuestion(q entity.QuestionRequest) entity.Question {
	question := entity.Question{
		Code:       sanitize.String(q.Code),
		Prompt:     sanitize.String(q.Prompt),
		AnswerType: entity.AnswerType(q.AnswerType),
	}

	if q.Answer != nil {
		question.Answer = &entity.Answer{
			Bool:  q.Answer.ValueBool,
			Score: q.Answer.ValueNum,
			Text:  sanitize.String(q.Answer.ValueText),
			Notes: sanitize.String(q.Answer.Notes),
		}
	}

	for _, u := range collectImageURLs(q) {
		question.Images = append(question.Images, entity.ImageRef{URL: u})
	}

	return question
}

// timestampLayouts are tried in order; the dashboard has sent all of
// these shapes at one point or another.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp returns nil for empty or unparseable input; the cover
// renders those as a dash.
func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
