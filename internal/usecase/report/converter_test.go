package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeline/audit-backend/internal/entity"
)

func TestToEntityAuditSanitizesStrings(t *testing.T) {
	req := &entity.AuditRequest{
		ID:        "audit-1",
		Store:     "Café – North",
		Template:  "Daily “Opening”",
		Reporter:  "J. ‘Moss’",
		StartedAt: "2024-08-05T09:00:00Z",
		Sections: []entity.SectionRequest{
			{
				Title: "Safety ≥ basics",
				Questions: []entity.QuestionRequest{
					{
						Code:       "S1",
						Prompt:     "Price £3.50 visible?",
						AnswerType: "text",
						Answer:     &entity.AnswerRequest{ValueText: "yes — clearly", Notes: "check…"},
					},
				},
			},
		},
	}

	audit := toEntityAudit(req)

	assert.Equal(t, "Caf? - North", audit.StoreCandidates[0])
	assert.Equal(t, `Daily "Opening"`, audit.TemplateName)
	assert.Equal(t, "J. 'Moss'", audit.ReporterName)
	assert.Equal(t, "Safety >= basics", audit.Sections[0].Title)

	q := audit.Sections[0].Questions[0]
	assert.Equal(t, "Price GBP 3.50 visible?", q.Prompt)
	assert.Equal(t, "yes - clearly", q.Answer.Text)
	assert.Equal(t, "check...", q.Answer.Notes)
}

func TestToEntityAuditFieldFallbacks(t *testing.T) {
	req := &entity.AuditRequest{
		TemplateRef: "Named Template",
		Template:    "template-uuid",
		SubmittedBy: "A. Kay",
	}

	audit := toEntityAudit(req)
	assert.Equal(t, "Named Template", audit.TemplateName)
	assert.Equal(t, "A. Kay", audit.ReporterName)
}

func TestToEntityQuestionImageRefs(t *testing.T) {
	q := toEntityQuestion(entity.QuestionRequest{
		Code:       "P1",
		Prompt:     "Photo of entrance",
		AnswerType: "photo",
		Answer: &entity.AnswerRequest{
			PhotoURL: "https://m.example.com/entrance.jpg",
			Photos:   []string{"https://m.example.com/entrance2.jpg"},
		},
	})

	require.Len(t, q.Images, 2)
	assert.Equal(t, "https://m.example.com/entrance.jpg", q.Images[0].URL)
	assert.Nil(t, q.Images[0].Entry, "entries are resolved later by the normalizer")
}

func TestParseTimestamp(t *testing.T) {
	ts := parseTimestamp("2024-08-05T10:00:00Z")
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2024, 8, 5, 10, 0, 0, 0, time.UTC), ts.UTC())

	assert.NotNil(t, parseTimestamp("2024-08-05"))
	assert.NotNil(t, parseTimestamp("2024-08-05 10:00:00"))
	assert.Nil(t, parseTimestamp(""))
	assert.Nil(t, parseTimestamp("not a date"))
}
