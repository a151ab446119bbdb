package report

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeline/audit-backend/internal/entity"
)

func boolPtr(v bool) *bool          { return &v }
func floatPtr(v float64) *float64   { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func sampleAudit() *entity.Audit {
	submitted, _ := time.Parse(time.RFC3339, "2024-08-05T10:00:00Z")
	return &entity.Audit{
		ID:              "d2b0a7c1-1111-2222-3333-444455556666",
		StoreCandidates: []string{"Cheetham Hill"},
		TemplateName:    "Daily Opening",
		ReporterName:    "J. Moss",
		SubmittedAt:     timePtr(submitted),
		Sections: []entity.Section{
			{
				Title: "Safety",
				Questions: []entity.Question{
					{
						Code:       "S1",
						Prompt:     "Extinguisher present?",
						AnswerType: entity.AnswerTypeBinary,
						Answer:     &entity.Answer{Bool: boolPtr(true)},
					},
				},
			},
		},
	}
}

func TestBuildEndToEnd(t *testing.T) {
	doc, err := NewBuilder().Build(sampleAudit(), "")

	require.NoError(t, err)
	assert.Equal(t, "Audit_Cheetham_Hill_050824.pdf", doc.FileName)
	assert.True(t, bytes.HasPrefix(doc.Bytes, []byte("%PDF")))
}

func TestBuildNilPayload(t *testing.T) {
	_, err := NewBuilder().Build(nil, "")
	assert.ErrorIs(t, err, entity.ErrEmptyPayload)
}

func TestBuildExplicitFileName(t *testing.T) {
	doc, err := NewBuilder().Build(sampleAudit(), "Audit_Custom")

	require.NoError(t, err)
	assert.Equal(t, "Audit_Custom.pdf", doc.FileName)
}

func TestBuildWithAllAnswerKinds(t *testing.T) {
	audit := sampleAudit()
	audit.Sections = append(audit.Sections, entity.Section{
		Title: "Stock",
		Questions: []entity.Question{
			{
				Code:       "K1",
				Prompt:     "Shelf rating",
				AnswerType: entity.AnswerTypeScore,
				Answer:     &entity.Answer{Score: floatPtr(4), Notes: "restock ≥5 items"},
			},
			{
				Code:       "K2",
				Prompt:     "Comments",
				AnswerType: entity.AnswerTypeText,
				Answer:     &entity.Answer{Text: "All good — nothing to report"},
			},
			{
				Code:       "K3",
				Prompt:     "Unanswered score",
				AnswerType: entity.AnswerTypeScore,
			},
			{
				Code:       "K4",
				Prompt:     "Back door photo",
				AnswerType: entity.AnswerTypePhoto,
				Images: []entity.ImageRef{
					{
						URL: "https://media.example.com/objects/door.png",
						Entry: &entity.ImageEntry{
							Format:    entity.ImageFormatPNG,
							Bytes:     pngBytes(t, 320, 200),
							SourceURL: "https://media.example.com/objects/door.png",
						},
					},
				},
			},
		},
	})

	doc, err := NewBuilder().Build(audit, "")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Bytes)
}

func TestBuildUnreachableImageGetsPlaceholder(t *testing.T) {
	audit := sampleAudit()
	audit.Sections[0].Questions[0].Images = []entity.ImageRef{
		{URL: "https://media.example.com/objects/missing.jpg", Entry: nil},
	}

	doc, err := NewBuilder().Build(audit, "")
	require.NoError(t, err, "a failed image must degrade to a placeholder, not an error")
	assert.NotEmpty(t, doc.Bytes)
}

func TestBuildCorruptImageGetsPlaceholder(t *testing.T) {
	audit := sampleAudit()
	audit.Sections[0].Questions[0].Images = []entity.ImageRef{
		{
			URL: "https://media.example.com/objects/broken.jpg",
			Entry: &entity.ImageEntry{
				Format:    entity.ImageFormatJPEG,
				Bytes:     []byte("definitely not a jpeg"),
				SourceURL: "https://media.example.com/objects/broken.jpg",
			},
		},
	}

	doc, err := NewBuilder().Build(audit, "")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Bytes)
}

func TestBuildManySectionsPaginates(t *testing.T) {
	audit := sampleAudit()
	audit.Sections = nil
	for s := 0; s < 3; s++ {
		section := entity.Section{Title: "Section"}
		for q := 0; q < 40; q++ {
			section.Questions = append(section.Questions, entity.Question{
				Code:       "Q",
				Prompt:     "Is the area clean and free of obstructions?",
				AnswerType: entity.AnswerTypeBinary,
				Answer:     &entity.Answer{Bool: boolPtr(q%2 == 0)},
			})
		}
		audit.Sections = append(audit.Sections, section)
	}

	doc, err := NewBuilder().Build(audit, "")
	require.NoError(t, err)
	// Cover plus at least a handful of question pages. Page objects are
	// counted in the serialized output so the assertion holds with the
	// core-font fallback too.
	assert.GreaterOrEqual(t, pageObjectCount(doc.Bytes), 5)
}

// pageObjectCount counts /Type /Page objects in a serialized document,
// excluding the /Type /Pages tree node.
func pageObjectCount(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
}

func TestBuildAppendix(t *testing.T) {
	audit := sampleAudit()
	audit.ExtraImages = []entity.ImageRef{
		{
			URL: "https://media.example.com/objects/front.png",
			Entry: &entity.ImageEntry{
				Format:    entity.ImageFormatPNG,
				Bytes:     pngBytes(t, 640, 480),
				SourceURL: "https://media.example.com/objects/front.png",
			},
		},
	}

	doc, err := NewBuilder().Build(audit, "")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Bytes)
}
