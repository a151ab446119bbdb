package entity

import (
	"fmt"
	"time"
)

type AnswerType string

const (
	AnswerTypeBinary AnswerType = "binary"
	AnswerTypeScore  AnswerType = "score"
	AnswerTypeText   AnswerType = "text"
	AnswerTypePhoto  AnswerType = "photo"
	AnswerTypeImages AnswerType = "images"
)

func (at AnswerType) Validate() error {
	switch at {
	case AnswerTypeBinary, AnswerTypeScore, AnswerTypeText, AnswerTypePhoto, AnswerTypeImages:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAnswerType, string(at))
	}
}

// Audit is the fully decoded inspection record handed to the compositor.
// All string fields have already passed the sanitizer.
type Audit struct {
	// ID is an opaque external identifier, used only for storage paths.
	// It is never drawn on the cover page.
	ID string

	// StoreCandidates holds the possible store-name fields in priority
	// order; the report builder picks the first human-looking one.
	StoreCandidates []string

	TemplateName string
	ReporterName string

	StartedAt   *time.Time
	SubmittedAt *time.Time

	Sections []Section

	// ExtraImages are audit-level photos not tied to any question,
	// rendered on the photos appendix page.
	ExtraImages []ImageRef
}

type Section struct {
	Title     string
	Questions []Question
}

type Question struct {
	Code       string
	Prompt     string
	AnswerType AnswerType
	Answer     *Answer

	// Images is the ordered, de-duplicated union of every image source
	// found on the question. Entries are resolved by the image
	// normalizer before rendering.
	Images []ImageRef
}

// Answer carries the fields relevant to the question's answer type.
// Exactly one of Bool/Score is set for binary/score answers; Text covers
// text, photo and images answers.
type Answer struct {
	Bool  *bool
	Score *float64
	Text  string
	Notes string
}

type ImageFormat string

const (
	ImageFormatJPEG ImageFormat = "jpeg"
	ImageFormatPNG  ImageFormat = "png"
)

// ImageEntry is a normalized, directly embeddable image. It is produced
// only by the image normalizer.
type ImageEntry struct {
	Format    ImageFormat
	Bytes     []byte
	SourceURL string
}

// ImageRef binds an image source URL to its normalization result.
// Entry stays nil when every fallback step failed; the renderer draws a
// placeholder for it.
type ImageRef struct {
	URL   string
	Entry *ImageEntry
}

// GeneratedDocument is the finished report. Immutable once returned.
type GeneratedDocument struct {
	Bytes    []byte
	FileName string
}

// ReportRecord is one row of the generated-report ledger kept for
// persisted-mode traceability.
type ReportRecord struct {
	ID        string    `json:"report_id"`
	AuditID   string    `json:"audit_id"`
	FileName  string    `json:"file_name"`
	Bucket    string    `json:"bucket"`
	Path      string    `json:"path"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// ListReportsResponse wraps a page of ledger rows.
type ListReportsResponse struct {
	Reports []*ReportRecord `json:"reports"`
}

// StoredReport is the persisted-mode response: where the document ended
// up and how to reach it.
type StoredReport struct {
	ReportID string `json:"report_id"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
	Bucket   string `json:"bucket"`
	Path     string `json:"path"`
}
