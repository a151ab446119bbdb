package entity

// AuditRequest is the wire shape of an audit payload as sent by the
// request-routing layer. Several loosely-named optional fields may carry
// the store, reporter and image sources; the converter unions them into
// the strict Audit model.
type AuditRequest struct {
	ID          string           `json:"id"`
	Store       string           `json:"store"`
	StoreName   string           `json:"store_name"`
	Location    string           `json:"location"`
	Template    string           `json:"template"`
	TemplateRef string           `json:"template_name"`
	Reporter    string           `json:"reporter"`
	SubmittedBy string           `json:"submitted_by"`
	UserName    string           `json:"user_name"`
	StartedAt   string           `json:"started_at"`
	SubmittedAt string           `json:"submitted_at"`
	Images      []string         `json:"images"`
	Sections    []SectionRequest `json:"sections"`
}

type SectionRequest struct {
	Title     string            `json:"title"`
	Questions []QuestionRequest `json:"questions"`
}

type QuestionRequest struct {
	Code       string         `json:"code"`
	Prompt     string         `json:"prompt"`
	AnswerType string         `json:"answer_type"`
	ImageURL   string         `json:"image_url"`
	Answer     *AnswerRequest `json:"answer"`
}

// AnswerRequest mirrors the untyped answer bag of the upstream dashboard.
// Which fields are meaningful depends on the question's answer_type; the
// image-source fields are unioned regardless of type.
type AnswerRequest struct {
	ValueBool *bool    `json:"value_bool"`
	ValueNum  *float64 `json:"value_num"`
	ValueText string   `json:"value_text"`
	Notes     string   `json:"notes"`
	ImageURL  string   `json:"image_url"`
	PhotoURL  string   `json:"photo_url"`
	Images    []string `json:"images"`
	Photos    []string `json:"photos"`
}
