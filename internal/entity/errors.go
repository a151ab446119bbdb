package entity

import "errors"

// Domain errors
var (
	// Payload errors
	ErrEmptyPayload      = errors.New("audit payload is empty")
	ErrNoSections        = errors.New("audit payload has no sections")
	ErrMissingPrompt     = errors.New("question prompt is missing")
	ErrUnknownAnswerType = errors.New("unknown answer type")
	ErrTooManySections   = errors.New("too many sections")
	ErrTooManyQuestions  = errors.New("too many questions in section")
	ErrTooManyImages     = errors.New("too many images on question")

	// Report errors
	ErrReportNotFound = errors.New("report not found")
	ErrBuildFailed    = errors.New("report build failed")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
