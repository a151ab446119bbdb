package validator

import (
	"fmt"

	"github.com/storeline/audit-backend/internal/config"
	"github.com/storeline/audit-backend/internal/entity"
)

// Validator validates inbound audit payloads
type Validator struct {
	cfg config.PayloadConfig
}

func NewAuditValidator(cfg config.PayloadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAudit checks structural requirements before any rendering
// work starts. Unknown answer types are a validation failure, not a
// mid-build surprise.
func (v *Validator) ValidateAudit(req *entity.AuditRequest) error {
	if req == nil {
		return entity.ErrEmptyPayload
	}
	if len(req.Sections) == 0 {
		return entity.ErrNoSections
	}
	if len(req.Sections) > v.cfg.MaxSections {
		return fmt.Errorf("%w: maximum %d sections, got %d", entity.ErrTooManySections, v.cfg.MaxSections, len(req.Sections))
	}

	for si, section := range req.Sections {
		if len(section.Questions) > v.cfg.MaxQuestionsPerSection {
			return fmt.Errorf("%w: section %d has %d questions (max %d)",
				entity.ErrTooManyQuestions, si, len(section.Questions), v.cfg.MaxQuestionsPerSection)
		}

		for qi, question := range section.Questions {
			if question.Prompt == "" {
				return fmt.Errorf("%w: section %d question %d", entity.ErrMissingPrompt, si, qi)
			}
			if err := entity.AnswerType(question.AnswerType).Validate(); err != nil {
				return fmt.Errorf("section %d question %d: %w", si, qi, err)
			}
			if question.Answer != nil {
				imageCount := len(question.Answer.Images) + len(question.Answer.Photos)
				if imageCount > v.cfg.MaxImagesPerQuestion {
					return fmt.Errorf("%w: section %d question %d has %d images (max %d)",
						entity.ErrTooManyImages, si, qi, imageCount, v.cfg.MaxImagesPerQuestion)
				}
			}
		}
	}

	return nil
}
