package report

import (
	"context"

	"github.com/storeline/audit-backend/internal/entity"
)

// ImageNormalizer resolves a photo URL into embeddable image bytes.
// Exhaustion of the fallback chain yields (nil, nil), not an error.
type ImageNormalizer interface {
	Normalize(ctx context.Context, sourceURL string) (*entity.ImageEntry, error)
}

// StorageConnector is the object-storage collaborator used in
// persisted mode.
type StorageConnector interface {
	Bucket() string
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) error
	ResolveURL(ctx context.Context, objectPath string) (string, error)
}

// ReportBuilder composes a fully resolved audit into a document.
type ReportBuilder interface {
	Build(audit *entity.Audit, baseFileName string) (*entity.GeneratedDocument, error)
	ContentType() string
}
