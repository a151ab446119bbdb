package report

import (
	"context"

	"github.com/storeline/audit-backend/internal/entity"
)

type ReportUsecase interface {
	Generate(ctx context.Context, req *entity.AuditRequest, baseFileName string) (*entity.GeneratedDocument, error)
	GenerateAndPersist(ctx context.Context, req *entity.AuditRequest, baseFileName string) (*entity.StoredReport, error)
	ListGenerated(ctx context.Context, skip, limit int) ([]*entity.ReportRecord, error)
	GetGenerated(ctx context.Context, id string) (*entity.ReportRecord, error)
}
