// Package report orchestrates one document build: decode and sanitize
// the payload, resolve every photo concurrently, render sequentially,
// and deliver the result either as raw bytes or via object storage.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/storeline/audit-backend/internal/entity"
	"github.com/storeline/audit-backend/internal/repository"
)

type Usecase struct {
	builder    ReportBuilder
	normalizer ImageNormalizer
	storage    StorageConnector
	reportRepo repository.ReportRepository
	fetchLimit int
	logger     *zap.Logger
}

func NewUsecase(
	builder ReportBuilder,
	normalizer ImageNormalizer,
	storage StorageConnector,
	reportRepo repository.ReportRepository,
	fetchLimit int,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		builder:    builder,
		normalizer: normalizer,
		storage:    storage,
		reportRepo: reportRepo,
		fetchLimit: fetchLimit,
		logger:     logger,
	}
}

// Generate builds a document for binary-mode delivery.
func (uc *Usecase) Generate(ctx context.Context, req *entity.AuditRequest, baseFileName string) (*entity.GeneratedDocument, error) {
	audit := toEntityAudit(req)

	uc.resolveImages(ctx, audit)

	doc, err := uc.builder.Build(audit, storagePathToken(baseFileName))
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	ctxzap.Info(ctx, "report generated",
		zap.String("file_name", doc.FileName),
		zap.Int("size_bytes", len(doc.Bytes)),
	)
	return doc, nil
}

// GenerateAndPersist builds the document, uploads it to object storage
// and records it in the generated-report ledger.
func (uc *Usecase) GenerateAndPersist(ctx context.Context, req *entity.AuditRequest, baseFileName string) (*entity.StoredReport, error) {
	doc, err := uc.Generate(ctx, req, baseFileName)
	if err != nil {
		return nil, err
	}

	auditToken := storagePathToken(req.ID)
	if auditToken == "" {
		auditToken = uuid.New().String()
	}
	objectPath := auditToken + "/" + doc.FileName

	if err := uc.storage.Upload(ctx, objectPath, doc.Bytes, uc.builder.ContentType()); err != nil {
		return nil, fmt.Errorf("persist report: %w", err)
	}

	url, err := uc.storage.ResolveURL(ctx, objectPath)
	if err != nil {
		return nil, fmt.Errorf("resolve report URL: %w", err)
	}

	record, err := uc.reportRepo.Create(ctx, entity.ReportRecord{
		ID:        uuid.New().String(),
		AuditID:   auditToken,
		FileName:  doc.FileName,
		Bucket:    uc.storage.Bucket(),
		Path:      objectPath,
		SizeBytes: int64(len(doc.Bytes)),
	})
	if err != nil {
		return nil, fmt.Errorf("record generated report: %w", err)
	}

	ctxzap.Info(ctx, "report persisted",
		zap.String("report_id", record.ID),
		zap.String("path", objectPath),
	)

	return &entity.StoredReport{
		ReportID: record.ID,
		FileName: doc.FileName,
		URL:      url,
		Bucket:   record.Bucket,
		Path:     objectPath,
	}, nil
}

// ListGenerated returns ledger rows, newest first.
func (uc *Usecase) ListGenerated(ctx context.Context, skip, limit int) ([]*entity.ReportRecord, error) {
	return uc.reportRepo.List(ctx, skip, limit)
}

// GetGenerated returns one ledger row by its report id.
func (uc *Usecase) GetGenerated(ctx context.Context, id string) (*entity.ReportRecord, error) {
	return uc.reportRepo.Get(ctx, id)
}

// resolveImages fetches and normalizes every photo reference with
// bounded concurrency. Failures leave the reference unresolved; the
// renderer draws placeholders for those. Only the fetches run in
// parallel: each goroutine writes to its own reference, and drawing
// starts strictly after all of them have rejoined.
func (uc *Usecase) resolveImages(ctx context.Context, audit *entity.Audit) {
	refs := make([]*entity.ImageRef, 0)
	for si := range audit.Sections {
		for qi := range audit.Sections[si].Questions {
			q := &audit.Sections[si].Questions[qi]
			for ii := range q.Images {
				refs = append(refs, &q.Images[ii])
			}
		}
	}
	for ii := range audit.ExtraImages {
		refs = append(refs, &audit.ExtraImages[ii])
	}
	if len(refs) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.fetchLimit)
	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			entry, err := uc.normalizer.Normalize(gctx, ref.URL)
			if err != nil {
				ctxzap.Warn(gctx, "image normalization error",
					zap.String("source_url", ref.URL),
					zap.Error(err),
				)
				return nil
			}
			ref.Entry = entry
			return nil
		})
	}
	// Workers never return errors; Wait is purely a join point.
	_ = g.Wait()

	ctxzap.Debug(ctx, "image resolution finished", zap.Int("image_count", len(refs)))
}
