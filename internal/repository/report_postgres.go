package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storeline/audit-backend/internal/entity"
)

// ReportRepository persists the generated-report ledger used for
// persisted-mode traceability.
type ReportRepository interface {
	Create(ctx context.Context, record entity.ReportRecord) (*entity.ReportRecord, error)
	Get(ctx context.Context, id string) (*entity.ReportRecord, error)
	List(ctx context.Context, skip, limit int) ([]*entity.ReportRecord, error)
}

var _ ReportRepository = &ReportPostgres{}

// ReportPostgres implements ReportRepository using PostgreSQL
type ReportPostgres struct {
	db *pgxpool.Pool
}

func NewReportPostgres(db *pgxpool.Pool) *ReportPostgres {
	return &ReportPostgres{db: db}
}

func (r *ReportPostgres) Create(ctx context.Context, record entity.ReportRecord) (*entity.ReportRecord, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO generated_reports (id, audit_id, file_name, bucket, path, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, audit_id, file_name, bucket, path, size_bytes, created_at`,
		record.ID, record.AuditID, record.FileName, record.Bucket, record.Path, record.SizeBytes,
	)

	saved, err := scanReport(row)
	if err != nil {
		return nil, fmt.Errorf("create report record: %w", err)
	}
	return saved, nil
}

func (r *ReportPostgres) Get(ctx context.Context, id string) (*entity.ReportRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, audit_id, file_name, bucket, path, size_bytes, created_at
		FROM generated_reports
		WHERE id = $1`,
		id,
	)

	record, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrReportNotFound
		}
		return nil, fmt.Errorf("get report record: %w", err)
	}
	return record, nil
}

func (r *ReportPostgres) List(ctx context.Context, skip, limit int) ([]*entity.ReportRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, audit_id, file_name, bucket, path, size_bytes, created_at
		FROM generated_reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list report records: %w", err)
	}
	defer rows.Close()

	records := make([]*entity.ReportRecord, 0)
	for rows.Next() {
		record, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report records: %w", err)
	}

	return records, nil
}

func scanReport(row pgx.Row) (*entity.ReportRecord, error) {
	var record entity.ReportRecord
	err := row.Scan(
		&record.ID,
		&record.AuditID,
		&record.FileName,
		&record.Bucket,
		&record.Path,
		&record.SizeBytes,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
