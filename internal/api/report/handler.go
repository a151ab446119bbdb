package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/storeline/audit-backend/internal/entity"
	"github.com/storeline/audit-backend/internal/pkg/logger"
	"github.com/storeline/audit-backend/internal/pkg/response"
	"github.com/storeline/audit-backend/internal/pkg/validator"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Handler struct {
	usecase   ReportUsecase
	validator *validator.Validator
}

func NewHandler(usecase ReportUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// GenerateReport handles POST /audit-report
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateReport")

	req, ok := h.decodeAudit(ctx, w, r)
	if !ok {
		return
	}

	ctxzap.Info(ctx, "generating report",
		zap.String("audit_id", req.ID),
		zap.Int("section_count", len(req.Sections)),
	)

	doc, err := h.usecase.Generate(ctx, req, r.URL.Query().Get("file_name"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "report generated successfully",
		zap.String("file_name", doc.FileName),
		zap.Int("size_bytes", len(doc.Bytes)),
	)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Bytes)
}

// PersistReport handles POST /audit-report/persist
func (h *Handler) PersistReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "PersistReport")

	req, ok := h.decodeAudit(ctx, w, r)
	if !ok {
		return
	}

	ctxzap.Info(ctx, "generating and persisting report",
		zap.String("audit_id", req.ID),
		zap.Int("section_count", len(req.Sections)),
	)

	stored, err := h.usecase.GenerateAndPersist(ctx, req, r.URL.Query().Get("file_name"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "report persisted successfully",
		zap.String("report_id", stored.ReportID),
		zap.String("path", stored.Path),
	)

	response.Created(w, stored)
}

// ListGenerated handles GET /audit-report/generated
func (h *Handler) ListGenerated(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListGenerated")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	ctxzap.Debug(ctx, "listing generated reports",
		zap.Int("skip", skip),
		zap.Int("limit", limit),
	)

	records, err := h.usecase.ListGenerated(ctx, skip, limit)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "generated reports listed successfully", zap.Int("count", len(records)))
	response.Success(w, &entity.ListReportsResponse{Reports: records})
}

// GetGenerated handles GET /audit-report/generated/{report_id}
func (h *Handler) GetGenerated(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportID := chi.URLParam(r, "report_id")

	ctx = logger.AddFields(ctx,
		zap.String("report_id", reportID),
		zap.String("action", "GetGenerated"),
	)

	ctxzap.Debug(ctx, "fetching generated report")

	record, err := h.usecase.GetGenerated(ctx, reportID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "generated report fetched successfully")
	response.Success(w, record)
}

// Helper methods
func (h *Handler) decodeAudit(ctx context.Context, w http.ResponseWriter, r *http.Request) (*entity.AuditRequest, bool) {
	var req entity.AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return nil, false
	}

	if err := h.validator.ValidateAudit(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed: "+err.Error(), err)
		return nil, false
	}

	return &req, true
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrReportNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, entity.ErrEmptyPayload),
		errors.Is(err, entity.ErrNoSections),
		errors.Is(err, entity.ErrMissingPrompt),
		errors.Is(err, entity.ErrUnknownAnswerType),
		errors.Is(err, entity.ErrTooManySections),
		errors.Is(err, entity.ErrTooManyQuestions),
		errors.Is(err, entity.ErrTooManyImages),
		errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
