package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"assesshub/internal/domain/dashboard"
	"assesshub/internal/transport/http/api"
	"assesshub/internal/transport/http/middleware"
	"assesshub/internal/transport/http/shared"
)

// AnalyticsService is the slice of the dashboard service the handlers need.
type AnalyticsService interface {
	Overview(ctx context.Context, matrixID, tenantID string) (dashboard.OverviewResponse, error)
	OverviewReportPDF(ctx context.Context, matrixID, tenantID string) ([]byte, error)
	Team(ctx context.Context, matrixID, teamID, tenantID string) (dashboard.TeamResponse, error)
	Compute(ctx context.Context, matrixID, tenantID string) (dashboard.ComputeAck, error)
	CycleSummaries(ctx context.Context, companyID, tenantID string) ([]dashboard.CycleSummary, error)
}

type Handler struct {
	service AnalyticsService
}

func NewHandler(service AnalyticsService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/dashboard-analytics/overview/{matrixId}", h.overview)
	router.Get("/dashboard-analytics/overview/{matrixId}/report", h.overviewReport)
	router.Get("/dashboard-analytics/team/{matrixId}/{teamId}", h.team)
	router.Post("/dashboard-analytics/compute/{matrixId}", h.compute)
	router.Get("/performance-cycle-summary/{companyId}", h.cycleSummaries)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	overview, err := h.service.Overview(r.Context(), matrixID, tenantID)
	if err != nil {
		h.fail(w, r, err, "load dashboard overview")
		return
	}
	api.Success(w, overview, reqID)
}

func (h *Handler) overviewReport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	pdfBytes, err := h.service.OverviewReportPDF(r.Context(), matrixID, tenantID)
	if err != nil {
		h.fail(w, r, err, "render dashboard report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "dashboard-"+matrixID+".pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		slog.Warn("write pdf report failed", "err", err, "matrixId", matrixID)
	}
}

func (h *Handler) team(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")
	teamID := chi.URLParam(r, "teamId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	team, err := h.service.Team(r.Context(), matrixID, teamID, tenantID)
	if err != nil {
		h.fail(w, r, err, "load team dashboard")
		return
	}
	api.Success(w, team, reqID)
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	ack, err := h.service.Compute(r.Context(), matrixID, tenantID)
	if err != nil {
		h.fail(w, r, err, "trigger dashboard compute")
		return
	}
	api.Success(w, ack, reqID)
}

func (h *Handler) cycleSummaries(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	companyID := chi.URLParam(r, "companyId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	summaries, err := h.service.CycleSummaries(r.Context(), companyID, tenantID)
	if err != nil {
		h.fail(w, r, err, "load cycle summaries")
		return
	}
	api.Success(w, summaries, reqID)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, dashboard.ErrMatrixNotFound):
		api.Fail(w, http.StatusNotFound, "matrix_not_found", "assessment matrix not found", reqID)
	case errors.Is(err, dashboard.ErrTenantMismatch):
		api.Fail(w, http.StatusForbidden, "tenant_mismatch", "assessment matrix belongs to another tenant", reqID)
	default:
		slog.Error(action+" failed", "err", err, "path", r.URL.Path, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
	}
}
