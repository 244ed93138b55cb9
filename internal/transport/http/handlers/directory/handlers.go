package directory

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"assesshub/internal/domain/directory"
	"assesshub/internal/transport/http/api"
	"assesshub/internal/transport/http/middleware"
	"assesshub/internal/transport/http/shared"
)

type Handler struct {
	service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/companies", h.createCompany)
	router.Get("/companies/{companyId}", h.getCompany)
	router.Put("/companies/{companyId}", h.updateCompany)

	router.Get("/departments", h.listDepartments)
	router.Post("/departments", h.createDepartment)

	router.Get("/teams", h.listTeams)
	router.Get("/teams/{teamId}", h.getTeam)
	router.Post("/teams", h.createTeam)
	router.Put("/teams/{teamId}", h.updateTeam)
	router.Delete("/teams/{teamId}", h.deleteTeam)
}

type companyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Size     string `json:"size"`
	Industry string `json:"industry"`
}

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "name is required", reqID)
		return
	}

	id, err := h.service.CreateCompany(r.Context(), req.Name, req.Email, req.Size, req.Industry)
	if err != nil {
		h.internal(w, r, err, "create company")
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	companyID := chi.URLParam(r, "companyId")

	company, err := h.service.GetCompany(r.Context(), companyID)
	if err != nil {
		h.internal(w, r, err, "get company")
		return
	}
	if company == nil {
		api.Fail(w, http.StatusNotFound, "company_not_found", "company not found", reqID)
		return
	}
	api.Success(w, company, reqID)
}

func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	companyID := chi.URLParam(r, "companyId")

	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}

	if err := h.service.UpdateCompany(r.Context(), companyID, req.Name, req.Email, req.Size, req.Industry); err != nil {
		h.internal(w, r, err, "update company")
		return
	}
	api.Success(w, map[string]string{"id": companyID}, reqID)
}

func (h *Handler) listDepartments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	departments, err := h.service.ListDepartments(r.Context(), tenantID)
	if err != nil {
		h.internal(w, r, err, "list departments")
		return
	}
	if departments == nil {
		departments = []directory.Department{}
	}
	api.Success(w, departments, reqID)
}

type departmentRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req departmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "name is required", reqID)
		return
	}

	id, err := h.service.CreateDepartment(r.Context(), tenantID, req.Name)
	if err != nil {
		h.internal(w, r, err, "create department")
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	teams, err := h.service.ListTeams(r.Context(), tenantID)
	if err != nil {
		h.internal(w, r, err, "list teams")
		return
	}
	if teams == nil {
		teams = []directory.Team{}
	}
	api.Success(w, teams, reqID)
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	teamID := chi.URLParam(r, "teamId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	team, err := h.service.GetTeam(r.Context(), tenantID, teamID)
	if err != nil {
		h.internal(w, r, err, "get team")
		return
	}
	if team == nil {
		api.Fail(w, http.StatusNotFound, "team_not_found", "team not found", reqID)
		return
	}
	api.Success(w, team, reqID)
}

type teamRequest struct {
	DepartmentID string `json:"departmentId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "name is required", reqID)
		return
	}

	id, err := h.service.CreateTeam(r.Context(), tenantID, req.DepartmentID, req.Name, req.Description)
	if err != nil {
		h.internal(w, r, err, "create team")
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) updateTeam(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	teamID := chi.URLParam(r, "teamId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}

	if err := h.service.UpdateTeam(r.Context(), tenantID, teamID, req.Name, req.Description); err != nil {
		h.internal(w, r, err, "update team")
		return
	}
	api.Success(w, map[string]string{"id": teamID}, reqID)
}

func (h *Handler) deleteTeam(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	teamID := chi.URLParam(r, "teamId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	if err := h.service.DeleteTeam(r.Context(), tenantID, teamID); err != nil {
		h.internal(w, r, err, "delete team")
		return
	}
	api.Success(w, map[string]string{"id": teamID}, reqID)
}

func (h *Handler) internal(w http.ResponseWriter, r *http.Request, err error, action string) {
	reqID := middleware.GetRequestID(r.Context())
	slog.Error(action+" failed", "err", err, "path", r.URL.Path, "requestId", reqID)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
}
