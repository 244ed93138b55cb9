package assessment

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"assesshub/internal/domain/assessment"
	"assesshub/internal/transport/http/api"
	"assesshub/internal/transport/http/middleware"
	"assesshub/internal/transport/http/shared"
)

type Handler struct {
	service      *assessment.Service
	inviteSecret string
	inviteTTL    time.Duration
}

func NewHandler(service *assessment.Service, inviteSecret string, inviteTTL time.Duration) *Handler {
	return &Handler{service: service, inviteSecret: inviteSecret, inviteTTL: inviteTTL}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/performance-cycles", h.listCycles)
	router.Post("/performance-cycles", h.createCycle)
	router.Patch("/performance-cycles/{cycleId}", h.updateCycleActive)

	router.Get("/assessment-matrices", h.listMatrices)
	router.Get("/assessment-matrices/{matrixId}", h.getMatrix)
	router.Post("/assessment-matrices", h.createMatrix)

	router.Get("/assessment-matrices/{matrixId}/questions", h.listQuestions)
	router.Post("/assessment-matrices/{matrixId}/questions", h.createQuestion)
	router.Delete("/questions/{questionId}", h.deleteQuestion)

	router.Get("/assessment-matrices/{matrixId}/employee-assessments", h.listEmployeeAssessments)
	router.Post("/assessment-matrices/{matrixId}/employee-assessments", h.createEmployeeAssessment)
	router.Post("/employee-assessments/{assessmentId}/invitations", h.createInvitation)
	router.Post("/assessment-invitations/verify", h.verifyInvitation)
	router.Patch("/employee-assessments/{assessmentId}/status", h.updateAssessmentStatus)
}

func (h *Handler) listCycles(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	cycles, err := h.service.ListCycles(r.Context(), tenantID)
	if err != nil {
		h.internal(w, r, err, "list performance cycles")
		return
	}
	if cycles == nil {
		cycles = []assessment.PerformanceCycle{}
	}
	api.Success(w, cycles, reqID)
}

type cycleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Active      bool   `json:"active"`
}

func (h *Handler) createCycle(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req cycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "name is required", reqID)
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "startDate must be RFC3339 or YYYY-MM-DD", reqID)
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "endDate must be RFC3339 or YYYY-MM-DD", reqID)
		return
	}

	id, err := h.service.CreateCycle(r.Context(), tenantID, req.Name, req.Description, startDate, endDate, req.Active)
	if err != nil {
		h.internal(w, r, err, "create performance cycle")
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) updateCycleActive(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	cycleID := chi.URLParam(r, "cycleId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}

	if err := h.service.UpdateCycleActive(r.Context(), tenantID, cycleID, req.Active); err != nil {
		h.internal(w, r, err, "update performance cycle")
		return
	}
	api.Success(w, map[string]string{"id": cycleID}, reqID)
}

func (h *Handler) listMatrices(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	cycleID := strings.TrimSpace(r.URL.Query().Get("performanceCycleId"))
	matrices, err := h.service.ListMatrices(r.Context(), tenantID, cycleID)
	if err != nil {
		h.internal(w, r, err, "list assessment matrices")
		return
	}
	if matrices == nil {
		matrices = []assessment.Matrix{}
	}
	api.Success(w, matrices, reqID)
}

func (h *Handler) getMatrix(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	matrix, err := h.service.GetMatrix(r.Context(), tenantID, matrixID)
	if err != nil {
		h.internal(w, r, err, "get assessment matrix")
		return
	}
	if matrix == nil {
		api.Fail(w, http.StatusNotFound, "matrix_not_found", "assessment matrix not found", reqID)
		return
	}
	api.Success(w, matrix, reqID)
}

type matrixRequest struct {
	PerformanceCycleID string `json:"performanceCycleId"`
	Name               string `json:"name"`
	Description        string `json:"description"`
}

func (h *Handler) createMatrix(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req matrixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.PerformanceCycleID) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "name and performanceCycleId are required", reqID)
		return
	}

	id, err := h.service.CreateMatrix(r.Context(), tenantID, req.PerformanceCycleID, req.Name, req.Description)
	if err != nil {
		h.internal(w, r, err, "create assessment matrix")
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	questions, err := h.service.ListQuestions(r.Context(), tenantID, matrixID)
	if err != nil {
		h.internal(w, r, err, "list questions")
		return
	}
	if questions == nil {
		questions = []assessment.Question{}
	}
	api.Success(w, questions, reqID)
}

type questionRequest struct {
	PillarName   string  `json:"pillarName"`
	CategoryName string  `json:"categoryName"`
	Text         string  `json:"text"`
	Type         string  `json:"type"`
	Points       float64 `json:"points"`
}

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}
	if strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.PillarName) == "" || strings.TrimSpace(req.CategoryName) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "pillarName, categoryName and text are required", reqID)
		return
	}
	if req.Type == "" {
		req.Type = assessment.QuestionTypeRating
	}

	id, err := h.service.CreateQuestion(r.Context(), assessment.Question{
		CompanyID:    tenantID,
		MatrixID:     matrixID,
		PillarName:   req.PillarName,
		CategoryName: req.CategoryName,
		Text:         req.Text,
		Type:         req.Type,
		Points:       req.Points,
	})
	if err != nil {
		h.internal(w, r, err, "create question")
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	questionID := chi.URLParam(r, "questionId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), tenantID, questionID); err != nil {
		h.internal(w, r, err, "delete question")
		return
	}
	api.Success(w, map[string]string{"id": questionID}, reqID)
}

func (h *Handler) listEmployeeAssessments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	page := shared.PageFromRequest(r)
	assessments, err := h.service.ListEmployeeAssessments(r.Context(), tenantID, matrixID, page.Limit, page.Offset)
	if err != nil {
		h.internal(w, r, err, "list employee assessments")
		return
	}
	if assessments == nil {
		assessments = []assessment.EmployeeAssessment{}
	}
	api.Success(w, assessments, reqID)
}

type employeeAssessmentRequest struct {
	TeamID        string `json:"teamId"`
	EmployeeName  string `json:"employeeName"`
	EmployeeEmail string `json:"employeeEmail"`
}

func (h *Handler) createEmployeeAssessment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	matrixID := chi.URLParam(r, "matrixId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req employeeAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}
	if strings.TrimSpace(req.EmployeeName) == "" || strings.TrimSpace(req.EmployeeEmail) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "employeeName and employeeEmail are required", reqID)
		return
	}

	id, err := h.service.CreateEmployeeAssessment(r.Context(), assessment.EmployeeAssessment{
		CompanyID:     tenantID,
		MatrixID:      matrixID,
		TeamID:        req.TeamID,
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
		Status:        assessment.StatusInvited,
	})
	if err != nil {
		h.internal(w, r, err, "create employee assessment")
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) createInvitation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	assessmentID := chi.URLParam(r, "assessmentId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	ea, err := h.service.GetEmployeeAssessment(r.Context(), tenantID, assessmentID)
	if err != nil {
		h.internal(w, r, err, "load employee assessment")
		return
	}
	if ea == nil {
		api.Fail(w, http.StatusNotFound, "assessment_not_found", "employee assessment not found", reqID)
		return
	}

	token, err := assessment.GenerateInviteToken(h.inviteSecret, assessment.InviteClaims{
		AssessmentID: ea.ID,
		TenantID:     ea.CompanyID,
		Email:        ea.EmployeeEmail,
	}, h.inviteTTL)
	if err != nil {
		h.internal(w, r, err, "generate invitation token")
		return
	}

	api.Created(w, map[string]any{
		"assessmentId": ea.ID,
		"token":        token,
		"expiresAt":    time.Now().Add(h.inviteTTL).UTC(),
	}, reqID)
}

// verifyInvitation resolves an invitation token back to its assessment and
// moves a fresh invitation to in_progress. The tenant comes from the token
// claims, not the caller.
func (h *Handler) verifyInvitation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "token is required", reqID)
		return
	}

	claims, err := assessment.ParseInviteToken(h.inviteSecret, req.Token)
	if err != nil {
		api.Fail(w, http.StatusForbidden, "invalid_invitation", "invitation token is invalid or expired", reqID)
		return
	}

	ea, err := h.service.GetEmployeeAssessment(r.Context(), claims.TenantID, claims.AssessmentID)
	if err != nil {
		h.internal(w, r, err, "load invited assessment")
		return
	}
	if ea == nil {
		api.Fail(w, http.StatusNotFound, "assessment_not_found", "employee assessment not found", reqID)
		return
	}

	if ea.Status == assessment.StatusInvited {
		if err := h.service.UpdateEmployeeAssessmentStatus(r.Context(), claims.TenantID, ea.ID, assessment.StatusInProgress, nil); err != nil {
			h.internal(w, r, err, "start invited assessment")
			return
		}
		ea.Status = assessment.StatusInProgress
	}
	api.Success(w, ea, reqID)
}

type statusRequest struct {
	Status string   `json:"status"`
	Score  *float64 `json:"score"`
}

func (h *Handler) updateAssessmentStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	assessmentID := chi.URLParam(r, "assessmentId")

	tenantID, ok := shared.TenantID(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "missing_tenant", "tenantId query parameter is required", reqID)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_request", "invalid request body", reqID)
		return
	}
	switch req.Status {
	case assessment.StatusInvited, assessment.StatusInProgress, assessment.StatusCompleted:
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_request", "status must be invited, in_progress or completed", reqID)
		return
	}

	if err := h.service.UpdateEmployeeAssessmentStatus(r.Context(), tenantID, assessmentID, req.Status, req.Score); err != nil {
		h.internal(w, r, err, "update employee assessment status")
		return
	}
	api.Success(w, map[string]string{"id": assessmentID, "status": req.Status}, reqID)
}

func (h *Handler) internal(w http.ResponseWriter, r *http.Request, err error, action string) {
	reqID := middleware.GetRequestID(r.Context())
	slog.Error(action+" failed", "err", err, "path", r.URL.Path, "requestId", reqID)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", reqID)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := shared.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
