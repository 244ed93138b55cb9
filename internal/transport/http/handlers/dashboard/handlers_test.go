package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"assesshub/internal/domain/dashboard"
	"assesshub/internal/transport/http/api"
)

type fakeService struct {
	overview     dashboard.OverviewResponse
	team         dashboard.TeamResponse
	ack          dashboard.ComputeAck
	summaries    []dashboard.CycleSummary
	pdf          []byte
	err          error
	overviewHits int
}

func (f *fakeService) Overview(_ context.Context, matrixID, _ string) (dashboard.OverviewResponse, error) {
	f.overviewHits++
	if f.err != nil {
		return dashboard.OverviewResponse{}, f.err
	}
	response := f.overview
	response.AssessmentMatrixID = matrixID
	return response, nil
}

func (f *fakeService) OverviewReportPDF(_ context.Context, _, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func (f *fakeService) Team(_ context.Context, _, teamID, _ string) (dashboard.TeamResponse, error) {
	if f.err != nil {
		return dashboard.TeamResponse{}, f.err
	}
	response := f.team
	response.TeamID = teamID
	return response, nil
}

func (f *fakeService) Compute(_ context.Context, matrixID, _ string) (dashboard.ComputeAck, error) {
	if f.err != nil {
		return dashboard.ComputeAck{}, f.err
	}
	ack := f.ack
	ack.AssessmentMatrixID = matrixID
	return ack, nil
}

func (f *fakeService) CycleSummaries(_ context.Context, _, _ string) ([]dashboard.CycleSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summaries, nil
}

func newTestRouter(service *fakeService) chi.Router {
	router := chi.NewRouter()
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", "")
	})
	NewHandler(service).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router chi.Router, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) api.Envelope {
	t.Helper()
	var envelope api.Envelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, recorder.Body.String())
	}
	return envelope
}

func TestOverviewMissingTenantIs400(t *testing.T) {
	service := &fakeService{}
	router := newTestRouter(service)

	recorder := doRequest(t, router, http.MethodGet, "/dashboard-analytics/overview/matrix-1")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if envelope.Success || envelope.Error == nil || envelope.Error.Code != "missing_tenant" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if service.overviewHits != 0 {
		t.Fatal("service must not be called without a tenant")
	}
}

func TestOverviewUnknownMatrixIs404(t *testing.T) {
	router := newTestRouter(&fakeService{err: dashboard.ErrMatrixNotFound})

	recorder := doRequest(t, router, http.MethodGet, "/dashboard-analytics/overview/matrix-1?tenantId=tenant-1")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if envelope.Error == nil || envelope.Error.Code != "matrix_not_found" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestOverviewForeignTenantIs403(t *testing.T) {
	router := newTestRouter(&fakeService{err: dashboard.ErrTenantMismatch})

	recorder := doRequest(t, router, http.MethodGet, "/dashboard-analytics/overview/matrix-1?tenantId=tenant-2")
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if envelope.Error == nil || envelope.Error.Code != "tenant_mismatch" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestOverviewSuccessEnvelope(t *testing.T) {
	service := &fakeService{overview: dashboard.OverviewResponse{
		Metadata: dashboard.OverviewMetadata{CompanyName: "Acme"},
		Teams:    []dashboard.TeamBreakdown{},
	}}
	router := newTestRouter(service)

	recorder := doRequest(t, router, http.MethodGet, "/dashboard-analytics/overview/matrix-1?tenantId=tenant-1")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if !envelope.Success || envelope.Error != nil {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestTeamSuccess(t *testing.T) {
	service := &fakeService{team: dashboard.TeamResponse{
		TeamName:     "Platform",
		PillarScores: map[string]dashboard.PillarScore{},
		WordCloud:    dashboard.WordCloudView{Status: "none", Words: []dashboard.WordEntry{}},
	}}
	router := newTestRouter(service)

	recorder := doRequest(t, router, http.MethodGet, "/dashboard-analytics/team/matrix-1/team-1?tenantId=tenant-1")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var payload struct {
		Data dashboard.TeamResponse `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.TeamID != "team-1" || payload.Data.TeamName != "Platform" {
		t.Fatalf("unexpected data: %+v", payload.Data)
	}
}

func TestComputeRejectsGet(t *testing.T) {
	router := newTestRouter(&fakeService{})

	recorder := doRequest(t, router, http.MethodGet, "/dashboard-analytics/compute/matrix-1?tenantId=tenant-1")
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", recorder.Code)
	}
}

func TestComputeSuccess(t *testing.T) {
	router := newTestRouter(&fakeService{ack: dashboard.ComputeAck{Success: true}})

	recorder := doRequest(t, router, http.MethodPost, "/dashboard-analytics/compute/matrix-1?tenantId=tenant-1")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var payload struct {
		Data dashboard.ComputeAck `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Data.Success || payload.Data.AssessmentMatrixID != "matrix-1" {
		t.Fatalf("unexpected ack: %+v", payload.Data)
	}
}

func TestCycleSummariesEmptyListIs200(t *testing.T) {
	router := newTestRouter(&fakeService{summaries: []dashboard.CycleSummary{}})

	recorder := doRequest(t, router, http.MethodGet, "/performance-cycle-summary/company-1?tenantId=company-1")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if !envelope.Success {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestOverviewReportPDF(t *testing.T) {
	router := newTestRouter(&fakeService{pdf: []byte("%PDF-1.4 test")})

	recorder := doRequest(t, router, http.MethodGet, "/dashboard-analytics/overview/matrix-1/report?tenantId=tenant-1")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if recorder.Body.Len() == 0 {
		t.Fatal("expected pdf bytes")
	}
}

func TestInternalErrorIs500(t *testing.T) {
	router := newTestRouter(&fakeService{err: context.DeadlineExceeded})

	recorder := doRequest(t, router, http.MethodGet, "/dashboard-analytics/overview/matrix-1?tenantId=tenant-1")
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if envelope.Error == nil || envelope.Error.Code != "internal_error" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}
