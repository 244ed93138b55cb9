package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// MatrixLookup resolves the assessment matrix that owns an aggregate. A
// nil result with nil error means the matrix does not exist.
type MatrixLookup interface {
	FindAssessmentMatrixByID(ctx context.Context, matrixID string) (*MatrixRef, error)
}

// AnalyticsStore is the read/write surface of the external analytics
// persistence. Reads return nil (not an error) for absent records.
type AnalyticsStore interface {
	GetOverview(ctx context.Context, matrixID string) (*Record, error)
	GetTeam(ctx context.Context, matrixID, teamID string) (*Record, error)
	ListAll(ctx context.Context, matrixID string) ([]Record, error)
	RequestRecompute(ctx context.Context, matrixID string) error
}

// CycleSummaryStore lists per-cycle rollups for a company.
type CycleSummaryStore interface {
	ListCycleSummaries(ctx context.Context, companyID string) ([]CycleSummary, error)
}

// Cache is the slice of the platform cache the dashboard reads need.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	matrices  MatrixLookup
	analytics AnalyticsStore
	cycles    CycleSummaryStore
	cache     Cache
	cacheTTL  time.Duration
}

func NewService(matrices MatrixLookup, analytics AnalyticsStore, cycles CycleSummaryStore) *Service {
	return &Service{matrices: matrices, analytics: analytics, cycles: cycles}
}

// WithCache enables cache-aside reads. Every cached key embeds a per-matrix
// version; Compute bumps the version so stale entries become unreachable
// without tracking every key that was written.
func (s *Service) WithCache(c Cache, ttl time.Duration) *Service {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

func versionCacheKey(matrixID string) string {
	return "dashboard:version:" + matrixID
}

func overviewCacheKey(matrixID, version string) string {
	return "dashboard:overview:" + matrixID + ":" + version
}

func teamCacheKey(matrixID, teamID, version string) string {
	return "dashboard:team:" + matrixID + ":" + teamID + ":" + version
}

func (s *Service) cacheVersion(ctx context.Context, matrixID string) string {
	var version int64
	if err := s.cache.Get(ctx, versionCacheKey(matrixID), &version); err != nil {
		return "0"
	}
	return strconv.FormatInt(version, 10)
}

// authorize resolves the matrix and enforces tenant ownership. It must run
// before any analytics record is touched.
func (s *Service) authorize(ctx context.Context, matrixID, tenantID string) (*MatrixRef, error) {
	matrix, err := s.matrices.FindAssessmentMatrixByID(ctx, matrixID)
	if err != nil {
		return nil, fmt.Errorf("assessment matrix lookup: %w", err)
	}
	if matrix == nil {
		return nil, ErrMatrixNotFound
	}
	if matrix.TenantID != tenantID {
		return nil, ErrTenantMismatch
	}
	return matrix, nil
}

func (s *Service) Overview(ctx context.Context, matrixID, tenantID string) (OverviewResponse, error) {
	if _, err := s.authorize(ctx, matrixID, tenantID); err != nil {
		return OverviewResponse{}, err
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = overviewCacheKey(matrixID, s.cacheVersion(ctx, matrixID))
		var cached OverviewResponse
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	record, err := s.analytics.GetOverview(ctx, matrixID)
	if err != nil {
		return OverviewResponse{}, fmt.Errorf("load overview analytics: %w", err)
	}
	if record == nil {
		return emptyOverview(matrixID), nil
	}

	data := ParseAnalyticsData(record.AnalyticsDataJSON)
	extremes := ExtractExtremes(data)

	all, err := s.analytics.ListAll(ctx, matrixID)
	if err != nil {
		return OverviewResponse{}, fmt.Errorf("load team analytics: %w", err)
	}

	teams := make([]TeamBreakdown, 0, len(all))
	for _, rec := range all {
		if rec.Scope != ScopeTeam {
			continue
		}
		teams = append(teams, teamBreakdown(rec))
	}

	lastUpdated := record.LastUpdated
	response := OverviewResponse{
		AssessmentMatrixID: matrixID,
		Metadata: OverviewMetadata{
			CompanyName:          nameOr(record.CompanyName, "N/A"),
			PerformanceCycleName: nameOr(record.PerformanceCycleName, "N/A"),
			AssessmentMatrixName: nameOr(record.AssessmentMatrixName, "N/A"),
			LastUpdated:          &lastUpdated,
		},
		Summary: OverviewSummary{
			GeneralAverage:       record.GeneralAverage,
			TotalEmployees:       record.EmployeeCount,
			CompletionPercentage: record.CompletionPercentage,
			TopPillar:            extremes.TopPillar,
			BottomPillar:         extremes.BottomPillar,
			TopCategory:          extremes.TopCategory,
			BottomCategory:       extremes.BottomCategory,
		},
		Teams: teams,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, response, s.cacheTTL); err != nil {
			slog.Warn("overview cache set failed", "err", err, "matrixId", matrixID)
		}
	}
	return response, nil
}

func (s *Service) Team(ctx context.Context, matrixID, teamID, tenantID string) (TeamResponse, error) {
	if _, err := s.authorize(ctx, matrixID, tenantID); err != nil {
		return TeamResponse{}, err
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = teamCacheKey(matrixID, teamID, s.cacheVersion(ctx, matrixID))
		var cached TeamResponse
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	record, err := s.analytics.GetTeam(ctx, matrixID, teamID)
	if err != nil {
		return TeamResponse{}, fmt.Errorf("load team analytics: %w", err)
	}
	if record == nil {
		return emptyTeam(teamID), nil
	}

	data := ParseAnalyticsData(record.AnalyticsDataJSON)
	response := TeamResponse{
		TeamID:               teamID,
		TeamName:             nameOr(record.TeamName, "Unknown Team"),
		TotalScore:           record.GeneralAverage,
		EmployeeCount:        record.EmployeeCount,
		CompletionPercentage: record.CompletionPercentage,
		PillarScores:         BuildPillarScores(data),
		WordCloud:            wordCloudView(data.WordCloud),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, response, s.cacheTTL); err != nil {
			slog.Warn("team cache set failed", "err", err, "matrixId", matrixID, "teamId", teamID)
		}
	}
	return response, nil
}

// Compute asks the external analytics service to recompute and persist the
// aggregates for a matrix. Delegation is fire-and-forget; the external
// side owns idempotency and retries.
func (s *Service) Compute(ctx context.Context, matrixID, tenantID string) (ComputeAck, error) {
	if _, err := s.authorize(ctx, matrixID, tenantID); err != nil {
		return ComputeAck{}, err
	}

	if err := s.analytics.RequestRecompute(ctx, matrixID); err != nil {
		return ComputeAck{}, fmt.Errorf("trigger analytics recompute: %w", err)
	}

	if s.cache != nil {
		version := s.cacheVersion(ctx, matrixID)
		if err := s.cache.Delete(ctx, overviewCacheKey(matrixID, version)); err != nil {
			slog.Warn("overview cache invalidation failed", "err", err, "matrixId", matrixID)
		}
		// Bumping the version orphans every cached read for this matrix,
		// the per-team entries included; orphans expire with their TTL.
		if err := s.cache.Set(ctx, versionCacheKey(matrixID), time.Now().UnixNano(), 0); err != nil {
			slog.Warn("cache version bump failed", "err", err, "matrixId", matrixID)
		}
	}

	return ComputeAck{
		Success:            true,
		AssessmentMatrixID: matrixID,
		ComputedAt:         time.Now().UTC(),
	}, nil
}

// CycleSummaries lists per-cycle rollups for a company. The caller must be
// the company itself; there is no matrix in scope, so the check is a plain
// id equality.
func (s *Service) CycleSummaries(ctx context.Context, companyID, tenantID string) ([]CycleSummary, error) {
	if companyID != tenantID {
		return nil, ErrTenantMismatch
	}

	summaries, err := s.cycles.ListCycleSummaries(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("load cycle summaries: %w", err)
	}
	if summaries == nil {
		summaries = []CycleSummary{}
	}
	return summaries, nil
}

func teamBreakdown(record Record) TeamBreakdown {
	data := ParseAnalyticsData(record.AnalyticsDataJSON)
	return TeamBreakdown{
		TeamID:               record.TeamID,
		TeamName:             nameOr(record.TeamName, "Unknown Team"),
		TotalScore:           record.GeneralAverage,
		EmployeeCount:        record.EmployeeCount,
		CompletionPercentage: record.CompletionPercentage,
		PillarScores:         BuildPillarScores(data),
	}
}

func emptyOverview(matrixID string) OverviewResponse {
	return OverviewResponse{
		AssessmentMatrixID: matrixID,
		Metadata: OverviewMetadata{
			CompanyName:          "N/A",
			PerformanceCycleName: "N/A",
			AssessmentMatrixName: "N/A",
		},
		Teams: []TeamBreakdown{},
	}
}

func emptyTeam(teamID string) TeamResponse {
	return TeamResponse{
		TeamID:       teamID,
		TeamName:     "Unknown Team",
		PillarScores: map[string]PillarScore{},
		WordCloud:    emptyWordCloud(),
	}
}

func emptyWordCloud() WordCloudView {
	return WordCloudView{Status: "none", Words: []WordEntry{}}
}

func wordCloudView(node *WordCloudNode) WordCloudView {
	if node == nil {
		return emptyWordCloud()
	}
	view := WordCloudView{
		Status:         node.Status,
		TotalResponses: node.TotalResponses,
		Words:          node.Words,
	}
	if view.Status == "" {
		view.Status = "none"
	}
	if view.Words == nil {
		view.Words = []WordEntry{}
	}
	return view
}

func nameOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
