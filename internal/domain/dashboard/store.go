package dashboard

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"assesshub/internal/platform/db"
)

// Store implements MatrixLookup, AnalyticsStore and CycleSummaryStore
// against postgres. The analytics rows themselves are written by the
// external compute worker; this side only reads them and queues work.
type Store struct {
	DB db.Pool
}

func NewStore(pool db.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) FindAssessmentMatrixByID(ctx context.Context, matrixID string) (*MatrixRef, error) {
	var matrix MatrixRef
	err := s.DB.QueryRow(ctx, `
    SELECT id, company_id, name
    FROM assessment_matrices
    WHERE id = $1
  `, matrixID).Scan(&matrix.ID, &matrix.TenantID, &matrix.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &matrix, nil
}

const recordColumns = `
    company_id, performance_cycle_id, assessment_matrix_id, scope,
    COALESCE(team_id, ''), general_average, employee_count,
    completion_percentage, last_updated, COALESCE(company_name, ''),
    COALESCE(performance_cycle_name, ''), COALESCE(assessment_matrix_name, ''),
    COALESCE(team_name, ''), COALESCE(analytics_data_json, '')`

func (s *Store) GetOverview(ctx context.Context, matrixID string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM dashboard_analytics
    WHERE assessment_matrix_id = $1 AND scope = $2
  `, matrixID, ScopeMatrix)
	return scanRecord(row)
}

func (s *Store) GetTeam(ctx context.Context, matrixID, teamID string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM dashboard_analytics
    WHERE assessment_matrix_id = $1 AND scope = $2 AND team_id = $3
  `, matrixID, ScopeTeam, teamID)
	return scanRecord(row)
}

func (s *Store) ListAll(ctx context.Context, matrixID string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+recordColumns+`
    FROM dashboard_analytics
    WHERE assessment_matrix_id = $1
    ORDER BY scope, team_name
  `, matrixID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.CompanyID, &record.PerformanceCycleID, &record.AssessmentMatrixID,
			&record.Scope, &record.TeamID, &record.GeneralAverage, &record.EmployeeCount,
			&record.CompletionPercentage, &record.LastUpdated, &record.CompanyName,
			&record.PerformanceCycleName, &record.AssessmentMatrixName, &record.TeamName,
			&record.AnalyticsDataJSON,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// RequestRecompute queues a recompute for the matrix. The scoring worker
// consumes the queue and overwrites the analytics rows wholesale.
func (s *Store) RequestRecompute(ctx context.Context, matrixID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO analytics_compute_requests (assessment_matrix_id, requested_at)
    VALUES ($1, now())
    ON CONFLICT (assessment_matrix_id) DO UPDATE SET requested_at = now()
  `, matrixID)
	return err
}

func (s *Store) ListCycleSummaries(ctx context.Context, companyID string) ([]CycleSummary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT c.id, c.name, c.start_date, c.end_date, c.active,
           COUNT(m.id),
           COALESCE(AVG(a.general_average), 0),
           COALESCE(AVG(a.completion_percentage), 0)
    FROM performance_cycles c
    LEFT JOIN assessment_matrices m ON m.performance_cycle_id = c.id
    LEFT JOIN dashboard_analytics a
           ON a.assessment_matrix_id = m.id AND a.scope = $2
    WHERE c.company_id = $1
    GROUP BY c.id, c.name, c.start_date, c.end_date, c.active
    ORDER BY c.start_date DESC NULLS LAST, c.name
  `, companyID, ScopeMatrix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []CycleSummary
	for rows.Next() {
		var summary CycleSummary
		if err := rows.Scan(
			&summary.CycleID, &summary.CycleName, &summary.StartDate, &summary.EndDate,
			&summary.Active, &summary.MatrixCount, &summary.GeneralAverage,
			&summary.CompletionPercentage,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func scanRecord(row pgx.Row) (*Record, error) {
	var record Record
	err := row.Scan(
		&record.CompanyID, &record.PerformanceCycleID, &record.AssessmentMatrixID,
		&record.Scope, &record.TeamID, &record.GeneralAverage, &record.EmployeeCount,
		&record.CompletionPercentage, &record.LastUpdated, &record.CompanyName,
		&record.PerformanceCycleName, &record.AssessmentMatrixName, &record.TeamName,
		&record.AnalyticsDataJSON,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
