package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"assesshub/internal/platform/db"
)

type StoreAPI interface {
	ListCycles(ctx context.Context, companyID string) ([]PerformanceCycle, error)
	CreateCycle(ctx context.Context, companyID, name, description string, startDate, endDate *time.Time, active bool) (string, error)
	UpdateCycleActive(ctx context.Context, companyID, cycleID string, active bool) error
	ListMatrices(ctx context.Context, companyID, cycleID string) ([]Matrix, error)
	GetMatrix(ctx context.Context, companyID, matrixID string) (*Matrix, error)
	CreateMatrix(ctx context.Context, companyID, cycleID, name, description string) (string, error)
	ListQuestions(ctx context.Context, companyID, matrixID string) ([]Question, error)
	CreateQuestion(ctx context.Context, question Question) (string, error)
	DeleteQuestion(ctx context.Context, companyID, questionID string) error
	ListEmployeeAssessments(ctx context.Context, companyID, matrixID string, limit, offset int) ([]EmployeeAssessment, error)
	CreateEmployeeAssessment(ctx context.Context, ea EmployeeAssessment) (string, error)
	UpdateEmployeeAssessmentStatus(ctx context.Context, companyID, assessmentID, status string, score *float64) error
	GetEmployeeAssessment(ctx context.Context, companyID, assessmentID string) (*EmployeeAssessment, error)
}

type Store struct {
	DB db.Pool
}

func NewStore(pool db.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) ListCycles(ctx context.Context, companyID string) ([]PerformanceCycle, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id, name, COALESCE(description, ''), start_date, end_date, active, created_at
    FROM performance_cycles
    WHERE company_id = $1
    ORDER BY created_at DESC
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cycles []PerformanceCycle
	for rows.Next() {
		var cycle PerformanceCycle
		if err := rows.Scan(&cycle.ID, &cycle.CompanyID, &cycle.Name, &cycle.Description, &cycle.StartDate, &cycle.EndDate, &cycle.Active, &cycle.CreatedAt); err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
	}
	return cycles, rows.Err()
}

func (s *Store) CreateCycle(ctx context.Context, companyID, name, description string, startDate, endDate *time.Time, active bool) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_cycles (company_id, name, description, start_date, end_date, active)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
  `, companyID, name, description, startDate, endDate, active).Scan(&id)
	return id, err
}

func (s *Store) UpdateCycleActive(ctx context.Context, companyID, cycleID string, active bool) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE performance_cycles
    SET active = $3
    WHERE company_id = $1 AND id = $2
  `, companyID, cycleID, active)
	return err
}

func (s *Store) ListMatrices(ctx context.Context, companyID, cycleID string) ([]Matrix, error) {
	query := `
    SELECT id, company_id, performance_cycle_id, name, COALESCE(description, ''), created_at
    FROM assessment_matrices
    WHERE company_id = $1
  `
	args := []any{companyID}
	if cycleID != "" {
		query += " AND performance_cycle_id = $2"
		args = append(args, cycleID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matrices []Matrix
	for rows.Next() {
		var matrix Matrix
		if err := rows.Scan(&matrix.ID, &matrix.CompanyID, &matrix.PerformanceCycleID, &matrix.Name, &matrix.Description, &matrix.CreatedAt); err != nil {
			return nil, err
		}
		matrices = append(matrices, matrix)
	}
	return matrices, rows.Err()
}

func (s *Store) GetMatrix(ctx context.Context, companyID, matrixID string) (*Matrix, error) {
	var matrix Matrix
	err := s.DB.QueryRow(ctx, `
    SELECT id, company_id, performance_cycle_id, name, COALESCE(description, ''), created_at
    FROM assessment_matrices
    WHERE company_id = $1 AND id = $2
  `, companyID, matrixID).Scan(&matrix.ID, &matrix.CompanyID, &matrix.PerformanceCycleID, &matrix.Name, &matrix.Description, &matrix.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &matrix, nil
}

func (s *Store) CreateMatrix(ctx context.Context, companyID, cycleID, name, description string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO assessment_matrices (company_id, performance_cycle_id, name, description)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, companyID, cycleID, name, description).Scan(&id)
	return id, err
}

func (s *Store) ListQuestions(ctx context.Context, companyID, matrixID string) ([]Question, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id, assessment_matrix_id, pillar_name, category_name, text, type, points
    FROM questions
    WHERE company_id = $1 AND assessment_matrix_id = $2
    ORDER BY pillar_name, category_name, created_at
  `, companyID, matrixID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var question Question
		if err := rows.Scan(&question.ID, &question.CompanyID, &question.MatrixID, &question.PillarName, &question.CategoryName, &question.Text, &question.Type, &question.Points); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

func (s *Store) CreateQuestion(ctx context.Context, question Question) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO questions (company_id, assessment_matrix_id, pillar_name, category_name, text, type, points)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, question.CompanyID, question.MatrixID, question.PillarName, question.CategoryName, question.Text, question.Type, question.Points).Scan(&id)
	return id, err
}

func (s *Store) DeleteQuestion(ctx context.Context, companyID, questionID string) error {
	_, err := s.DB.Exec(ctx, `
    DELETE FROM questions
    WHERE company_id = $1 AND id = $2
  `, companyID, questionID)
	return err
}

func (s *Store) ListEmployeeAssessments(ctx context.Context, companyID, matrixID string, limit, offset int) ([]EmployeeAssessment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id, assessment_matrix_id, COALESCE(team_id::text, ''), employee_name, employee_email, status, score, answered_at, created_at
    FROM employee_assessments
    WHERE company_id = $1 AND assessment_matrix_id = $2
    ORDER BY created_at DESC
    LIMIT $3 OFFSET $4
  `, companyID, matrixID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []EmployeeAssessment
	for rows.Next() {
		var ea EmployeeAssessment
		if err := rows.Scan(&ea.ID, &ea.CompanyID, &ea.MatrixID, &ea.TeamID, &ea.EmployeeName, &ea.EmployeeEmail, &ea.Status, &ea.Score, &ea.AnsweredAt, &ea.CreatedAt); err != nil {
			return nil, err
		}
		assessments = append(assessments, ea)
	}
	return assessments, rows.Err()
}

func (s *Store) CreateEmployeeAssessment(ctx context.Context, ea EmployeeAssessment) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_assessments (company_id, assessment_matrix_id, team_id, employee_name, employee_email, status)
    VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6)
    RETURNING id
  `, ea.CompanyID, ea.MatrixID, ea.TeamID, ea.EmployeeName, ea.EmployeeEmail, ea.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateEmployeeAssessmentStatus(ctx context.Context, companyID, assessmentID, status string, score *float64) error {
	if score != nil {
		_, err := s.DB.Exec(ctx, `
      UPDATE employee_assessments
      SET status = $3, score = $4, answered_at = now()
      WHERE company_id = $1 AND id = $2
    `, companyID, assessmentID, status, *score)
		return err
	}
	_, err := s.DB.Exec(ctx, `
    UPDATE employee_assessments
    SET status = $3
    WHERE company_id = $1 AND id = $2
  `, companyID, assessmentID, status)
	return err
}

func (s *Store) GetEmployeeAssessment(ctx context.Context, companyID, assessmentID string) (*EmployeeAssessment, error) {
	var ea EmployeeAssessment
	err := s.DB.QueryRow(ctx, `
    SELECT id, company_id, assessment_matrix_id, COALESCE(team_id::text, ''), employee_name, employee_email, status, score, answered_at, created_at
    FROM employee_assessments
    WHERE company_id = $1 AND id = $2
  `, companyID, assessmentID).Scan(&ea.ID, &ea.CompanyID, &ea.MatrixID, &ea.TeamID, &ea.EmployeeName, &ea.EmployeeEmail, &ea.Status, &ea.Score, &ea.AnsweredAt, &ea.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ea, nil
}
