package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"assesshub/internal/platform/db"
)

type StoreAPI interface {
	CreateCompany(ctx context.Context, name, email, size, industry string) (string, error)
	GetCompany(ctx context.Context, companyID string) (*Company, error)
	UpdateCompany(ctx context.Context, companyID, name, email, size, industry string) error
	ListDepartments(ctx context.Context, companyID string) ([]Department, error)
	CreateDepartment(ctx context.Context, companyID, name string) (string, error)
	ListTeams(ctx context.Context, companyID string) ([]Team, error)
	GetTeam(ctx context.Context, companyID, teamID string) (*Team, error)
	CreateTeam(ctx context.Context, companyID, departmentID, name, description string) (string, error)
	UpdateTeam(ctx context.Context, companyID, teamID, name, description string) error
	DeleteTeam(ctx context.Context, companyID, teamID string) error
}

type Store struct {
	DB db.Pool
}

func NewStore(pool db.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) CreateCompany(ctx context.Context, name, email, size, industry string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO companies (name, email, size, industry)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, name, email, size, industry).Scan(&id)
	return id, err
}

func (s *Store) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	var company Company
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(email, ''), COALESCE(size, ''), COALESCE(industry, ''), created_at
    FROM companies
    WHERE id = $1
  `, companyID).Scan(&company.ID, &company.Name, &company.Email, &company.Size, &company.Industry, &company.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *Store) UpdateCompany(ctx context.Context, companyID, name, email, size, industry string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE companies
    SET name = $2, email = $3, size = $4, industry = $5
    WHERE id = $1
  `, companyID, name, email, size, industry)
	return err
}

func (s *Store) ListDepartments(ctx context.Context, companyID string) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id, name
    FROM departments
    WHERE company_id = $1
    ORDER BY name
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []Department
	for rows.Next() {
		var department Department
		if err := rows.Scan(&department.ID, &department.CompanyID, &department.Name); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}
	return departments, rows.Err()
}

func (s *Store) CreateDepartment(ctx context.Context, companyID, name string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (company_id, name)
    VALUES ($1, $2)
    RETURNING id
  `, companyID, name).Scan(&id)
	return id, err
}

func (s *Store) ListTeams(ctx context.Context, companyID string) ([]Team, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, company_id, COALESCE(department_id::text, ''), name, COALESCE(description, '')
    FROM teams
    WHERE company_id = $1
    ORDER BY name
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var team Team
		if err := rows.Scan(&team.ID, &team.CompanyID, &team.DepartmentID, &team.Name, &team.Description); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (s *Store) GetTeam(ctx context.Context, companyID, teamID string) (*Team, error) {
	var team Team
	err := s.DB.QueryRow(ctx, `
    SELECT id, company_id, COALESCE(department_id::text, ''), name, COALESCE(description, '')
    FROM teams
    WHERE company_id = $1 AND id = $2
  `, companyID, teamID).Scan(&team.ID, &team.CompanyID, &team.DepartmentID, &team.Name, &team.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *Store) CreateTeam(ctx context.Context, companyID, departmentID, name, description string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO teams (company_id, department_id, name, description)
    VALUES ($1, NULLIF($2, '')::uuid, $3, $4)
    RETURNING id
  `, companyID, departmentID, name, description).Scan(&id)
	return id, err
}

func (s *Store) UpdateTeam(ctx context.Context, companyID, teamID, name, description string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE teams
    SET name = $3, description = $4
    WHERE company_id = $1 AND id = $2
  `, companyID, teamID, name, description)
	return err
}

func (s *Store) DeleteTeam(ctx context.Context, companyID, teamID string) error {
	_, err := s.DB.Exec(ctx, `
    DELETE FROM teams
    WHERE company_id = $1 AND id = $2
  `, companyID, teamID)
	return err
}
