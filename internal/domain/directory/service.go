package directory

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) CreateCompany(ctx context.Context, name, email, size, industry string) (string, error) {
	return s.store.CreateCompany(ctx, name, email, size, industry)
}

func (s *Service) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	return s.store.GetCompany(ctx, companyID)
}

func (s *Service) UpdateCompany(ctx context.Context, companyID, name, email, size, industry string) error {
	return s.store.UpdateCompany(ctx, companyID, name, email, size, industry)
}

func (s *Service) ListDepartments(ctx context.Context, companyID string) ([]Department, error) {
	return s.store.ListDepartments(ctx, companyID)
}

func (s *Service) CreateDepartment(ctx context.Context, companyID, name string) (string, error) {
	return s.store.CreateDepartment(ctx, companyID, name)
}

func (s *Service) ListTeams(ctx context.Context, companyID string) ([]Team, error) {
	return s.store.ListTeams(ctx, companyID)
}

func (s *Service) GetTeam(ctx context.Context, companyID, teamID string) (*Team, error) {
	return s.store.GetTeam(ctx, companyID, teamID)
}

func (s *Service) CreateTeam(ctx context.Context, companyID, departmentID, name, description string) (string, error) {
	return s.store.CreateTeam(ctx, companyID, departmentID, name, description)
}

func (s *Service) UpdateTeam(ctx context.Context, companyID, teamID, name, description string) error {
	return s.store.UpdateTeam(ctx, companyID, teamID, name, description)
}

func (s *Service) DeleteTeam(ctx context.Context, companyID, teamID string) error {
	return s.store.DeleteTeam(ctx, companyID, teamID)
}
