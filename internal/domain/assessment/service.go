package assessment

import (
	"context"
	"time"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) ListCycles(ctx context.Context, companyID string) ([]PerformanceCycle, error) {
	return s.store.ListCycles(ctx, companyID)
}

func (s *Service) CreateCycle(ctx context.Context, companyID, name, description string, startDate, endDate *time.Time, active bool) (string, error) {
	return s.store.CreateCycle(ctx, companyID, name, description, startDate, endDate, active)
}

func (s *Service) UpdateCycleActive(ctx context.Context, companyID, cycleID string, active bool) error {
	return s.store.UpdateCycleActive(ctx, companyID, cycleID, active)
}

func (s *Service) ListMatrices(ctx context.Context, companyID, cycleID string) ([]Matrix, error) {
	return s.store.ListMatrices(ctx, companyID, cycleID)
}

func (s *Service) GetMatrix(ctx context.Context, companyID, matrixID string) (*Matrix, error) {
	return s.store.GetMatrix(ctx, companyID, matrixID)
}

func (s *Service) CreateMatrix(ctx context.Context, companyID, cycleID, name, description string) (string, error) {
	return s.store.CreateMatrix(ctx, companyID, cycleID, name, description)
}

func (s *Service) ListQuestions(ctx context.Context, companyID, matrixID string) ([]Question, error) {
	return s.store.ListQuestions(ctx, companyID, matrixID)
}

func (s *Service) CreateQuestion(ctx context.Context, question Question) (string, error) {
	return s.store.CreateQuestion(ctx, question)
}

func (s *Service) DeleteQuestion(ctx context.Context, companyID, questionID string) error {
	return s.store.DeleteQuestion(ctx, companyID, questionID)
}

func (s *Service) ListEmployeeAssessments(ctx context.Context, companyID, matrixID string, limit, offset int) ([]EmployeeAssessment, error) {
	return s.store.ListEmployeeAssessments(ctx, companyID, matrixID, limit, offset)
}

func (s *Service) CreateEmployeeAssessment(ctx context.Context, ea EmployeeAssessment) (string, error) {
	return s.store.CreateEmployeeAssessment(ctx, ea)
}

func (s *Service) UpdateEmployeeAssessmentStatus(ctx context.Context, companyID, assessmentID, status string, score *float64) error {
	return s.store.UpdateEmployeeAssessmentStatus(ctx, companyID, assessmentID, status, score)
}

func (s *Service) GetEmployeeAssessment(ctx context.Context, companyID, assessmentID string) (*EmployeeAssessment, error) {
	return s.store.GetEmployeeAssessment(ctx, companyID, assessmentID)
}
