package assessment

import "time"

type PerformanceCycle struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Matrix struct {
	ID                 string    `json:"id"`
	CompanyID          string    `json:"companyId"`
	PerformanceCycleID string    `json:"performanceCycleId"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Question struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"companyId"`
	MatrixID     string  `json:"assessmentMatrixId"`
	PillarName   string  `json:"pillarName"`
	CategoryName string  `json:"categoryName"`
	Text         string  `json:"text"`
	Type         string  `json:"type"`
	Points       float64 `json:"points"`
}

type EmployeeAssessment struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"companyId"`
	MatrixID      string     `json:"assessmentMatrixId"`
	TeamID        string     `json:"teamId,omitempty"`
	EmployeeName  string     `json:"employeeName"`
	EmployeeEmail string     `json:"employeeEmail"`
	Status        string     `json:"status"`
	Score         float64    `json:"score"`
	AnsweredAt    *time.Time `json:"answeredAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
