package directory

import "time"

type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Size      string    `json:"size"`
	Industry  string    `json:"industry"`
	CreatedAt time.Time `json:"createdAt"`
}

type Department struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
}

type Team struct {
	ID           string `json:"id"`
	CompanyID    string `json:"companyId"`
	DepartmentID string `json:"departmentId,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}
