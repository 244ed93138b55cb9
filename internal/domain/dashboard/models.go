package dashboard

import "time"

// Scope says whether a stored aggregate covers the whole assessment matrix
// or a single team.
type Scope string

const (
	ScopeMatrix Scope = "ASSESSMENT_MATRIX"
	ScopeTeam   Scope = "TEAM"
)

// Record is one stored analytics aggregate. It is written wholesale by the
// external compute step and read-only here. A missing record is a normal
// state (analytics not computed yet), not an error.
type Record struct {
	CompanyID            string    `json:"companyId"`
	PerformanceCycleID   string    `json:"performanceCycleId"`
	AssessmentMatrixID   string    `json:"assessmentMatrixId"`
	Scope                Scope     `json:"scope"`
	TeamID               string    `json:"teamId"`
	GeneralAverage       float64   `json:"generalAverage"`
	EmployeeCount        int       `json:"employeeCount"`
	CompletionPercentage float64   `json:"completionPercentage"`
	LastUpdated          time.Time `json:"lastUpdated"`
	CompanyName          string    `json:"companyName"`
	PerformanceCycleName string    `json:"performanceCycleName"`
	AssessmentMatrixName string    `json:"assessmentMatrixName"`
	TeamName             string    `json:"teamName"`
	AnalyticsDataJSON    string    `json:"-"`
}

// AnalyticsData is the decoded shape of a record's analytics blob. Every
// field is optional; consumers must be null-safe by construction.
type AnalyticsData struct {
	Pillars   map[string]PillarNode `json:"pillars"`
	WordCloud *WordCloudNode        `json:"wordCloud,omitempty"`
}

type PillarNode struct {
	Name             *string                 `json:"name"`
	Percentage       *float64                `json:"percentage"`
	ActualScore      *float64                `json:"actualScore"`
	PotentialScore   *float64                `json:"potentialScore"`
	GapFromPotential *float64                `json:"gapFromPotential"`
	Categories       map[string]CategoryNode `json:"categories"`
}

type CategoryNode struct {
	Name             *string  `json:"name"`
	Percentage       *float64 `json:"percentage"`
	ActualScore      *float64 `json:"actualScore"`
	PotentialScore   *float64 `json:"potentialScore"`
	GapFromPotential *float64 `json:"gapFromPotential"`
}

type WordCloudNode struct {
	Status         string      `json:"status"`
	TotalResponses int         `json:"totalResponses"`
	Words          []WordEntry `json:"words"`
}

type WordEntry struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// PillarScore and CategoryScore are presentation views rebuilt on every
// read. Missing numbers become 0.0, missing names become placeholders.
type PillarScore struct {
	Name             string                   `json:"name"`
	Percentage       float64                  `json:"percentage"`
	ActualScore      float64                  `json:"actualScore"`
	PotentialScore   float64                  `json:"potentialScore"`
	GapFromPotential float64                  `json:"gapFromPotential"`
	Categories       map[string]CategoryScore `json:"categories"`
}

type CategoryScore struct {
	Name             string  `json:"name"`
	Percentage       float64 `json:"percentage"`
	ActualScore      float64 `json:"actualScore"`
	PotentialScore   float64 `json:"potentialScore"`
	GapFromPotential float64 `json:"gapFromPotential"`
}

// ExtremumEntry is one top/bottom pillar or category summary. Pillar is
// set only for category entries and names the owning pillar.
type ExtremumEntry struct {
	Name           string  `json:"name"`
	Percentage     float64 `json:"percentage"`
	ActualScore    float64 `json:"actualScore"`
	PotentialScore float64 `json:"potentialScore"`
	Pillar         string  `json:"pillar,omitempty"`
}

// Extremes holds the four optional extremum summaries. All four are absent
// together only when no pillar carries a usable percentage.
type Extremes struct {
	TopPillar      *ExtremumEntry `json:"topPillar,omitempty"`
	BottomPillar   *ExtremumEntry `json:"bottomPillar,omitempty"`
	TopCategory    *ExtremumEntry `json:"topCategory,omitempty"`
	BottomCategory *ExtremumEntry `json:"bottomCategory,omitempty"`
}

type OverviewSummary struct {
	GeneralAverage       float64        `json:"generalAverage"`
	TotalEmployees       int            `json:"totalEmployees"`
	CompletionPercentage float64        `json:"completionPercentage"`
	TopPillar            *ExtremumEntry `json:"topPillar,omitempty"`
	BottomPillar         *ExtremumEntry `json:"bottomPillar,omitempty"`
	TopCategory          *ExtremumEntry `json:"topCategory,omitempty"`
	BottomCategory       *ExtremumEntry `json:"bottomCategory,omitempty"`
}

type OverviewMetadata struct {
	CompanyName          string     `json:"companyName"`
	PerformanceCycleName string     `json:"performanceCycleName"`
	AssessmentMatrixName string     `json:"assessmentMatrixName"`
	LastUpdated          *time.Time `json:"lastUpdated,omitempty"`
}

type TeamBreakdown struct {
	TeamID               string                 `json:"teamId"`
	TeamName             string                 `json:"teamName"`
	TotalScore           float64                `json:"totalScore"`
	EmployeeCount        int                    `json:"employeeCount"`
	CompletionPercentage float64                `json:"completionPercentage"`
	PillarScores         map[string]PillarScore `json:"pillarScores"`
}

type OverviewResponse struct {
	AssessmentMatrixID string           `json:"assessmentMatrixId"`
	Metadata           OverviewMetadata `json:"metadata"`
	Summary            OverviewSummary  `json:"summary"`
	Teams              []TeamBreakdown  `json:"teams"`
}

type WordCloudView struct {
	Status         string      `json:"status"`
	TotalResponses int         `json:"totalResponses"`
	Words          []WordEntry `json:"words"`
}

type TeamResponse struct {
	TeamID               string                 `json:"teamId"`
	TeamName             string                 `json:"teamName"`
	TotalScore           float64                `json:"totalScore"`
	EmployeeCount        int                    `json:"employeeCount"`
	CompletionPercentage float64                `json:"completionPercentage"`
	PillarScores         map[string]PillarScore `json:"pillarScores"`
	WordCloud            WordCloudView          `json:"wordCloud"`
}

type ComputeAck struct {
	Success            bool      `json:"success"`
	AssessmentMatrixID string    `json:"assessmentMatrixId"`
	ComputedAt         time.Time `json:"computedAt"`
}

// CycleSummary is one row of the performance-cycle summary listing.
type CycleSummary struct {
	CycleID              string     `json:"cycleId"`
	CycleName            string     `json:"cycleName"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	Active               bool       `json:"active"`
	MatrixCount          int        `json:"matrixCount"`
	GeneralAverage       float64    `json:"generalAverage"`
	CompletionPercentage float64    `json:"completionPercentage"`
}

// MatrixRef is the slice of an assessment matrix the guard needs.
type MatrixRef struct {
	ID       string
	TenantID string
	Name     string
}
