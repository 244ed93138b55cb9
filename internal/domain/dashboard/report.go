package dashboard

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// OverviewReportPDF renders the overview aggregate as a printable
// scorecard. The same tenant guard applies as for the JSON overview.
func (s *Service) OverviewReportPDF(ctx context.Context, matrixID, tenantID string) ([]byte, error) {
	overview, err := s.Overview(ctx, matrixID, tenantID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Assessment Scorecard")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Company: %s", overview.Metadata.CompanyName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Performance cycle: %s", overview.Metadata.PerformanceCycleName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Assessment matrix: %s", overview.Metadata.AssessmentMatrixName))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("General average: %.1f", overview.Summary.GeneralAverage))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employees: %d", overview.Summary.TotalEmployees))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Completion: %.1f%%", overview.Summary.CompletionPercentage))
	pdf.Ln(10)

	if overview.Summary.TopPillar != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Top pillar: %s (%.1f%%)", overview.Summary.TopPillar.Name, overview.Summary.TopPillar.Percentage))
		pdf.Ln(7)
	}
	if overview.Summary.BottomPillar != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Bottom pillar: %s (%.1f%%)", overview.Summary.BottomPillar.Name, overview.Summary.BottomPillar.Percentage))
		pdf.Ln(7)
	}
	if overview.Summary.TopCategory != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Top category: %s / %s (%.1f%%)", overview.Summary.TopCategory.Pillar, overview.Summary.TopCategory.Name, overview.Summary.TopCategory.Percentage))
		pdf.Ln(7)
	}
	if overview.Summary.BottomCategory != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Bottom category: %s / %s (%.1f%%)", overview.Summary.BottomCategory.Pillar, overview.Summary.BottomCategory.Name, overview.Summary.BottomCategory.Percentage))
		pdf.Ln(7)
	}

	if len(overview.Teams) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Teams")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, team := range overview.Teams {
			pdf.Cell(0, 7, fmt.Sprintf("%s - score %.1f, %d employees, %.1f%% complete",
				team.TeamName, team.TotalScore, team.EmployeeCount, team.CompletionPercentage))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render scorecard pdf: %w", err)
	}
	return buf.Bytes(), nil
}
