package taskreport

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/taskmetrics/task-incentive/internal/core/model"
)

func renderReportPDF(rep *model.TaskReport) ([]byte, error) {
	employeeName := fmt.Sprintf("#%d", rep.EmployeeID)
	if rep.Employee != nil {
		employeeName = rep.Employee.Name
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", rep.ReportMonth))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Submitted: %s", rep.SubmissionDate.Format("2006-01-02")))
	pdf.Ln(10)
	if rep.TotalHours != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Total hours: %.2f", *rep.TotalHours))
		pdf.Ln(7)
	}
	if rep.TotalTask != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Total tasks: %s", *rep.TotalTask))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
