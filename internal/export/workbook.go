// Package export writes quotes as XLSX workbooks.
package export

import (
	"fmt"

	"github.com/diewo77/go-quotes/internal/services"
	"github.com/xuri/excelize/v2"
)

// ContentType of generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	TasksSheet        = "Tasks"
	DeliverablesSheet = "Deliverables"
)

var taskHeaders = []string{"Task ID", "Task", "Description", "Included", "Deliverable", "Hours"}

// Workbook renders the task list, custom features and totals on one sheet
// and the deliverables on a second one.
func Workbook(doc *services.QuoteDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", TasksSheet)
	if _, err := f.NewSheet(DeliverablesSheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	q := doc.Quote
	f.SetCellValue(TasksSheet, "A1", fmt.Sprintf("Quote #%d: %s", q.ID, q.ProjectName))
	f.SetCellValue(TasksSheet, "A2", q.WebsiteType.Name)
	f.SetCellValue(TasksSheet, "F2", doc.Date)

	const headerRow = 4
	for i, h := range taskHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(TasksSheet, cell, h)
		f.SetCellStyle(TasksSheet, cell, cell, bold)
	}

	row := headerRow + 1
	for _, t := range doc.Tasks {
		f.SetCellValue(TasksSheet, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(TasksSheet, fmt.Sprintf("B%d", row), t.Name)
		f.SetCellValue(TasksSheet, fmt.Sprintf("C%d", row), t.Description)
		f.SetCellValue(TasksSheet, fmt.Sprintf("D%d", row), yesNo(t.Included))
		f.SetCellValue(TasksSheet, fmt.Sprintf("E%d", row), yesNo(t.IsDeliverable))
		f.SetCellValue(TasksSheet, fmt.Sprintf("F%d", row), t.Hours)
		row++
	}
	for _, cf := range q.CustomFeatures {
		f.SetCellValue(TasksSheet, fmt.Sprintf("B%d", row), cf.Name)
		f.SetCellValue(TasksSheet, fmt.Sprintf("C%d", row), "Custom feature")
		f.SetCellValue(TasksSheet, fmt.Sprintf("D%d", row), yesNo(true))
		f.SetCellValue(TasksSheet, fmt.Sprintf("F%d", row), cf.Hours)
		row++
	}

	row++
	rate, _ := q.HourlyRate.Float64()
	total, _ := doc.TotalAmount.Float64()
	summary := []struct {
		label string
		value any
	}{
		{"Base hours", q.WebsiteType.BaseHours},
		{"Total hours", q.TotalHours},
		{"Hourly rate", rate},
		{"Total", total},
	}
	for _, s := range summary {
		label := fmt.Sprintf("E%d", row)
		f.SetCellValue(TasksSheet, label, s.label)
		f.SetCellStyle(TasksSheet, label, label, bold)
		f.SetCellValue(TasksSheet, fmt.Sprintf("F%d", row), s.value)
		row++
	}
	f.SetColWidth(TasksSheet, "B", "C", 40)

	f.SetCellValue(DeliverablesSheet, "A1", "Deliverable")
	f.SetCellValue(DeliverablesSheet, "B1", "Description")
	f.SetCellStyle(DeliverablesSheet, "A1", "B1", bold)
	for i, d := range doc.Deliverables {
		f.SetCellValue(DeliverablesSheet, fmt.Sprintf("A%d", i+2), d.Name)
		f.SetCellValue(DeliverablesSheet, fmt.Sprintf("B%d", i+2), d.Description)
	}
	f.SetColWidth(DeliverablesSheet, "A", "B", 45)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
