package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Applications"

var exportColumns = []string{
	"ID", "CANDIDATE", "JOB TITLE", "COMPANY", "REQUIREMENTS", "APPLIED AT", "STATUS", "RESUME SIZE (BYTES)",
}

// ExportApplications writes the joined application list to an xlsx workbook.
// Resume payloads are summarized by size; download them individually.
func (uc *applicationUsecase) ExportApplications(ctx context.Context) ([]byte, string, error) {
	apps, err := uc.ListApplications(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, name := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, name)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A8A"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(exportSheet, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		values := []interface{}{
			app.ID,
			app.CandidateUsername,
			app.JobTitle,
			app.Company,
			app.Requirements,
			app.AppliedAt.Format("2006-01-02 15:04:05"),
			string(app.Status),
			len(app.Resume),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(exportSheet, cell, value)
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("applications_%s.xlsx", uc.now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
