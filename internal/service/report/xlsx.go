package report

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/pkg/timeutil"
	"github.com/xuri/excelize/v2"
)

var dailySummaryHeaders = []string{
	"Employee", "Email", "Check In", "Check Out",
	"Recess", "Status", "Late", "Work Minutes",
}

// DailySummaryXLSX implements report.ReportService.
func (s *ReportServiceImpl) DailySummaryXLSX(ctx context.Context, date time.Time) ([]byte, error) {
	rows, err := s.DailySummary(ctx, date)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Daily Summary"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range dailySummaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(dailySummaryHeaders), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, row := range rows {
		values := []any{
			row.EmployeeName,
			row.EmployeeEmail,
			orEmpty(row.CheckInTime),
			orEmpty(row.CheckOutTime),
			row.TotalRecessDuration,
			row.CurrentStatus,
			row.LateCheckIn,
		}
		for j, val := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, val)
		}
		if row.WorkMinutes != nil {
			cell, _ := excelize.CoordinatesToCellName(len(values)+1, i+2)
			f.SetCellValue(sheet, cell, *row.WorkMinutes)
		}
	}

	f.SetCellValue(sheet, "A"+fmt.Sprint(len(rows)+3), "Generated for "+timeutil.FormatDMY(date))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render daily summary workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
