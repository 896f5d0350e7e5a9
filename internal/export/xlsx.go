package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/minqi/tsgen/internal/models"
)

const sheetName = "工时表"

// WriteXLSX writes the result as an Excel workbook with a single
// 工时表 sheet mirroring the CSV layout.
func WriteXLSX(w io.Writer, result *models.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return err
		}
	}

	row := 2
	for _, entry := range result.Entries {
		values := []any{entry.Date, entry.WorkContent, entry.HoursSpent, entry.RemainingHours}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	row++ // blank separator row
	stats := [][2]any{
		{"统计信息", ""},
		{"总工时", result.TotalHours},
		{"工作天数", result.TotalDays},
		{"平均每日工时", result.AverageHoursPerDay},
	}
	for _, pair := range stats {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), pair[0]); err != nil {
			return err
		}
		if pair[1] != "" {
			if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), pair[1]); err != nil {
				return err
			}
		}
		row++
	}

	if err := f.SetColWidth(sheetName, "A", "A", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 60); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "D", 10); err != nil {
		return err
	}

	return f.Write(w)
}
