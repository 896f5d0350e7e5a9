// Package export renders a stored result into the formats the CLI can
// write out: CSV, Excel, plain text, and a tab-separated string for
// pasting into spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/minqi/tsgen/internal/models"
)

var header = []string{"日期", "工作内容", "消耗工时", "剩余工时"}

func formatHours(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// WriteCSV writes the result as UTF-8 CSV with a BOM so Excel detects
// the encoding.
func WriteCSV(w io.Writer, result *models.Result) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, entry := range result.Entries {
		row := []string{entry.Date, entry.WorkContent, formatHours(entry.HoursSpent), formatHours(entry.RemainingHours)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	stats := [][]string{
		{"", "", "", ""},
		{"统计信息", "", "", ""},
		{"总工时", formatHours(result.TotalHours), "", ""},
		{"工作天数", fmt.Sprintf("%d", result.TotalDays), "", ""},
		{"平均每日工时", formatHours(result.AverageHoursPerDay), "", ""},
	}
	for _, row := range stats {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// TSV returns the entries as tab-separated text, one row per line,
// suitable for the clipboard.
func TSV(result *models.Result) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, "\t"))
	b.WriteByte('\n')
	for _, entry := range result.Entries {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n", entry.Date, entry.WorkContent, formatHours(entry.HoursSpent), formatHours(entry.RemainingHours))
	}
	return b.String()
}

// WriteText writes a human-readable report
func WriteText(w io.Writer, result *models.Result) error {
	title := result.Name
	if title == "" {
		title = "工时表"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "生成时间: %s\n", result.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "日期范围: %s 至 %s\n\n", result.Config.StartDate, result.Config.EndDate)
	for _, entry := range result.Entries {
		fmt.Fprintf(&b, "%s  %s小时  %s\n", entry.Date, formatHours(entry.HoursSpent), entry.WorkContent)
	}
	fmt.Fprintf(&b, "\n统计信息\n")
	fmt.Fprintf(&b, "总工时: %s\n", formatHours(result.TotalHours))
	fmt.Fprintf(&b, "工作天数: %d\n", result.TotalDays)
	fmt.Fprintf(&b, "平均每日工时: %s\n", formatHours(result.AverageHoursPerDay))
	_, err := io.WriteString(w, b.String())
	return err
}
