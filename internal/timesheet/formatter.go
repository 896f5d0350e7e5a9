// Package timesheet converts daily assignments into display-ready
// timesheet rows.
package timesheet

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/minqi/tsgen/internal/models"
)

// StandardDailyHours is the nominal day length used for the
// remaining-hours column. It is intentionally independent of the
// configured daily hours: downstream exports rely on the fixed 8h
// baseline, so it must not be derived from the schedule.
const StandardDailyHours = 8.0

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format produces one entry per assignment, in the same date order.
// A non-empty workContentOverride is applied verbatim to every row.
func Format(assignments []models.DailyAssignment, workContentOverride string) []models.TimesheetEntry {
	entries := make([]models.TimesheetEntry, 0, len(assignments))
	for _, assignment := range assignments {
		hours := round2(assignment.TotalHours)
		entry := models.TimesheetEntry{
			ID:             uuid.NewString(),
			Date:           assignment.Date,
			WorkContent:    workContent(assignment, workContentOverride),
			HoursSpent:     hours,
			RemainingHours: round2(math.Max(0, StandardDailyHours-hours)),
			IsEditable:     true,
		}
		if len(assignment.Tasks) > 0 {
			entry.TaskID = assignment.Tasks[0].TaskID
		}
		entries = append(entries, entry)
	}
	return entries
}

// Summarize computes the totals the caller contract reports alongside
// the entries
func Summarize(entries []models.TimesheetEntry) models.Summary {
	summary := models.Summary{TotalDays: len(entries)}
	for _, entry := range entries {
		summary.TotalHours += entry.HoursSpent
	}
	summary.TotalHours = round2(summary.TotalHours)
	if summary.TotalDays > 0 {
		summary.AverageHoursPerDay = round2(summary.TotalHours / float64(summary.TotalDays))
	}
	return summary
}

func workContent(assignment models.DailyAssignment, override string) string {
	if override != "" {
		return override
	}
	if len(assignment.Tasks) == 0 {
		return "其他工作内容"
	}
	if len(assignment.Tasks) == 1 {
		task := assignment.Tasks[0]
		if task.WorkDescription != "" {
			return task.WorkDescription
		}
		return task.TaskName + "相关工作"
	}

	// Multiple tasks: join at most two descriptions, noting the rest.
	var descriptions []string
	for _, task := range assignment.Tasks {
		if task.WorkDescription != "" {
			descriptions = append(descriptions, task.WorkDescription)
			if len(descriptions) == 2 {
				break
			}
		}
	}
	if len(descriptions) > 0 {
		joined := strings.Join(descriptions, "；")
		if len(assignment.Tasks) > 2 {
			return fmt.Sprintf("%s等%d项工作", joined, len(assignment.Tasks))
		}
		return joined
	}

	names := make([]string, 0, 2)
	for _, task := range assignment.Tasks {
		names = append(names, task.TaskName)
		if len(names) == 2 {
			break
		}
	}
	joined := strings.Join(names, "、")
	if len(assignment.Tasks) > 2 {
		return fmt.Sprintf("%s等%d个功能模块开发", joined, len(assignment.Tasks))
	}
	return joined + "功能开发"
}
