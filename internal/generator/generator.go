// Package generator runs the full timesheet pipeline: calendar,
// distributor, formatter. Each stage consumes the previous stage's
// complete output.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/minqi/tsgen/internal/agent"
	"github.com/minqi/tsgen/internal/calendar"
	"github.com/minqi/tsgen/internal/llm"
	"github.com/minqi/tsgen/internal/models"
	"github.com/minqi/tsgen/internal/timesheet"
)

// Generate runs one generation request. client may be nil for a fully
// deterministic run; rng may be nil for a time-seeded one. Only input
// validation errors are returned; model trouble surfaces as warnings
// on the result.
func Generate(ctx context.Context, cfg models.ProjectConfig, tasks []models.Task, client *llm.Client, rng *rand.Rand) (*models.Result, []string, error) {
	workDays, err := calendar.Generate(cfg.StartDate, cfg.EndDate, cfg.WorkingHours.DailyHours, calendar.Schedule{
		Type:            cfg.WorkingHours.ScheduleType,
		SingleRestDay:   cfg.WorkingHours.SingleRestDay,
		BigWeek:         cfg.WorkingHours.BigWeek,
		ExcludeHolidays: cfg.WorkingHours.ExcludeHolidays,
	})
	if err != nil {
		return nil, nil, err
	}

	out, err := agent.New(client, rng).Process(ctx, tasks, workDays, cfg.DistributionMode)
	if err != nil {
		return nil, nil, err
	}

	entries := timesheet.Format(out.DailyAssignments, cfg.WorkContent)
	summary := timesheet.Summarize(entries)

	result := &models.Result{
		ID:                 uuid.NewString(),
		GeneratedAt:        time.Now(),
		TotalHours:         summary.TotalHours,
		TotalDays:          summary.TotalDays,
		AverageHoursPerDay: summary.AverageHoursPerDay,
		Config:             cfg,
		Entries:            entries,
	}
	for i := range result.Entries {
		result.Entries[i].ResultID = result.ID
	}
	return result, out.Warnings, nil
}
