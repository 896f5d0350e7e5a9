package generator_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/minqi/tsgen/internal/agent"
	"github.com/minqi/tsgen/internal/calendar"
	"github.com/minqi/tsgen/internal/generator"
	"github.com/minqi/tsgen/internal/models"
)

func weekConfig() models.ProjectConfig {
	return models.ProjectConfig{
		StartDate: "2025-06-02",
		EndDate:   "2025-06-08",
		WorkingHours: models.WorkingHours{
			DailyHours:      8,
			ScheduleType:    models.ScheduleDouble,
			ExcludeHolidays: true,
		},
		DistributionMode: models.ModeDaily,
	}
}

func TestGenerateFullPipeline(t *testing.T) {
	tasks := []models.Task{
		{TaskID: "a", Name: "登录模块", TotalHours: 20, Priority: 3},
		{TaskID: "b", Name: "报表导出", TotalHours: 20, Priority: 2},
	}
	result, warnings, err := generator.Generate(context.Background(), weekConfig(), tasks, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	// Five workdays in that week under double rest.
	if result.TotalDays != 5 || len(result.Entries) != 5 {
		t.Fatalf("TotalDays = %d, entries = %d", result.TotalDays, len(result.Entries))
	}
	if result.TotalHours != 40 {
		t.Errorf("TotalHours = %v, want 40", result.TotalHours)
	}
	if result.AverageHoursPerDay != 8 {
		t.Errorf("AverageHoursPerDay = %v, want 8", result.AverageHoursPerDay)
	}
	if result.ID == "" || result.GeneratedAt.IsZero() {
		t.Error("result identity not filled in")
	}
	for _, e := range result.Entries {
		if e.ResultID != result.ID {
			t.Errorf("entry %s not linked to result", e.ID)
		}
	}
	if result.Config.StartDate != "2025-06-02" {
		t.Error("config snapshot missing")
	}
}

func TestGenerateSummaryMatchesEntries(t *testing.T) {
	tasks := []models.Task{{TaskID: "a", Name: "A", TotalHours: 17.5, Priority: 2}}
	result, _, err := generator.Generate(context.Background(), weekConfig(), tasks, nil, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	total := 0.0
	for _, e := range result.Entries {
		total += e.HoursSpent
	}
	if diff := total - result.TotalHours; diff > 0.01 || diff < -0.01 {
		t.Errorf("entry total %v != summary total %v", total, result.TotalHours)
	}
}

func TestGenerateInputErrors(t *testing.T) {
	cfg := weekConfig()
	_, _, err := generator.Generate(context.Background(), cfg, nil, nil, nil)
	if !errors.Is(err, agent.ErrEmptyInput) {
		t.Errorf("empty tasks: err = %v", err)
	}

	cfg.StartDate = "2025-07-01"
	cfg.EndDate = "2025-06-01"
	_, _, err = generator.Generate(context.Background(), cfg, []models.Task{{TaskID: "a", Name: "A", TotalHours: 8}}, nil, nil)
	if !errors.Is(err, calendar.ErrInvalidDateRange) {
		t.Errorf("inverted range: err = %v", err)
	}
}
