package timesheet_test

import (
	"testing"

	"github.com/minqi/tsgen/internal/models"
	"github.com/minqi/tsgen/internal/timesheet"
)

func TestFormatSingleTask(t *testing.T) {
	assignments := []models.DailyAssignment{
		{
			Date: "2025-06-02",
			Tasks: []models.TaskAllocation{
				{TaskID: "a", TaskName: "登录模块", AllocatedHours: 6, WorkDescription: "开发登录模块功能"},
			},
			TotalHours: 6,
		},
	}
	entries := timesheet.Format(assignments, "")
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	e := entries[0]
	if e.ID == "" {
		t.Error("entry ID not assigned")
	}
	if e.Date != "2025-06-02" {
		t.Errorf("Date = %q", e.Date)
	}
	if e.WorkContent != "开发登录模块功能" {
		t.Errorf("WorkContent = %q", e.WorkContent)
	}
	if e.HoursSpent != 6 || e.RemainingHours != 2 {
		t.Errorf("hours = %v/%v, want 6/2", e.HoursSpent, e.RemainingHours)
	}
	if e.TaskID != "a" {
		t.Errorf("TaskID = %q", e.TaskID)
	}
	if !e.IsEditable {
		t.Error("new entry should be editable")
	}
}

func TestFormatEmptyDay(t *testing.T) {
	entries := timesheet.Format([]models.DailyAssignment{{Date: "2025-06-07"}}, "")
	e := entries[0]
	if e.WorkContent != "其他工作内容" {
		t.Errorf("WorkContent = %q", e.WorkContent)
	}
	if e.HoursSpent != 0 || e.RemainingHours != 8 {
		t.Errorf("hours = %v/%v, want 0/8", e.HoursSpent, e.RemainingHours)
	}
	if e.TaskID != "" {
		t.Errorf("TaskID = %q, want empty", e.TaskID)
	}
}

func TestFormatRemainingHoursInvariant(t *testing.T) {
	assignments := []models.DailyAssignment{
		{Date: "2025-06-02", TotalHours: 0},
		{Date: "2025-06-03", TotalHours: 4.25, Tasks: []models.TaskAllocation{{TaskName: "A", AllocatedHours: 4.25}}},
		{Date: "2025-06-04", TotalHours: 8, Tasks: []models.TaskAllocation{{TaskName: "A", AllocatedHours: 8}}},
		{Date: "2025-06-05", TotalHours: 10.5, Tasks: []models.TaskAllocation{{TaskName: "A", AllocatedHours: 10.5}}},
	}
	for _, e := range timesheet.Format(assignments, "") {
		want := 8 - e.HoursSpent
		if want < 0 {
			want = 0
		}
		if e.RemainingHours != want {
			t.Errorf("%s: RemainingHours = %v, want %v", e.Date, e.RemainingHours, want)
		}
	}
}

func TestFormatMultiTaskContent(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.TaskAllocation
		want  string
	}{
		{
			"two descriptions joined",
			[]models.TaskAllocation{
				{TaskName: "A", WorkDescription: "开发A功能模块"},
				{TaskName: "B", WorkDescription: "优化B相关逻辑"},
			},
			"开发A功能模块；优化B相关逻辑",
		},
		{
			"three tasks get a suffix",
			[]models.TaskAllocation{
				{TaskName: "A", WorkDescription: "开发A功能模块"},
				{TaskName: "B", WorkDescription: "优化B相关逻辑"},
				{TaskName: "C", WorkDescription: "调试C模块问题"},
			},
			"开发A功能模块；优化B相关逻辑等3项工作",
		},
		{
			"no descriptions falls back to names",
			[]models.TaskAllocation{
				{TaskName: "A"},
				{TaskName: "B"},
			},
			"A、B功能开发",
		},
		{
			"many undescribed tasks",
			[]models.TaskAllocation{
				{TaskName: "A"}, {TaskName: "B"}, {TaskName: "C"}, {TaskName: "D"},
			},
			"A、B等4个功能模块开发",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := timesheet.Format([]models.DailyAssignment{{Date: "2025-06-02", Tasks: tt.tasks}}, "")
			if got := entries[0].WorkContent; got != tt.want {
				t.Errorf("WorkContent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatGlobalOverride(t *testing.T) {
	assignments := []models.DailyAssignment{
		{Date: "2025-06-02", Tasks: []models.TaskAllocation{{TaskName: "A", WorkDescription: "开发A功能模块"}}},
		{Date: "2025-06-03"},
	}
	for _, e := range timesheet.Format(assignments, "项目X开发") {
		if e.WorkContent != "项目X开发" {
			t.Errorf("%s: WorkContent = %q, want the verbatim override", e.Date, e.WorkContent)
		}
	}
}

func TestSummarizeRoundTrip(t *testing.T) {
	assignments := []models.DailyAssignment{
		{Date: "2025-06-02", TotalHours: 8, Tasks: []models.TaskAllocation{{TaskName: "A", AllocatedHours: 8}}},
		{Date: "2025-06-03", TotalHours: 6.5, Tasks: []models.TaskAllocation{{TaskName: "A", AllocatedHours: 6.5}}},
		{Date: "2025-06-04", TotalHours: 0},
	}
	entries := timesheet.Format(assignments, "")
	summary := timesheet.Summarize(entries)

	if summary.TotalDays != 3 {
		t.Errorf("TotalDays = %d", summary.TotalDays)
	}
	if summary.TotalHours != 14.5 {
		t.Errorf("TotalHours = %v", summary.TotalHours)
	}
	if summary.AverageHoursPerDay != 4.83 {
		t.Errorf("AverageHoursPerDay = %v", summary.AverageHoursPerDay)
	}

	// Recomputing from the entries' HoursSpent reproduces the summary.
	total := 0.0
	for _, e := range entries {
		total += e.HoursSpent
	}
	if total != summary.TotalHours {
		t.Errorf("recomputed total %v != summary %v", total, summary.TotalHours)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := timesheet.Summarize(nil)
	if summary.TotalDays != 0 || summary.TotalHours != 0 || summary.AverageHoursPerDay != 0 {
		t.Errorf("summary = %+v", summary)
	}
}
