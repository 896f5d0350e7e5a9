package models

// WorkDay is one calendar date's work status. Sequences are ephemeral:
// recomputed on every generation request, never persisted.
type WorkDay struct {
	Date         string  `json:"date"` // yyyy-mm-dd
	IsWorkday    bool    `json:"is_workday"`
	IsHoliday    bool    `json:"is_holiday"`
	PlannedHours float64 `json:"planned_hours"`
}

// TaskAllocation is one task's share of a single workday
type TaskAllocation struct {
	TaskID          string  `json:"taskId"`
	TaskName        string  `json:"taskName"`
	AllocatedHours  float64 `json:"allocatedHours"`
	WorkDescription string  `json:"workDescription"`
}

// DailyAssignment is the distributor's output for one workday
type DailyAssignment struct {
	Date       string           `json:"date"`
	Tasks      []TaskAllocation `json:"tasks"`
	TotalHours float64          `json:"totalHours"`
}
