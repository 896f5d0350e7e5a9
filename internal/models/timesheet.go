package models

import (
	"time"

	"gorm.io/gorm"
)

// TimesheetEntry is one exportable/editable timesheet row
type TimesheetEntry struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ResultID       string  `gorm:"index" json:"result_id"`
	Date           string  `gorm:"not null" json:"date"`
	WorkContent    string  `json:"work_content"`
	HoursSpent     float64 `json:"hours_spent"`
	RemainingHours float64 `json:"remaining_hours"`
	TaskID         string  `json:"task_id"` // primary task for the day, may be empty
	IsEditable     bool    `gorm:"default:true" json:"is_editable"`
}

// Summary aggregates a generated timesheet
type Summary struct {
	TotalHours         float64 `json:"total_hours"`
	TotalDays          int     `json:"total_days"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}

// Result is one generation run: the entries plus their summary and the
// configuration snapshot that produced them. A result starts out live
// and editable; archiving freezes it into immutable history.
type Result struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string     `json:"name"`
	GeneratedAt time.Time  `json:"generated_at"`
	Archived    bool       `gorm:"default:false;index" json:"archived"`
	ArchivedAt  *time.Time `json:"archived_at"`

	TotalHours         float64 `json:"total_hours"`
	TotalDays          int     `json:"total_days"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`

	Config  ProjectConfig    `gorm:"serializer:json" json:"config"`
	Entries []TimesheetEntry `gorm:"foreignKey:ResultID" json:"entries"`
}

// SummaryOf returns the stored summary fields as a Summary value
func (r Result) SummaryOf() Summary {
	return Summary{
		TotalHours:         r.TotalHours,
		TotalDays:          r.TotalDays,
		AverageHoursPerDay: r.AverageHoursPerDay,
	}
}
