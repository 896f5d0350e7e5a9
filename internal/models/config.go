package models

import (
	"time"

	"gorm.io/gorm"
)

// Rest-schedule types
const (
	ScheduleDouble    = "double"    // Saturday and Sunday off
	ScheduleSingle    = "single"    // one configured weekday off
	ScheduleAlternate = "alternate" // alternating big/small weeks
)

// Distribution modes
const (
	ModeDaily    = "daily"
	ModePriority = "priority"
	ModeFeature  = "feature"
)

// WorkingHours holds the rest-schedule configuration for a date range
type WorkingHours struct {
	DailyHours      float64 `json:"daily_hours" yaml:"daily_hours"`
	ScheduleType    string  `json:"schedule_type" yaml:"schedule_type"`
	SingleRestDay   string  `json:"single_rest_day,omitempty" yaml:"single_rest_day,omitempty"` // saturday or sunday
	BigWeek         *bool   `json:"big_week,omitempty" yaml:"big_week,omitempty"`               // start week parity for alternate schedule
	ExcludeHolidays bool    `json:"exclude_holidays" yaml:"exclude_holidays"`
}

// ProjectConfig is the caller contract for one generation request
type ProjectConfig struct {
	StartDate        string       `json:"start_date" yaml:"start_date"`
	EndDate          string       `json:"end_date" yaml:"end_date"`
	WorkingHours     WorkingHours `json:"working_hours" yaml:"working_hours"`
	DistributionMode string       `json:"distribution_mode" yaml:"distribution_mode"`

	// Applied verbatim to every entry when set, discarding per-task
	// descriptions.
	WorkContent string `json:"work_content,omitempty" yaml:"work_content,omitempty"`
}

// DefaultProjectConfig covers the current calendar month with a
// standard double-rest 8h schedule
func DefaultProjectConfig(now time.Time) ProjectConfig {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return ProjectConfig{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		WorkingHours: WorkingHours{
			DailyHours:      8,
			ScheduleType:    ScheduleDouble,
			ExcludeHolidays: true,
		},
		DistributionMode: ModeDaily,
	}
}

// SavedConfig is a named, persisted ProjectConfig
type SavedConfig struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// Empty Name marks the single implicit "current" row.
	Config ProjectConfig `gorm:"serializer:json" json:"config"`
}
