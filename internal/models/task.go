package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Task source values
const (
	SourceManual     = "manual"
	SourceGitLog     = "gitlog"
	SourceAttachment = "attachment"
)

// Task represents a unit of work to be distributed across workdays
type Task struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TaskID      string  `gorm:"uniqueIndex;not null" json:"task_id"`
	Name        string  `gorm:"not null" json:"name"`
	TotalHours  float64 `gorm:"default:0" json:"total_hours"`
	Priority    int     `gorm:"default:2" json:"priority"` // 1=low, 2=medium, 3=high
	Description string  `json:"description"`
	Source      string  `gorm:"default:manual" json:"source"` // manual, gitlog, attachment

	// Opaque context carried into AI prompts (git log text, attachment
	// content); never affects deterministic distribution.
	SourceData string `json:"source_data"`
}

// IsReference reports whether the task is reference material only:
// zero hours of its own, injected to enrich AI prompts. Reference
// tasks never occupy workday capacity.
func (t Task) IsReference() bool {
	return t.TotalHours == 0 && t.Source != SourceManual
}

// ParsePriority converts a priority string to its numeric value
func ParsePriority(priority string) int {
	priority = strings.ToLower(strings.TrimSpace(priority))
	switch priority {
	case "low", "1":
		return 1
	case "high", "3":
		return 3
	default:
		return 2
	}
}

// PriorityLabel converts a numeric priority back to its display name
func PriorityLabel(priority int) string {
	switch priority {
	case 1:
		return "low"
	case 3:
		return "high"
	default:
		return "medium"
	}
}
