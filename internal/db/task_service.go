package db

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/minqi/tsgen/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task
type CreateTaskRequest struct {
	Name        string
	TotalHours  float64
	Priority    string // "low/medium/high" or "1/2/3", empty defaults to medium
	Description string
	Source      string // defaults to manual
	SourceData  string
}

// CreateTask creates a new task
func CreateTask(req CreateTaskRequest) (*models.Task, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("task name cannot be empty")
	}
	if req.TotalHours < 0 {
		return nil, fmt.Errorf("total hours cannot be negative")
	}

	source := req.Source
	if source == "" {
		source = models.SourceManual
	}

	task := models.Task{
		TaskID:      uuid.NewString(),
		Name:        name,
		TotalHours:  req.TotalHours,
		Priority:    models.ParsePriority(req.Priority),
		Description: strings.TrimSpace(req.Description),
		Source:      source,
		SourceData:  req.SourceData,
	}

	if err := DB.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// GetTasks retrieves all tasks, newest first
func GetTasks() ([]models.Task, error) {
	var tasks []models.Task
	err := DB.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// GetTaskByID finds a task by its numeric row ID or its TaskID string
func GetTaskByID(id string) (*models.Task, error) {
	var task models.Task
	err := DB.Where("task_id = ? OR id = ?", id, id).First(&task).Error
	if err != nil {
		return nil, fmt.Errorf("task %s not found", id)
	}
	return &task, nil
}

// UpdateTaskRequest carries the fields an edit may change. Nil pointers
// leave the stored value untouched.
type UpdateTaskRequest struct {
	Name        *string
	TotalHours  *float64
	Priority    *string
	Description *string
}

// UpdateTask applies the non-nil fields of req to the task
func UpdateTask(id string, req UpdateTaskRequest) (*models.Task, error) {
	task, err := GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("task name cannot be empty")
		}
		task.Name = name
	}
	if req.TotalHours != nil {
		if *req.TotalHours < 0 {
			return nil, fmt.Errorf("total hours cannot be negative")
		}
		task.TotalHours = *req.TotalHours
	}
	if req.Priority != nil {
		task.Priority = models.ParsePriority(*req.Priority)
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}

	if err := DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task by ID
func DeleteTask(id string) error {
	task, err := GetTaskByID(id)
	if err != nil {
		return err
	}
	return DB.Delete(task).Error
}

// ClearTasks removes every task, or only those from one source when
// source is non-empty
func ClearTasks(source string) (int64, error) {
	query := DB.Where("1 = 1")
	if source != "" {
		query = DB.Where("source = ?", source)
	}
	result := query.Delete(&models.Task{})
	return result.RowsAffected, result.Error
}
