package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/minqi/tsgen/internal/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	if err := InitializeAt(filepath.Join(t.TempDir(), "tsgen.db")); err != nil {
		t.Fatalf("InitializeAt: %v", err)
	}
	t.Cleanup(func() {
		if err := Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
}

func TestTaskLifecycle(t *testing.T) {
	setupTestDB(t)

	task, err := CreateTask(CreateTaskRequest{Name: "登录模块", TotalHours: 16, Priority: "high", Description: "含单元测试"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.TaskID == "" {
		t.Error("TaskID not assigned")
	}
	if task.Priority != 3 {
		t.Errorf("Priority = %d, want 3", task.Priority)
	}
	if task.Source != models.SourceManual {
		t.Errorf("Source = %q, want manual", task.Source)
	}

	// Lookup works by both row ID and TaskID.
	if _, err := GetTaskByID(task.TaskID); err != nil {
		t.Errorf("GetTaskByID(task_id): %v", err)
	}
	if _, err := GetTaskByID("1"); err != nil {
		t.Errorf("GetTaskByID(row id): %v", err)
	}

	hours := 24.0
	name := "登录与注册模块"
	updated, err := UpdateTask(task.TaskID, UpdateTaskRequest{Name: &name, TotalHours: &hours})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Name != name || updated.TotalHours != 24 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Priority != 3 {
		t.Errorf("untouched field changed: Priority = %d", updated.Priority)
	}

	if err := DeleteTask(task.TaskID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := GetTaskByID(task.TaskID); err == nil {
		t.Error("task still found after delete")
	}
}

func TestCreateTaskValidation(t *testing.T) {
	setupTestDB(t)

	if _, err := CreateTask(CreateTaskRequest{Name: "  ", TotalHours: 8}); err == nil {
		t.Error("blank name accepted")
	}
	if _, err := CreateTask(CreateTaskRequest{Name: "A", TotalHours: -1}); err == nil {
		t.Error("negative hours accepted")
	}
}

func TestClearTasksBySource(t *testing.T) {
	setupTestDB(t)

	mustCreate := func(name, source string) {
		t.Helper()
		if _, err := CreateTask(CreateTaskRequest{Name: name, TotalHours: 8, Source: source}); err != nil {
			t.Fatalf("CreateTask(%s): %v", name, err)
		}
	}
	mustCreate("A", models.SourceManual)
	mustCreate("B", models.SourceGitLog)
	mustCreate("C", models.SourceGitLog)

	n, err := ClearTasks(models.SourceGitLog)
	if err != nil {
		t.Fatalf("ClearTasks: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d, want 2", n)
	}

	tasks, err := GetTasks()
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "A" {
		t.Errorf("remaining tasks = %+v", tasks)
	}

	if n, err = ClearTasks(""); err != nil || n != 1 {
		t.Errorf("ClearTasks(all) = %d, %v", n, err)
	}
}

func sampleResult() *models.Result {
	id := uuid.NewString()
	return &models.Result{
		ID:                 id,
		GeneratedAt:        time.Now(),
		TotalHours:         16,
		TotalDays:          2,
		AverageHoursPerDay: 8,
		Config:             models.DefaultProjectConfig(time.Now()),
		Entries: []models.TimesheetEntry{
			{ID: uuid.NewString(), ResultID: id, Date: "2025-06-02", WorkContent: "开发登录模块功能", HoursSpent: 8, IsEditable: true},
			{ID: uuid.NewString(), ResultID: id, Date: "2025-06-03", WorkContent: "优化登录模块相关逻辑", HoursSpent: 8, IsEditable: true},
		},
	}
}

func TestSaveCurrentResultReplaces(t *testing.T) {
	setupTestDB(t)

	if _, err := GetCurrentResult(); !errors.Is(err, ErrNoCurrentResult) {
		t.Errorf("empty db: err = %v", err)
	}

	first := sampleResult()
	if err := SaveCurrentResult(first); err != nil {
		t.Fatalf("SaveCurrentResult: %v", err)
	}

	second := sampleResult()
	if err := SaveCurrentResult(second); err != nil {
		t.Fatalf("SaveCurrentResult(second): %v", err)
	}

	current, err := GetCurrentResult()
	if err != nil {
		t.Fatalf("GetCurrentResult: %v", err)
	}
	if current.ID != second.ID {
		t.Errorf("current = %s, want %s", current.ID, second.ID)
	}
	if len(current.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(current.Entries))
	}

	// The replaced result and its entries are gone entirely.
	if _, err := GetResultByID(first.ID); err == nil {
		t.Error("replaced result still present")
	}
	var orphans int64
	DB.Model(&models.TimesheetEntry{}).Where("result_id = ?", first.ID).Count(&orphans)
	if orphans != 0 {
		t.Errorf("%d orphaned entries left behind", orphans)
	}
}

func TestArchiveCurrent(t *testing.T) {
	setupTestDB(t)

	result := sampleResult()
	if err := SaveCurrentResult(result); err != nil {
		t.Fatalf("SaveCurrentResult: %v", err)
	}

	archived, err := ArchiveCurrent("六月工时")
	if err != nil {
		t.Fatalf("ArchiveCurrent: %v", err)
	}
	if !archived.Archived || archived.Name != "六月工时" || archived.ArchivedAt == nil {
		t.Errorf("archive fields: %+v", archived)
	}

	// The working slot is now empty and a new generation can fill it
	// without disturbing the archive.
	if _, err := GetCurrentResult(); !errors.Is(err, ErrNoCurrentResult) {
		t.Errorf("after archive: err = %v", err)
	}
	if err := SaveCurrentResult(sampleResult()); err != nil {
		t.Fatalf("SaveCurrentResult(after archive): %v", err)
	}

	history, err := GetArchivedResults()
	if err != nil {
		t.Fatalf("GetArchivedResults: %v", err)
	}
	if len(history) != 1 || history[0].ID != result.ID {
		t.Errorf("history = %+v", history)
	}

	// Archived entries are frozen.
	loaded, err := GetResultByID(result.ID)
	if err != nil {
		t.Fatalf("GetResultByID: %v", err)
	}
	for _, e := range loaded.Entries {
		if e.IsEditable {
			t.Errorf("entry %s still editable after archive", e.ID)
		}
	}
	_, err = UpdateEntryContent(loaded.Entries[0].ID, "改动")
	if !errors.Is(err, ErrResultArchived) {
		t.Errorf("edit archived entry: err = %v", err)
	}
}

func TestUpdateEntryContent(t *testing.T) {
	setupTestDB(t)

	result := sampleResult()
	if err := SaveCurrentResult(result); err != nil {
		t.Fatalf("SaveCurrentResult: %v", err)
	}

	entry, err := UpdateEntryContent(result.Entries[0].ID, "重构登录模块")
	if err != nil {
		t.Fatalf("UpdateEntryContent: %v", err)
	}
	if entry.WorkContent != "重构登录模块" {
		t.Errorf("WorkContent = %q", entry.WorkContent)
	}

	current, err := GetCurrentResult()
	if err != nil {
		t.Fatalf("GetCurrentResult: %v", err)
	}
	if current.Entries[0].WorkContent != "重构登录模块" {
		t.Error("edit did not persist")
	}
	if current.TotalHours != 16 {
		t.Errorf("summary changed by text edit: %v", current.TotalHours)
	}

	if _, err := UpdateEntryContent("missing", "x"); err == nil {
		t.Error("missing entry accepted")
	}
}

func TestDeleteResult(t *testing.T) {
	setupTestDB(t)

	result := sampleResult()
	if err := SaveCurrentResult(result); err != nil {
		t.Fatalf("SaveCurrentResult: %v", err)
	}
	if _, err := ArchiveCurrent("旧档"); err != nil {
		t.Fatalf("ArchiveCurrent: %v", err)
	}

	if err := DeleteResult(result.ID); err != nil {
		t.Fatalf("DeleteResult: %v", err)
	}
	if _, err := GetResultByID(result.ID); err == nil {
		t.Error("result still present after delete")
	}
	var remaining int64
	DB.Model(&models.TimesheetEntry{}).Count(&remaining)
	if remaining != 0 {
		t.Errorf("%d entries left behind", remaining)
	}
}

func TestConfigService(t *testing.T) {
	setupTestDB(t)

	// Unset working config falls back to the current month's defaults.
	cfg, err := GetCurrentConfig()
	if err != nil {
		t.Fatalf("GetCurrentConfig: %v", err)
	}
	if cfg.WorkingHours.DailyHours != 8 || cfg.WorkingHours.ScheduleType != models.ScheduleDouble {
		t.Errorf("default config = %+v", cfg)
	}

	cfg.StartDate = "2025-06-01"
	cfg.EndDate = "2025-06-30"
	cfg.WorkingHours.ScheduleType = models.ScheduleSingle
	cfg.WorkingHours.SingleRestDay = "saturday"
	if err := SetCurrentConfig(cfg); err != nil {
		t.Fatalf("SetCurrentConfig: %v", err)
	}

	got, err := GetCurrentConfig()
	if err != nil {
		t.Fatalf("GetCurrentConfig(reload): %v", err)
	}
	if got.WorkingHours.ScheduleType != models.ScheduleSingle || got.StartDate != "2025-06-01" {
		t.Errorf("reloaded config = %+v", got)
	}

	if err := SaveNamedConfig("六月单休", cfg); err != nil {
		t.Fatalf("SaveNamedConfig: %v", err)
	}
	names, err := ListNamedConfigs()
	if err != nil {
		t.Fatalf("ListNamedConfigs: %v", err)
	}
	if len(names) != 1 || names[0].Name != "六月单休" {
		t.Errorf("named configs = %+v", names)
	}

	// Overwrite the working slot, then restore from the named save.
	other := models.DefaultProjectConfig(time.Now())
	if err := SetCurrentConfig(other); err != nil {
		t.Fatalf("SetCurrentConfig(other): %v", err)
	}
	restored, err := LoadNamedConfig("六月单休")
	if err != nil {
		t.Fatalf("LoadNamedConfig: %v", err)
	}
	if restored.WorkingHours.ScheduleType != models.ScheduleSingle {
		t.Errorf("restored config = %+v", restored)
	}
	got, _ = GetCurrentConfig()
	if got.WorkingHours.ScheduleType != models.ScheduleSingle {
		t.Error("load did not update the working slot")
	}

	if err := DeleteNamedConfig("六月单休"); err != nil {
		t.Fatalf("DeleteNamedConfig: %v", err)
	}
	if err := DeleteNamedConfig("六月单休"); err == nil {
		t.Error("double delete accepted")
	}
	if _, err := LoadNamedConfig("六月单休"); err == nil {
		t.Error("deleted config still loadable")
	}
}
