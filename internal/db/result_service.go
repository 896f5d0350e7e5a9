package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/minqi/tsgen/internal/models"
)

var (
	// ErrNoCurrentResult is returned when no unarchived result exists.
	ErrNoCurrentResult = errors.New("no current result, run generate first")
	// ErrResultArchived is returned when an edit targets a frozen result.
	ErrResultArchived = errors.New("result is archived and cannot be edited")
)

// SaveCurrentResult stores result as the working result, replacing any
// previous unarchived one. Archived results are untouched.
func SaveCurrentResult(result *models.Result) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var stale []models.Result
		if err := tx.Where("archived = ?", false).Find(&stale).Error; err != nil {
			return err
		}
		for _, old := range stale {
			if err := tx.Where("result_id = ?", old.ID).Delete(&models.TimesheetEntry{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
		}
		return tx.Create(result).Error
	})
}

// GetCurrentResult loads the single unarchived result with its entries
func GetCurrentResult() (*models.Result, error) {
	var result models.Result
	err := DB.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC")
	}).Where("archived = ?", false).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoCurrentResult
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ArchiveCurrent freezes the working result under the given name. Its
// entries become read-only.
func ArchiveCurrent(name string) (*models.Result, error) {
	result, err := GetCurrentResult()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":        name,
			"archived":    true,
			"archived_at": now,
		}
		if err := tx.Model(&models.Result{}).Where("id = ?", result.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(&models.TimesheetEntry{}).
			Where("result_id = ?", result.ID).
			Update("is_editable", false).Error
	})
	if err != nil {
		return nil, err
	}

	result.Name = name
	result.Archived = true
	result.ArchivedAt = &now
	for i := range result.Entries {
		result.Entries[i].IsEditable = false
	}
	return result, nil
}

// GetArchivedResults lists archived results, newest first, without
// loading entries
func GetArchivedResults() ([]models.Result, error) {
	var results []models.Result
	err := DB.Where("archived = ?", true).Order("archived_at DESC").Find(&results).Error
	return results, err
}

// GetResultByID loads one result, archived or not, with entries
func GetResultByID(id string) (*models.Result, error) {
	var result models.Result
	err := DB.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC")
	}).Where("id = ?", id).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("result %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteResult removes a result and its entries
func DeleteResult(id string) error {
	result, err := GetResultByID(id)
	if err != nil {
		return err
	}
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("result_id = ?", result.ID).Delete(&models.TimesheetEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(result).Error
	})
}

// UpdateEntryContent rewrites one entry's work content. The parent
// result's summary fields do not change, only the text.
func UpdateEntryContent(entryID, content string) (*models.TimesheetEntry, error) {
	var entry models.TimesheetEntry
	if err := DB.Where("id = ?", entryID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("entry %s not found", entryID)
		}
		return nil, err
	}
	if !entry.IsEditable {
		return nil, ErrResultArchived
	}

	entry.WorkContent = content
	if err := DB.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
