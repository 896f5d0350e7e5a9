package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/minqi/tsgen/internal/models"
)

// The row with an empty name holds the implicit current configuration.
const currentConfigName = ""

// GetCurrentConfig loads the working configuration, falling back to
// the defaults for the current month when none has been saved yet.
func GetCurrentConfig() (models.ProjectConfig, error) {
	var saved models.SavedConfig
	err := DB.Where("name = ?", currentConfigName).First(&saved).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultProjectConfig(time.Now()), nil
	}
	if err != nil {
		return models.ProjectConfig{}, err
	}
	return saved.Config, nil
}

// SetCurrentConfig stores cfg as the working configuration
func SetCurrentConfig(cfg models.ProjectConfig) error {
	return upsertConfig(currentConfigName, cfg)
}

// SaveNamedConfig stores cfg under a reusable name
func SaveNamedConfig(name string, cfg models.ProjectConfig) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("config name cannot be empty")
	}
	return upsertConfig(name, cfg)
}

// LoadNamedConfig copies a named configuration into the working slot
func LoadNamedConfig(name string) (models.ProjectConfig, error) {
	var saved models.SavedConfig
	err := DB.Where("name = ?", name).First(&saved).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ProjectConfig{}, fmt.Errorf("config %q not found", name)
	}
	if err != nil {
		return models.ProjectConfig{}, err
	}
	if err := SetCurrentConfig(saved.Config); err != nil {
		return models.ProjectConfig{}, err
	}
	return saved.Config, nil
}

// ListNamedConfigs returns the saved configurations, excluding the
// implicit current row
func ListNamedConfigs() ([]models.SavedConfig, error) {
	var configs []models.SavedConfig
	err := DB.Where("name <> ?", currentConfigName).Order("name ASC").Find(&configs).Error
	return configs, err
}

// DeleteNamedConfig removes a saved configuration by name
func DeleteNamedConfig(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("config name cannot be empty")
	}
	result := DB.Where("name = ?", name).Delete(&models.SavedConfig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("config %q not found", name)
	}
	return nil
}

func upsertConfig(name string, cfg models.ProjectConfig) error {
	var saved models.SavedConfig
	err := DB.Where("name = ?", name).First(&saved).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DB.Create(&models.SavedConfig{Name: name, Config: cfg}).Error
	}
	if err != nil {
		return err
	}
	saved.Config = cfg
	return DB.Save(&saved).Error
}
