package repository

import (
	"errors"

	"trufapro/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *DefaultSettingRepository {
	return &DefaultSettingRepository{db: db}
}

// Get returns the stored value or the empty string when unset.
func (d *DefaultSettingRepository) Get(key string) (string, error) {
	var setting entity.Setting
	err := d.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}

	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (d *DefaultSettingRepository) Set(key, value string) error {
	return d.db.Save(&entity.Setting{Key: key, Value: value}).Error
}
