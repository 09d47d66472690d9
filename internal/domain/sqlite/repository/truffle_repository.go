package repository

import (
	"errors"

	"trufapro/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTruffleRepository struct {
	db *gorm.DB
}

func NewTruffleRepository(db *gorm.DB) *DefaultTruffleRepository {
	return &DefaultTruffleRepository{db: db}
}

func (d *DefaultTruffleRepository) FindAll() ([]*entity.Truffle, error) {
	var truffles []*entity.Truffle
	err := d.db.Order("name").Find(&truffles).Error
	if err != nil {
		return nil, err
	}
	return truffles, nil
}

func (d *DefaultTruffleRepository) FindByID(id string) (*entity.Truffle, error) {
	var truffle entity.Truffle
	err := d.db.First(&truffle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &truffle, nil
}

func (d *DefaultTruffleRepository) Save(truffle *entity.Truffle) error {
	return d.db.Save(truffle).Error
}

// Delete removes the catalog entry only. Historical ledger items keep
// their truffle id and resolve to an unknown flavor downstream.
func (d *DefaultTruffleRepository) Delete(truffle *entity.Truffle) error {
	return d.db.Delete(truffle).Error
}
