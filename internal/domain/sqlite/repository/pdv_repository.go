package repository

import (
	"errors"

	"trufapro/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPDVRepository struct {
	db *gorm.DB
}

func NewPDVRepository(db *gorm.DB) *DefaultPDVRepository {
	return &DefaultPDVRepository{db: db}
}

func (d *DefaultPDVRepository) FindAll() ([]*entity.PDV, error) {
	var pdvs []*entity.PDV
	err := d.db.Order("company_name").Find(&pdvs).Error
	if err != nil {
		return nil, err
	}
	return pdvs, nil
}

func (d *DefaultPDVRepository) FindByID(id string) (*entity.PDV, error) {
	var pdv entity.PDV
	err := d.db.First(&pdv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &pdv, nil
}

func (d *DefaultPDVRepository) Save(pdv *entity.PDV) error {
	return d.db.Save(pdv).Error
}

// Delete removes the partner only. Its ledger records stay and keep
// contributing to the aggregates.
func (d *DefaultPDVRepository) Delete(pdv *entity.PDV) error {
	return d.db.Delete(pdv).Error
}
