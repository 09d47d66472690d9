package repository

import (
	"trufapro/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultBackupRepository struct {
	db *gorm.DB
}

func NewBackupRepository(db *gorm.DB) *DefaultBackupRepository {
	return &DefaultBackupRepository{db: db}
}

// ReplaceAll swaps every collection and the given preference values in
// a single transaction. An import either lands whole or not at all.
func (d *DefaultBackupRepository) ReplaceAll(truffles []entity.Truffle, pdvs []entity.PDV, sales []entity.Sale, settings map[string]string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&entity.SaleItem{}, &entity.Sale{}, &entity.PDV{}, &entity.Truffle{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		if len(truffles) > 0 {
			if err := tx.Create(&truffles).Error; err != nil {
				return err
			}
		}
		if len(pdvs) > 0 {
			if err := tx.Create(&pdvs).Error; err != nil {
				return err
			}
		}
		for i := range sales {
			for j := range sales[i].Items {
				sales[i].Items[j].ID = 0
				sales[i].Items[j].SaleID = sales[i].ID
			}
		}
		if len(sales) > 0 {
			if err := tx.Create(&sales).Error; err != nil {
				return err
			}
		}
		for key, value := range settings {
			if err := tx.Save(&entity.Setting{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
