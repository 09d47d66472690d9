package repository

import (
	"errors"

	"trufapro/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *DefaultSaleRepository {
	return &DefaultSaleRepository{db: db}
}

func (d *DefaultSaleRepository) FindAll() ([]entity.Sale, error) {
	var sales []entity.Sale
	err := d.db.Preload("Items").Order("timestamp desc").Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (d *DefaultSaleRepository) FindByID(id string) (*entity.Sale, error) {
	var sale entity.Sale
	err := d.db.Preload("Items").First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// Save persists the record and its line items as one unit, replacing
// any items a previous version carried. Items are written separately
// since the update path does not touch associations.
func (d *DefaultSaleRepository) Save(sale *entity.Sale) error {
	items := sale.Items
	sale.Items = nil
	defer func() { sale.Items = items }()

	return d.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("sale_id = ?", sale.ID).Delete(&entity.SaleItem{}).Error
		if err != nil {
			return err
		}
		if err := tx.Save(sale).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].SaleID = sale.ID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (d *DefaultSaleRepository) Delete(sale *entity.Sale) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("sale_id = ?", sale.ID).Delete(&entity.SaleItem{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(sale).Error
	})
}
