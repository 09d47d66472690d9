package service

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/labstack/gommon/log"

	"trufapro/internal/contract"
	"trufapro/internal/domain/entity"
	"trufapro/internal/utils/apierror"
)

type BackupRepository interface {
	ReplaceAll(truffles []entity.Truffle, pdvs []entity.PDV, sales []entity.Sale, settings map[string]string) error
}

type DefaultBackupService struct {
	BackupRepo  BackupRepository
	SaleRepo    SaleRepository
	TruffleRepo TruffleRepository
	PDVRepo     PDVRepository
	SettingRepo SettingRepository

	Now func() time.Time
}

func NewBackupService(
	backupRepo BackupRepository,
	saleRepo SaleRepository,
	truffleRepo TruffleRepository,
	pdvRepo PDVRepository,
	settingRepo SettingRepository,
) *DefaultBackupService {
	return &DefaultBackupService{
		BackupRepo:  backupRepo,
		SaleRepo:    saleRepo,
		TruffleRepo: truffleRepo,
		PDVRepo:     pdvRepo,
		SettingRepo: settingRepo,
		Now:         time.Now,
	}
}

// Export snapshots every collection and preference into one document
// and stamps the backup as taken.
func (b *DefaultBackupService) Export() (*contract.BackupFile, apierror.ErrorResponse) {
	sales, err := b.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}
	truffles, err := b.TruffleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch truffles: %v", err)
		return nil, apierror.InternalServerError
	}
	pdvs, err := b.PDVRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch pdvs: %v", err)
		return nil, apierror.InternalServerError
	}

	now := b.Now()
	file := &contract.BackupFile{
		Sales:      make([]contract.BackupSale, len(sales)),
		Truffles:   make([]contract.BackupTruffle, len(truffles)),
		PDVs:       make([]contract.BackupPDV, len(pdvs)),
		Version:    contract.BackupVersion,
		ExportDate: now.UTC().Format(time.RFC3339),
	}
	for i := range sales {
		file.Sales[i] = toBackupSale(&sales[i])
	}
	for i, t := range truffles {
		file.Truffles[i] = contract.BackupTruffle{
			ID:          t.ID,
			Name:        t.Name,
			Flavor:      t.Flavor,
			PriceStreet: t.PriceStreet,
			PricePDV:    t.PricePDV,
			Icon:        t.Icon,
			ImageURL:    t.ImageURL,
		}
	}
	for i, p := range pdvs {
		file.PDVs[i] = contract.BackupPDV{
			ID:          p.ID,
			CompanyName: p.CompanyName,
			ContactName: p.ContactName,
			City:        p.City,
			Phone:       p.Phone,
		}
	}

	for _, key := range []string{entity.SettingName, entity.SettingImage, entity.SettingTheme} {
		value, err := b.SettingRepo.Get(key)
		if err != nil {
			log.Errorf("failed to read setting %s: %v", key, err)
			return nil, apierror.InternalServerError
		}
		switch key {
		case entity.SettingName:
			file.Name = value
		case entity.SettingImage:
			file.Image = value
		case entity.SettingTheme:
			file.Theme = value
		}
	}

	stamp := strconv.FormatInt(now.UnixMilli(), 10)
	if err := b.SettingRepo.Set(entity.SettingLastBackup, stamp); err != nil {
		log.Errorf("failed to stamp backup: %v", err)
		return nil, apierror.InternalServerError
	}
	return file, nil
}

// Import replaces all local state with the backup's. The only check
// is the presence of the three collection keys.
func (b *DefaultBackupService) Import(raw []byte) apierror.ErrorResponse {
	if !contract.HasRequiredKeys(raw) {
		return apierror.InvalidBackupError
	}

	var file contract.BackupFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return apierror.MalformedJSONError
	}

	truffles := make([]entity.Truffle, len(file.Truffles))
	for i, t := range file.Truffles {
		truffles[i] = entity.Truffle{
			ID:          t.ID,
			Name:        t.Name,
			Flavor:      t.Flavor,
			PriceStreet: t.PriceStreet,
			PricePDV:    t.PricePDV,
			Icon:        t.Icon,
			ImageURL:    t.ImageURL,
		}
	}
	pdvs := make([]entity.PDV, len(file.PDVs))
	for i, p := range file.PDVs {
		pdvs[i] = entity.PDV{
			ID:          p.ID,
			CompanyName: p.CompanyName,
			ContactName: p.ContactName,
			City:        p.City,
			Phone:       p.Phone,
		}
	}
	sales := make([]entity.Sale, len(file.Sales))
	for i := range file.Sales {
		sales[i] = fromBackupSale(&file.Sales[i])
	}

	// Preferences are replaced with whatever the backup carries, empty
	// values included, in the same transaction as the collections.
	settings := map[string]string{
		entity.SettingName:  file.Name,
		entity.SettingImage: file.Image,
		entity.SettingTheme: file.Theme,
	}
	if err := b.BackupRepo.ReplaceAll(truffles, pdvs, sales, settings); err != nil {
		log.Errorf("failed to import backup: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func toBackupSale(s *entity.Sale) contract.BackupSale {
	items := make([]contract.BackupSaleItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = contract.BackupSaleItem{
			TruffleID:            it.TruffleID,
			Quantity:             it.Quantity,
			LeftOverQuantity:     it.LeftOverQuantity,
			NewConsignedQuantity: it.NewConsignedQuantity,
		}
	}
	return contract.BackupSale{
		ID:          s.ID,
		Timestamp:   s.Timestamp,
		Date:        s.Date,
		Type:        s.Type,
		City:        s.City,
		Location:    s.Location,
		PdvID:       s.PdvID,
		OwnerName:   s.OwnerName,
		Observation: s.Observation,
		Total:       s.Total,
		Items:       items,
	}
}

func fromBackupSale(s *contract.BackupSale) entity.Sale {
	items := make([]entity.SaleItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = entity.SaleItem{
			TruffleID:            it.TruffleID,
			Quantity:             it.Quantity,
			LeftOverQuantity:     it.LeftOverQuantity,
			NewConsignedQuantity: it.NewConsignedQuantity,
		}
	}
	return entity.Sale{
		ID:          s.ID,
		Timestamp:   s.Timestamp,
		Date:        s.Date,
		Type:        s.Type,
		City:        s.City,
		Location:    s.Location,
		PdvID:       s.PdvID,
		OwnerName:   s.OwnerName,
		Observation: s.Observation,
		Total:       s.Total,
		Items:       items,
	}
}
