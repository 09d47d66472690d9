package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"trufapro/internal/contract"
	"trufapro/internal/domain/entity"
	"trufapro/internal/domain/report"
	"trufapro/internal/utils"
	"trufapro/internal/utils/apierror"
	"trufapro/internal/utils/uid"
)

type SaleRepository interface {
	FindAll() ([]entity.Sale, error)
	FindByID(id string) (*entity.Sale, error)
	Save(sale *entity.Sale) error
	Delete(sale *entity.Sale) error
}

type DefaultSaleService struct {
	SaleRepo    SaleRepository
	TruffleRepo TruffleRepository
	PDVRepo     PDVRepository
	Validate    *validator.Validate

	// Now is swappable for deterministic tests.
	Now func() time.Time
}

func NewSaleService(
	saleRepo SaleRepository,
	truffleRepo TruffleRepository,
	pdvRepo PDVRepository,
	validate *validator.Validate,
) *DefaultSaleService {
	return &DefaultSaleService{
		SaleRepo:    saleRepo,
		TruffleRepo: truffleRepo,
		PDVRepo:     pdvRepo,
		Validate:    validate,
		Now:         time.Now,
	}
}

// GetAllSales lists the ledger, optionally narrowed to one channel.
// An empty channel means everything.
func (s *DefaultSaleService) GetAllSales(channel string) ([]*contract.SaleResponse, apierror.ErrorResponse) {
	if channel != "" && channel != entity.ChannelRua && channel != entity.ChannelPDV {
		return nil, apierror.InvalidChannelError
	}

	sales, err := s.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.SaleResponse, 0, len(sales))
	for i := range sales {
		if channel != "" && sales[i].Type != channel {
			continue
		}
		resp = append(resp, toSaleResponse(&sales[i]))
	}
	return resp, nil
}

func (s *DefaultSaleService) GetSaleByID(id string) (*contract.SaleResponse, apierror.ErrorResponse) {
	sale, err := s.SaleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch sale: %v", err)
		return nil, apierror.InternalServerError
	}
	if sale == nil {
		return nil, apierror.NotFoundError
	}
	return toSaleResponse(sale), nil
}

func (s *DefaultSaleService) CreateSale(req *contract.SaleRequest) (*contract.SaleResponse, apierror.ErrorResponse) {
	sale, apierr := s.buildSale(req)
	if apierr != nil {
		return nil, apierr
	}
	sale.ID = uid.NewID()

	if err := s.SaleRepo.Save(sale); err != nil {
		log.Errorf("failed to save sale: %v", err)
		return nil, apierror.InternalServerError
	}
	return toSaleResponse(sale), nil
}

// UpdateSale replaces the record by id. The total is recomputed from
// the submitted line items at current catalog prices, same as a fresh
// save of those items would be.
func (s *DefaultSaleService) UpdateSale(id string, req *contract.SaleRequest) (*contract.SaleResponse, apierror.ErrorResponse) {
	existing, err := s.SaleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch sale: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing == nil {
		return nil, apierror.NotFoundError
	}

	sale, apierr := s.buildSale(req)
	if apierr != nil {
		return nil, apierr
	}
	sale.ID = existing.ID
	if req.Date == 0 {
		// Keep the original visit instant unless explicitly moved.
		sale.Timestamp = existing.Timestamp
		sale.Date = existing.Date
	}

	if err := s.SaleRepo.Save(sale); err != nil {
		log.Errorf("failed to update sale: %v", err)
		return nil, apierror.InternalServerError
	}
	return toSaleResponse(sale), nil
}

func (s *DefaultSaleService) DeleteSale(id string) apierror.ErrorResponse {
	sale, err := s.SaleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch sale: %v", err)
		return apierror.InternalServerError
	}
	if sale == nil {
		return apierror.NotFoundError
	}

	if err := s.SaleRepo.Delete(sale); err != nil {
		log.Errorf("failed to delete sale: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// buildSale validates the request and assembles the record with its
// frozen total. The caller fills in the id.
func (s *DefaultSaleService) buildSale(req *contract.SaleRequest) (*entity.Sale, apierror.ErrorResponse) {
	utils.Sanitize(req)
	for i := range req.Items {
		utils.Sanitize(&req.Items[i])
	}
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	items := make([]entity.SaleItem, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		item := entity.SaleItem{
			TruffleID:            it.TruffleID,
			Quantity:             it.Quantity,
			LeftOverQuantity:     it.LeftOverQuantity,
			NewConsignedQuantity: it.NewConsignedQuantity,
		}
		if item.IsZero() {
			continue
		}

		truffle, err := s.TruffleRepo.FindByID(it.TruffleID)
		if err != nil {
			log.Errorf("failed to fetch truffle: %v", err)
			return nil, apierror.InternalServerError
		}
		if truffle == nil {
			return nil, apierror.UnknownFlavorError
		}

		total += truffle.PriceFor(req.Type) * float64(item.Quantity)
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, apierror.EmptySaleError
	}

	sale := &entity.Sale{
		Type:        req.Type,
		OwnerName:   req.OwnerName,
		Observation: req.Observation,
		Total:       total,
		Items:       items,
	}

	when := s.Now()
	if req.Date > 0 {
		// Custom visit dates land at local noon, keeping the record
		// inside its calendar day regardless of timezone shifts.
		d := time.UnixMilli(req.Date).In(when.Location())
		when = time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, when.Location())
	}
	sale.Timestamp = when.UnixMilli()
	sale.Date = utils.FormatDayMonth(when)

	if req.Type == entity.ChannelRua {
		sale.City = entity.StreetCity
		sale.Location = entity.StreetLocation
		return sale, nil
	}

	sale.City = req.City
	sale.Location = req.Location
	sale.PdvID = req.PdvID
	if req.PdvID != "" {
		pdv, err := s.PDVRepo.FindByID(req.PdvID)
		if err != nil {
			log.Errorf("failed to fetch pdv: %v", err)
			return nil, apierror.InternalServerError
		}
		if pdv == nil {
			return nil, apierror.NotFoundError
		}
		if sale.Location == "" {
			sale.Location = pdv.CompanyName
		}
		if sale.City == "" {
			sale.City = pdv.City
		}
	}
	if sale.Location == "" || sale.City == "" {
		valerr := apierror.NewStructured(400)
		if sale.Location == "" {
			valerr.Add("location", "This field is required for PDV sales")
		}
		if sale.City == "" {
			valerr.Add("city", "This field is required for PDV sales")
		}
		return nil, valerr
	}
	return sale, nil
}

// TodayTotal is the dashboard headline figure, from local midnight on.
func (s *DefaultSaleService) TodayTotal() (float64, apierror.ErrorResponse) {
	sales, err := s.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return 0, apierror.InternalServerError
	}
	return report.SumSince(sales, report.StartOfDay(s.Now())), nil
}

func toSaleResponse(sale *entity.Sale) *contract.SaleResponse {
	items := make([]contract.SaleItemResponse, len(sale.Items))
	for i, it := range sale.Items {
		items[i] = contract.SaleItemResponse{
			TruffleID:            it.TruffleID,
			Quantity:             it.Quantity,
			LeftOverQuantity:     it.LeftOverQuantity,
			NewConsignedQuantity: it.NewConsignedQuantity,
		}
	}
	return &contract.SaleResponse{
		ID:          sale.ID,
		Timestamp:   sale.Timestamp,
		Date:        sale.Date,
		Type:        sale.Type,
		City:        sale.City,
		Location:    sale.Location,
		PdvID:       sale.PdvID,
		OwnerName:   sale.OwnerName,
		Observation: sale.Observation,
		Total:       sale.Total,
		Items:       items,
	}
}
