package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"trufapro/internal/contract"
	"trufapro/internal/domain/entity"
	"trufapro/internal/utils"
	"trufapro/internal/utils/apierror"
)

type TruffleRepository interface {
	FindAll() ([]*entity.Truffle, error)
	FindByID(id string) (*entity.Truffle, error)
	Save(truffle *entity.Truffle) error
	Delete(truffle *entity.Truffle) error
}

type DefaultCatalogService struct {
	TruffleRepo TruffleRepository
	Validate    *validator.Validate
}

func NewCatalogService(truffleRepo TruffleRepository, validate *validator.Validate) *DefaultCatalogService {
	return &DefaultCatalogService{
		TruffleRepo: truffleRepo,
		Validate:    validate,
	}
}

func (c *DefaultCatalogService) GetAllTruffles() ([]*contract.TruffleResponse, apierror.ErrorResponse) {
	truffles, err := c.TruffleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch truffles: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TruffleResponse, len(truffles))
	for i, truffle := range truffles {
		resp[i] = toTruffleResponse(truffle)
	}
	return resp, nil
}

func (c *DefaultCatalogService) CreateTruffle(req *contract.TruffleRequest) (*contract.TruffleResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	truffle := &entity.Truffle{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Flavor:      req.Flavor,
		PriceStreet: req.PriceStreet,
		PricePDV:    req.PricePDV,
		Icon:        req.Icon,
		ImageURL:    req.ImageURL,
	}
	if err := c.TruffleRepo.Save(truffle); err != nil {
		log.Errorf("failed to save truffle: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTruffleResponse(truffle), nil
}

// UpdateTruffle edits the catalog entry. Historical ledger totals are
// frozen snapshots and are deliberately untouched by price changes.
func (c *DefaultCatalogService) UpdateTruffle(id string, req *contract.TruffleRequest) (*contract.TruffleResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	truffle, err := c.TruffleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch truffle: %v", err)
		return nil, apierror.InternalServerError
	}
	if truffle == nil {
		return nil, apierror.NotFoundError
	}

	truffle.Name = req.Name
	truffle.Flavor = req.Flavor
	truffle.PriceStreet = req.PriceStreet
	truffle.PricePDV = req.PricePDV
	truffle.Icon = req.Icon
	truffle.ImageURL = req.ImageURL

	if err := c.TruffleRepo.Save(truffle); err != nil {
		log.Errorf("failed to update truffle: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTruffleResponse(truffle), nil
}

func (c *DefaultCatalogService) DeleteTruffle(id string) apierror.ErrorResponse {
	truffle, err := c.TruffleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch truffle: %v", err)
		return apierror.InternalServerError
	}
	if truffle == nil {
		return apierror.NotFoundError
	}

	if err := c.TruffleRepo.Delete(truffle); err != nil {
		log.Errorf("failed to delete truffle: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func toTruffleResponse(t *entity.Truffle) *contract.TruffleResponse {
	return &contract.TruffleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Flavor:      t.Flavor,
		PriceStreet: t.PriceStreet,
		PricePDV:    t.PricePDV,
		Icon:        t.Icon,
		ImageURL:    t.ImageURL,
	}
}
