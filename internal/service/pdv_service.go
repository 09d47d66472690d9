package service

import (
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"trufapro/internal/contract"
	"trufapro/internal/domain/entity"
	"trufapro/internal/domain/report"
	"trufapro/internal/utils"
	"trufapro/internal/utils/apierror"
)

type PDVRepository interface {
	FindAll() ([]*entity.PDV, error)
	FindByID(id string) (*entity.PDV, error)
	Save(pdv *entity.PDV) error
	Delete(pdv *entity.PDV) error
}

// Partner list orderings. Recent puts the freshest route first,
// forgotten the most neglected first.
const (
	SortRecent      = "recent"
	SortForgotten   = "forgotten"
	SortRevenueDesc = "revenue_desc"
	SortRevenueAsc  = "revenue_asc"
)

type PDVListQuery struct {
	Sort       string
	Search     string
	OnlyFuture bool
}

// UnknownFlavorName labels movements whose catalog entry was deleted.
const UnknownFlavorName = "Sabor removido"

type DefaultPDVService struct {
	PDVRepo     PDVRepository
	SaleRepo    SaleRepository
	TruffleRepo TruffleRepository
	Validate    *validator.Validate

	Now func() time.Time
}

func NewPDVService(pdvRepo PDVRepository, saleRepo SaleRepository, truffleRepo TruffleRepository, validate *validator.Validate) *DefaultPDVService {
	return &DefaultPDVService{
		PDVRepo:     pdvRepo,
		SaleRepo:    saleRepo,
		TruffleRepo: truffleRepo,
		Validate:    validate,
		Now:         time.Now,
	}
}

func (p *DefaultPDVService) GetPDVs(query PDVListQuery) ([]*contract.PDVResponse, apierror.ErrorResponse) {
	pdvs, err := p.PDVRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch pdvs: %v", err)
		return nil, apierror.InternalServerError
	}
	sales, err := p.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}

	now := p.Now()
	resp := make([]*contract.PDVResponse, 0, len(pdvs))
	for _, pdv := range pdvs {
		if query.Search != "" && !matchesSearch(pdv, query.Search) {
			continue
		}
		stats := report.ForPartner(sales, pdv, now)
		if query.OnlyFuture && !stats.IsFuture() {
			continue
		}
		resp = append(resp, toPDVResponse(pdv, stats))
	}
	sortPDVs(resp, query.Sort)
	return resp, nil
}

func (p *DefaultPDVService) GetPDVByID(id string) (*contract.PDVDetailResponse, apierror.ErrorResponse) {
	pdv, err := p.PDVRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch pdv: %v", err)
		return nil, apierror.InternalServerError
	}
	if pdv == nil {
		return nil, apierror.NotFoundError
	}

	sales, err := p.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}

	stats := report.ForPartner(sales, pdv, p.Now())
	detail := &contract.PDVDetailResponse{PDVResponse: *toPDVResponse(pdv, stats)}

	truffles, err := p.TruffleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch truffles: %v", err)
		return nil, apierror.InternalServerError
	}
	names := make(map[string]string, len(truffles))
	for _, t := range truffles {
		names[t.ID] = t.Name
	}

	for _, m := range report.FlavorBreakdown(sales, pdv) {
		name, ok := names[m.TruffleID]
		if !ok {
			// The catalog entry was deleted after these visits.
			name = UnknownFlavorName
		}
		detail.Flavors = append(detail.Flavors, contract.FlavorMovementResponse{
			TruffleID: m.TruffleID,
			Name:      name,
			Sold:      m.Sold,
			LeftOver:  m.LeftOver,
			Consigned: m.Consigned,
		})
	}

	var own []entity.Sale
	for i := range sales {
		if report.MatchesPartner(&sales[i], pdv) {
			own = append(own, sales[i])
		}
	}
	for _, m := range report.MonthlyRollup(own, p.Now().Location()) {
		detail.History = append(detail.History, toMonthlyResponse(m))
	}
	return detail, nil
}

func (p *DefaultPDVService) GetCities() ([]*contract.CityResponse, apierror.ErrorResponse) {
	pdvs, err := p.PDVRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch pdvs: %v", err)
		return nil, apierror.InternalServerError
	}
	sales, err := p.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}

	members := make([]entity.PDV, len(pdvs))
	for i, pdv := range pdvs {
		members[i] = *pdv
	}
	cities := report.GroupCities(sales, members, p.Now())
	resp := make([]*contract.CityResponse, len(cities))
	for i, c := range cities {
		resp[i] = &contract.CityResponse{
			Name:      c.Name,
			PDVCount:  c.PDVCount,
			Revenue:   c.Revenue,
			DaysSince: c.MaxDaysSince.SortDays(),
			Severity:  string(c.MaxDaysSince.Severity()),
		}
	}
	return resp, nil
}

func (p *DefaultPDVService) CreatePDV(req *contract.PDVRequest) (*contract.PDVResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	pdv := &entity.PDV{
		ID:          uuid.NewString(),
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		City:        req.City,
		Phone:       req.Phone,
	}
	if err := p.PDVRepo.Save(pdv); err != nil {
		log.Errorf("failed to save pdv: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPDVResponse(pdv, report.PartnerStats{}), nil
}

func (p *DefaultPDVService) UpdatePDV(id string, req *contract.PDVRequest) (*contract.PDVResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	pdv, err := p.PDVRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch pdv: %v", err)
		return nil, apierror.InternalServerError
	}
	if pdv == nil {
		return nil, apierror.NotFoundError
	}

	pdv.CompanyName = req.CompanyName
	pdv.ContactName = req.ContactName
	pdv.City = req.City
	pdv.Phone = req.Phone

	if err := p.PDVRepo.Save(pdv); err != nil {
		log.Errorf("failed to update pdv: %v", err)
		return nil, apierror.InternalServerError
	}

	sales, err := p.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPDVResponse(pdv, report.ForPartner(sales, pdv, p.Now())), nil
}

func (p *DefaultPDVService) DeletePDV(id string) apierror.ErrorResponse {
	pdv, err := p.PDVRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch pdv: %v", err)
		return apierror.InternalServerError
	}
	if pdv == nil {
		return apierror.NotFoundError
	}

	if err := p.PDVRepo.Delete(pdv); err != nil {
		log.Errorf("failed to delete pdv: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func matchesSearch(pdv *entity.PDV, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(pdv.CompanyName), term) ||
		strings.Contains(strings.ToLower(pdv.ContactName), term) ||
		strings.Contains(strings.ToLower(pdv.City), term)
}

func sortPDVs(pdvs []*contract.PDVResponse, order string) {
	switch order {
	case SortForgotten:
		sort.SliceStable(pdvs, func(i, j int) bool { return pdvs[i].DaysSince > pdvs[j].DaysSince })
	case SortRevenueDesc:
		sort.SliceStable(pdvs, func(i, j int) bool { return pdvs[i].Revenue > pdvs[j].Revenue })
	case SortRevenueAsc:
		sort.SliceStable(pdvs, func(i, j int) bool { return pdvs[i].Revenue < pdvs[j].Revenue })
	default:
		sort.SliceStable(pdvs, func(i, j int) bool { return pdvs[i].DaysSince < pdvs[j].DaysSince })
	}
}

func toPDVResponse(pdv *entity.PDV, stats report.PartnerStats) *contract.PDVResponse {
	resp := &contract.PDVResponse{
		ID:          pdv.ID,
		CompanyName: pdv.CompanyName,
		ContactName: pdv.ContactName,
		City:        pdv.City,
		Phone:       pdv.Phone,
		IsFuture:    stats.IsFuture(),
		DaysSince:   stats.Staleness.SortDays(),
		Severity:    string(stats.Staleness.Severity()),
		Efficiency:  stats.Efficiency(),
		Revenue:     stats.TotalRevenue,
		VisitCount:  stats.VisitCount,
		Consigned:   stats.LastConsigned,
	}
	if stats.Staleness.Visited {
		resp.LastVisit = utils.FormatEpoch(stats.LastVisit)
	}
	return resp
}

func toMonthlyResponse(m report.MonthlyStat) contract.MonthlyStatResponse {
	return contract.MonthlyStatResponse{
		Year:         m.Year,
		Month:        int(m.Month),
		Label:        utils.MonthNamePT(m.Month),
		Total:        m.Total,
		Street:       m.Street,
		PDV:          m.PDV,
		Count:        m.Count,
		PDVItemsSold: m.PDVItemsSold,
		PDVItemsLeft: m.PDVItemsLeft,
		Conversion:   m.Conversion(),
	}
}
