package service

import (
	"strconv"
	"time"

	"github.com/labstack/gommon/log"

	"trufapro/internal/contract"
	"trufapro/internal/domain/entity"
	"trufapro/internal/domain/report"
	"trufapro/internal/utils/apierror"
)

type SettingRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type DefaultReportService struct {
	SaleRepo    SaleRepository
	SettingRepo SettingRepository

	Now func() time.Time
}

func NewReportService(saleRepo SaleRepository, settingRepo SettingRepository) *DefaultReportService {
	return &DefaultReportService{
		SaleRepo:    saleRepo,
		SettingRepo: settingRepo,
		Now:         time.Now,
	}
}

// GetDashboard assembles the headline figures, the route overview and
// the alert strip in one call.
func (r *DefaultReportService) GetDashboard() (*contract.DashboardResponse, apierror.ErrorResponse) {
	sales, err := r.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}

	now := r.Now()
	monthStart := report.StartOfMonth(now)
	prevStart := report.StartOfMonth(now.AddDate(0, -1, 0))

	monthTotal := report.SumSince(sales, monthStart)
	prevTotal := report.SumBetween(sales, prevStart, monthStart)

	cities := report.CityActivityFrom(sales, now)
	resp := &contract.DashboardResponse{
		Today:         report.SumSince(sales, report.StartOfDay(now)),
		MonthTotal:    monthTotal,
		PercentChange: report.PercentChange(monthTotal, prevTotal),
		DailyAverage:  report.DailyAverage(monthTotal, now),
		Nudge:         toAlertResponse(report.ReturnNudge(cities)),
		Cities:        make([]contract.CityActivityResponse, len(cities)),
		Alerts:        []contract.AlertResponse{},
	}
	for i, c := range cities {
		resp.Cities[i] = contract.CityActivityResponse{
			Name:       c.Name,
			DaysSince:  c.Staleness.SortDays(),
			Severity:   string(c.Staleness.Severity()),
			Revenue:    c.Revenue,
			SalesCount: c.SalesCount,
		}
	}

	if alert, ok := report.CriticalRoutes(cities); ok {
		resp.Alerts = append(resp.Alerts, toAlertResponse(alert))
	}
	lastBackup, err := r.lastBackup()
	if err != nil {
		log.Errorf("failed to read last backup: %v", err)
		return nil, apierror.InternalServerError
	}
	if alert, ok := report.BackupReminder(lastBackup, now); ok {
		resp.Alerts = append(resp.Alerts, toAlertResponse(alert))
	}
	return resp, nil
}

func (r *DefaultReportService) GetMonthlyReport() ([]contract.MonthlyStatResponse, apierror.ErrorResponse) {
	sales, err := r.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}

	months := report.MonthlyRollup(sales, r.Now().Location())
	resp := make([]contract.MonthlyStatResponse, len(months))
	for i, m := range months {
		resp[i] = toMonthlyResponse(m)
	}
	return resp, nil
}

func (r *DefaultReportService) GetAnnualReport(year int) (*contract.AnnualReportResponse, apierror.ErrorResponse) {
	sales, err := r.SaleRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch sales: %v", err)
		return nil, apierror.InternalServerError
	}

	months := report.MonthlyRollup(sales, r.Now().Location())
	annual := report.Annual(months, year)

	resp := &contract.AnnualReportResponse{
		Year:       year,
		Total:      annual.Total,
		Street:     annual.Street,
		PDV:        annual.PDV,
		Count:      annual.Count,
		Conversion: annual.Conversion(),
	}
	for _, m := range months {
		if m.Year == year {
			resp.Months = append(resp.Months, toMonthlyResponse(m))
		}
	}
	return resp, nil
}

func (r *DefaultReportService) lastBackup() (int64, error) {
	raw, err := r.SettingRepo.Get(entity.SettingLastBackup)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// A corrupt value reads as never backed up.
		return 0, nil
	}
	return millis, nil
}

func toAlertResponse(a report.Alert) contract.AlertResponse {
	return contract.AlertResponse{Level: a.Level, Title: a.Title, Message: a.Message}
}
