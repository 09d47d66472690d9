package service

import (
	"testing"
	"time"

	"trufapro/internal/contract"
	"trufapro/internal/domain/entity"
	"trufapro/internal/domain/sqlite/repository"
)

func newReportFixture(t *testing.T) (*DefaultReportService, *DefaultSaleService, *DefaultCatalogService, *DefaultPDVService, *DefaultSettingsService) {
	t.Helper()
	db := newTestDB(t)
	validate := newTestValidator(t)

	truffleRepo := repository.NewTruffleRepository(db)
	pdvRepo := repository.NewPDVRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	clock := fixedClock(time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC))

	saleService := NewSaleService(saleRepo, truffleRepo, pdvRepo, validate)
	saleService.Now = clock
	reportService := NewReportService(saleRepo, settingRepo)
	reportService.Now = clock
	pdvService := NewPDVService(pdvRepo, saleRepo, truffleRepo, validate)
	pdvService.Now = clock
	return reportService, saleService, NewCatalogService(truffleRepo, validate), pdvService, NewSettingsService(settingRepo, validate)
}

func TestGetDashboard(t *testing.T) {
	t.Run("empty ledger reads all zeroes and the all clear nudge", func(t *testing.T) {
		reports, _, _, _, _ := newReportFixture(t)

		dash, apierr := reports.GetDashboard()
		if apierr != nil {
			t.Fatalf("unexpected error: %v", apierr)
		}
		if dash.Today != 0 || dash.MonthTotal != 0 {
			t.Errorf("totals = %v/%v, want 0/0", dash.Today, dash.MonthTotal)
		}
		if dash.PercentChange != 0 {
			t.Errorf("percentChange = %v, want 0 when both windows are empty", dash.PercentChange)
		}
		if dash.Nudge.Title != "Rotas em Dia" {
			t.Errorf("nudge = %q, want the all clear state", dash.Nudge.Title)
		}
		// The only alert is the never-backed-up reminder.
		if len(dash.Alerts) != 1 || dash.Alerts[0].Title != "Backup Seguro" {
			t.Errorf("alerts = %+v, want just the backup reminder", dash.Alerts)
		}
	})

	t.Run("headline figures and critical route alert", func(t *testing.T) {
		reports, sales, catalog, pdvs, _ := newReportFixture(t)
		truffle := seedTruffle(t, catalog)
		partner, _ := pdvs.CreatePDV(&contract.PDVRequest{
			CompanyName: "Padaria X", ContactName: "Ana", City: "Campinas",
		})

		mustSale := func(req *contract.SaleRequest) {
			t.Helper()
			if _, apierr := sales.CreateSale(req); apierr != nil {
				t.Fatalf("failed to seed sale: %v", apierr)
			}
		}
		// Today, street channel.
		mustSale(&contract.SaleRequest{
			Type:  entity.ChannelRua,
			Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 4}},
		})
		// Last month, setting the comparison baseline.
		mustSale(&contract.SaleRequest{
			Type:  entity.ChannelRua,
			Date:  time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC).UnixMilli(),
			Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 2}},
		})
		// A PDV visit 45 days back, past the critical threshold.
		mustSale(&contract.SaleRequest{
			Type: entity.ChannelPDV, PdvID: partner.ID,
			Date:  time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC).UnixMilli(),
			Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 5}},
		})

		dash, apierr := reports.GetDashboard()
		if apierr != nil {
			t.Fatalf("unexpected error: %v", apierr)
		}
		if dash.Today != 20 {
			t.Errorf("today = %v, want 20", dash.Today)
		}
		if dash.MonthTotal != 20 {
			t.Errorf("monthTotal = %v, want 20", dash.MonthTotal)
		}
		// May carried 10 (street) + 20 (pdv) = 30; June has 20.
		if want := (20.0 - 30.0) / 30.0 * 100; dash.PercentChange != want {
			t.Errorf("percentChange = %v, want %v", dash.PercentChange, want)
		}
		if want := 20.0 / 15.0; dash.DailyAverage != want {
			t.Errorf("dailyAverage = %v, want %v", dash.DailyAverage, want)
		}
		if len(dash.Cities) != 1 || dash.Cities[0].Name != "Campinas" {
			t.Fatalf("cities = %+v, want Campinas only (street placeholder excluded)", dash.Cities)
		}
		if dash.Cities[0].DaysSince != 45 || dash.Cities[0].Severity != "critical" {
			t.Errorf("city = %+v, want 45 days critical", dash.Cities[0])
		}
		if dash.Nudge.Title != "Alerta de Retorno" {
			t.Errorf("nudge = %q, want the return alert", dash.Nudge.Title)
		}

		var foundCritical bool
		for _, a := range dash.Alerts {
			if a.Level == "critical" {
				foundCritical = true
			}
		}
		if !foundCritical {
			t.Errorf("alerts = %+v, want a critical route alert", dash.Alerts)
		}
	})
}

func TestGetMonthlyReport(t *testing.T) {
	reports, sales, catalog, _, _ := newReportFixture(t)
	truffle := seedTruffle(t, catalog)

	if _, apierr := sales.CreateSale(&contract.SaleRequest{
		Type:  entity.ChannelRua,
		Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 3}},
	}); apierr != nil {
		t.Fatalf("failed to seed sale: %v", apierr)
	}

	months, apierr := reports.GetMonthlyReport()
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if len(months) != 1 || months[0].Label != "JUNHO" {
		t.Fatalf("months = %+v, want one JUNHO entry", months)
	}
	if months[0].Street != 15 || months[0].PDV != 0 {
		t.Errorf("split = %v/%v, want 15/0", months[0].Street, months[0].PDV)
	}
}

func TestGetAnnualReport(t *testing.T) {
	reports, sales, catalog, pdvs, _ := newReportFixture(t)
	truffle := seedTruffle(t, catalog)
	partner, _ := pdvs.CreatePDV(&contract.PDVRequest{
		CompanyName: "Padaria X", ContactName: "Ana", City: "Campinas",
	})

	if _, apierr := sales.CreateSale(&contract.SaleRequest{
		Type: entity.ChannelPDV, PdvID: partner.ID,
		Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 9, LeftOverQuantity: 3}},
	}); apierr != nil {
		t.Fatalf("failed to seed sale: %v", apierr)
	}

	annual, apierr := reports.GetAnnualReport(2025)
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if annual.Total != 36 || annual.PDV != 36 {
		t.Errorf("totals = %v/%v, want 36/36", annual.Total, annual.PDV)
	}
	if annual.Conversion != 75 {
		t.Errorf("conversion = %v, want 75", annual.Conversion)
	}
	if len(annual.Months) != 1 {
		t.Errorf("months = %d, want 1", len(annual.Months))
	}

	empty, apierr := reports.GetAnnualReport(2020)
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if empty.Total != 0 || empty.Conversion != 0 || len(empty.Months) != 0 {
		t.Errorf("empty year = %+v, want zeroes", empty)
	}
}
