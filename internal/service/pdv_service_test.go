package service

import (
	"testing"
	"time"

	"trufapro/internal/contract"
	"trufapro/internal/domain/entity"
)

func TestGetPDVs(t *testing.T) {
	sales, catalog, pdvs := newSaleFixture(t)
	truffle := seedTruffle(t, catalog)

	fresh, _ := pdvs.CreatePDV(&contract.PDVRequest{
		CompanyName: "Padaria Fresca", ContactName: "Ana", City: "Campinas",
	})
	stale, _ := pdvs.CreatePDV(&contract.PDVRequest{
		CompanyName: "Mercado Antigo", ContactName: "Bruno", City: "Valinhos",
	})
	if _, apierr := pdvs.CreatePDV(&contract.PDVRequest{
		CompanyName: "Café Novo", ContactName: "Carla", City: "Itu",
	}); apierr != nil {
		t.Fatalf("failed to seed pdv: %v", apierr)
	}

	mustSale := func(req *contract.SaleRequest) {
		t.Helper()
		if _, apierr := sales.CreateSale(req); apierr != nil {
			t.Fatalf("failed to seed sale: %v", apierr)
		}
	}
	mustSale(&contract.SaleRequest{
		Type: entity.ChannelPDV, PdvID: fresh.ID,
		Date:  time.Date(2025, time.June, 13, 10, 0, 0, 0, time.UTC).UnixMilli(),
		Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 10, LeftOverQuantity: 2}},
	})
	mustSale(&contract.SaleRequest{
		Type: entity.ChannelPDV, PdvID: stale.ID,
		Date:  time.Date(2025, time.April, 10, 10, 0, 0, 0, time.UTC).UnixMilli(),
		Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 30}},
	})

	t.Run("recent sort puts the freshest route first", func(t *testing.T) {
		list, apierr := pdvs.GetPDVs(PDVListQuery{Sort: SortRecent})
		if apierr != nil {
			t.Fatalf("unexpected error: %v", apierr)
		}
		if len(list) != 3 {
			t.Fatalf("count = %d, want 3", len(list))
		}
		if list[0].CompanyName != "Padaria Fresca" {
			t.Errorf("first = %q, want the most recently visited", list[0].CompanyName)
		}
		if list[2].CompanyName != "Café Novo" || !list[2].IsFuture {
			t.Errorf("last = %q (future=%v), want the unvisited partner last", list[2].CompanyName, list[2].IsFuture)
		}
	})

	t.Run("forgotten sort puts the most neglected first", func(t *testing.T) {
		list, _ := pdvs.GetPDVs(PDVListQuery{Sort: SortForgotten})
		if list[0].CompanyName != "Café Novo" {
			t.Errorf("first = %q, want the never visited partner (sentinel day count)", list[0].CompanyName)
		}
		if list[1].CompanyName != "Mercado Antigo" {
			t.Errorf("second = %q, want the stalest visited partner", list[1].CompanyName)
		}
	})

	t.Run("revenue sorts", func(t *testing.T) {
		list, _ := pdvs.GetPDVs(PDVListQuery{Sort: SortRevenueDesc})
		if list[0].CompanyName != "Mercado Antigo" {
			t.Errorf("first = %q, want the top earner", list[0].CompanyName)
		}
		list, _ = pdvs.GetPDVs(PDVListQuery{Sort: SortRevenueAsc})
		if list[0].Revenue != 0 {
			t.Errorf("first revenue = %v, want 0", list[0].Revenue)
		}
	})

	t.Run("future filter keeps only unvisited partners", func(t *testing.T) {
		list, _ := pdvs.GetPDVs(PDVListQuery{OnlyFuture: true})
		if len(list) != 1 || list[0].CompanyName != "Café Novo" {
			t.Errorf("list = %+v, want only the unvisited partner", list)
		}
	})

	t.Run("search matches company, contact and city", func(t *testing.T) {
		list, _ := pdvs.GetPDVs(PDVListQuery{Search: "valinhos"})
		if len(list) != 1 || list[0].CompanyName != "Mercado Antigo" {
			t.Errorf("search by city came back with %+v", list)
		}
		list, _ = pdvs.GetPDVs(PDVListQuery{Search: "ana"})
		if len(list) != 1 || list[0].CompanyName != "Padaria Fresca" {
			t.Errorf("search by contact came back with %+v", list)
		}
	})

	t.Run("derived stats ride along", func(t *testing.T) {
		list, _ := pdvs.GetPDVs(PDVListQuery{Search: "fresca"})
		got := list[0]
		if got.DaysSince != 2 {
			t.Errorf("daysSince = %d, want 2", got.DaysSince)
		}
		if got.Severity != "healthy" {
			t.Errorf("severity = %q, want healthy", got.Severity)
		}
		want := 10.0 / 12.0 * 100
		if got.Efficiency != want {
			t.Errorf("efficiency = %v, want %v", got.Efficiency, want)
		}
		if got.Revenue != 40 {
			t.Errorf("revenue = %v, want 40", got.Revenue)
		}
	})
}

func TestGetPDVByID(t *testing.T) {
	sales, catalog, pdvs := newSaleFixture(t)
	truffle := seedTruffle(t, catalog)

	partner, _ := pdvs.CreatePDV(&contract.PDVRequest{
		CompanyName: "Padaria X", ContactName: "Ana", City: "Campinas",
	})
	if _, apierr := sales.CreateSale(&contract.SaleRequest{
		Type: entity.ChannelPDV, PdvID: partner.ID,
		Date:  time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC).UnixMilli(),
		Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 6, LeftOverQuantity: 2, NewConsignedQuantity: 12}},
	}); apierr != nil {
		t.Fatalf("failed to seed sale: %v", apierr)
	}

	detail, apierr := pdvs.GetPDVByID(partner.ID)
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if len(detail.Flavors) != 1 || detail.Flavors[0].Sold != 6 {
		t.Errorf("flavors = %+v, want one movement with 6 sold", detail.Flavors)
	}
	if detail.Consigned != 12 {
		t.Errorf("lastConsigned = %d, want 12", detail.Consigned)
	}
	if len(detail.History) != 1 || detail.History[0].Label != "MAIO" {
		t.Errorf("history = %+v, want one MAIO entry", detail.History)
	}
}

func TestPDVValidation(t *testing.T) {
	_, _, pdvs := newSaleFixture(t)

	_, apierr := pdvs.CreatePDV(&contract.PDVRequest{CompanyName: "  ", ContactName: "", City: ""})
	if apierr == nil || apierr.Code() != 400 {
		t.Fatalf("error = %v, want a 400 with field problems", apierr)
	}
}

func TestGetCities(t *testing.T) {
	sales, catalog, pdvs := newSaleFixture(t)
	truffle := seedTruffle(t, catalog)

	a, _ := pdvs.CreatePDV(&contract.PDVRequest{CompanyName: "Padaria X", ContactName: "Ana", City: "Campinas"})
	if _, apierr := pdvs.CreatePDV(&contract.PDVRequest{CompanyName: "Mercado Y", ContactName: "Bia", City: "campinas"}); apierr != nil {
		t.Fatalf("failed to seed pdv: %v", apierr)
	}
	if _, apierr := sales.CreateSale(&contract.SaleRequest{
		Type: entity.ChannelPDV, PdvID: a.ID,
		Date:  time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC).UnixMilli(),
		Items: []contract.SaleItemRequest{{TruffleID: truffle.ID, Quantity: 5}},
	}); apierr != nil {
		t.Fatalf("failed to seed sale: %v", apierr)
	}

	cities, apierr := pdvs.GetCities()
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if len(cities) != 1 {
		t.Fatalf("count = %d, want 1 (case-insensitive grouping)", len(cities))
	}
	if cities[0].PDVCount != 2 {
		t.Errorf("pdvCount = %d, want 2", cities[0].PDVCount)
	}
	if cities[0].Severity != "critical" {
		t.Errorf("severity = %q, want critical for a 45 day old route", cities[0].Severity)
	}
}
