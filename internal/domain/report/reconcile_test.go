package report

import (
	"testing"
	"time"

	"trufapro/internal/domain/entity"
)

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func daysAgo(now time.Time, days int) int64 {
	return now.AddDate(0, 0, -days).UnixMilli()
}

func pdvSale(partner *entity.PDV, ts int64, total float64, items ...entity.SaleItem) entity.Sale {
	return entity.Sale{
		ID:        "s-" + partner.ID,
		Timestamp: ts,
		Type:      entity.ChannelPDV,
		City:      partner.City,
		Location:  partner.CompanyName,
		PdvID:     partner.ID,
		Total:     total,
		Items:     items,
	}
}

func TestForPartner(t *testing.T) {
	now := fixedNow()
	padaria := entity.PDV{ID: "p1", CompanyName: "Padaria X", City: "Campinas"}

	t.Run("no matching records yields future state", func(t *testing.T) {
		stats := ForPartner(nil, &padaria, now)
		if !stats.IsFuture() {
			t.Error("expected future state for partner with no visits")
		}
		if stats.Staleness.SortDays() != UnvisitedDays {
			t.Errorf("sort days = %d, want %d", stats.Staleness.SortDays(), UnvisitedDays)
		}
		if stats.Efficiency() != 0 {
			t.Errorf("efficiency = %v, want 0", stats.Efficiency())
		}
		if stats.TotalRevenue != 0 {
			t.Errorf("revenue = %v, want 0", stats.TotalRevenue)
		}
		if stats.Staleness.Severity() != SeverityFuture {
			t.Errorf("severity = %v, want future", stats.Staleness.Severity())
		}
	})

	t.Run("efficiency from sold and leftover", func(t *testing.T) {
		sales := []entity.Sale{
			pdvSale(&padaria, daysAgo(now, 1), 50,
				entity.SaleItem{TruffleID: "t1", Quantity: 10, LeftOverQuantity: 2}),
		}
		stats := ForPartner(sales, &padaria, now)
		want := 10.0 / 12.0 * 100
		if stats.Efficiency() != want {
			t.Errorf("efficiency = %v, want %v", stats.Efficiency(), want)
		}
		if stats.TotalRevenue != 50 {
			t.Errorf("revenue = %v, want 50", stats.TotalRevenue)
		}
	})

	t.Run("zero movement yields zero efficiency not NaN", func(t *testing.T) {
		sales := []entity.Sale{
			pdvSale(&padaria, daysAgo(now, 1), 0,
				entity.SaleItem{TruffleID: "t1", Quantity: 0, LeftOverQuantity: 0, NewConsignedQuantity: 3}),
		}
		stats := ForPartner(sales, &padaria, now)
		if stats.Efficiency() != 0 {
			t.Errorf("efficiency = %v, want 0", stats.Efficiency())
		}
	})

	t.Run("all zero line items are excluded", func(t *testing.T) {
		sales := []entity.Sale{
			pdvSale(&padaria, daysAgo(now, 1), 10,
				entity.SaleItem{TruffleID: "t1"},
				entity.SaleItem{TruffleID: "t2", Quantity: 5, LeftOverQuantity: 1}),
		}
		stats := ForPartner(sales, &padaria, now)
		if stats.TotalSold != 5 || stats.TotalLeftOver != 1 {
			t.Errorf("sold/left = %d/%d, want 5/1", stats.TotalSold, stats.TotalLeftOver)
		}
	})

	t.Run("last visit wins and carries the consignment", func(t *testing.T) {
		sales := []entity.Sale{
			pdvSale(&padaria, daysAgo(now, 30), 20,
				entity.SaleItem{TruffleID: "t1", Quantity: 4, NewConsignedQuantity: 50}),
			pdvSale(&padaria, daysAgo(now, 3), 30,
				entity.SaleItem{TruffleID: "t1", Quantity: 6, NewConsignedQuantity: 12},
				entity.SaleItem{TruffleID: "t2", Quantity: 1, NewConsignedQuantity: 8}),
		}
		stats := ForPartner(sales, &padaria, now)
		if stats.Staleness.Days != 3 {
			t.Errorf("days since = %d, want 3", stats.Staleness.Days)
		}
		if stats.LastConsigned != 20 {
			t.Errorf("last consigned = %d, want 20", stats.LastConsigned)
		}
		if stats.VisitCount != 2 {
			t.Errorf("visit count = %d, want 2", stats.VisitCount)
		}
		if stats.TotalRevenue != 50 {
			t.Errorf("revenue = %v, want 50", stats.TotalRevenue)
		}
	})

	t.Run("street records never match a partner", func(t *testing.T) {
		sales := []entity.Sale{{
			ID: "s1", Timestamp: daysAgo(now, 1), Type: entity.ChannelRua,
			City: entity.StreetCity, Location: "Padaria X", Total: 99,
		}}
		stats := ForPartner(sales, &padaria, now)
		if !stats.IsFuture() {
			t.Error("street sale must not match a PDV partner")
		}
	})
}

func TestMatchesPartner(t *testing.T) {
	p := entity.PDV{ID: "p1", CompanyName: "Doces & Cia"}

	t.Run("matches by stable id", func(t *testing.T) {
		s := entity.Sale{Type: entity.ChannelPDV, PdvID: "p1", Location: "renamed store"}
		if !MatchesPartner(&s, &p) {
			t.Error("expected match by partner id")
		}
	})

	t.Run("legacy records match by location case-insensitively", func(t *testing.T) {
		s := entity.Sale{Type: entity.ChannelPDV, Location: "DOCES & cia"}
		if !MatchesPartner(&s, &p) {
			t.Error("expected case-insensitive location match")
		}
	})

	t.Run("id of another partner does not fall back to location", func(t *testing.T) {
		s := entity.Sale{Type: entity.ChannelPDV, PdvID: "p2", Location: "Other"}
		if MatchesPartner(&s, &p) {
			t.Error("unexpected match for another partner's id")
		}
	})
}

func TestDaysBetween(t *testing.T) {
	now := fixedNow().UnixMilli()

	t.Run("partial days truncate", func(t *testing.T) {
		almostADay := now - (DayMillis - 60_000)
		if d := DaysBetween(almostADay, now); d != 0 {
			t.Errorf("23h59m ago = %d days, want 0", d)
		}
	})

	t.Run("thirty days reads critical", func(t *testing.T) {
		s := Staleness{Visited: true, Days: DaysBetween(now-30*DayMillis, now)}
		if s.Days != 30 {
			t.Errorf("days = %d, want 30", s.Days)
		}
		if s.Severity() != SeverityCritical {
			t.Errorf("severity = %v, want critical", s.Severity())
		}
	})

	t.Run("monotonic as now advances", func(t *testing.T) {
		visit := now - 5*DayMillis
		prev := -1
		for tick := now; tick < now+3*DayMillis; tick += 6 * 60 * 60 * 1000 {
			d := DaysBetween(visit, tick)
			if d < prev {
				t.Fatalf("days since decreased from %d to %d", prev, d)
			}
			prev = d
		}
	})

	t.Run("clock skew clamps to zero", func(t *testing.T) {
		if d := DaysBetween(now+DayMillis, now); d != 0 {
			t.Errorf("future visit = %d days, want 0", d)
		}
	})
}

func TestSeverityBands(t *testing.T) {
	cases := []struct {
		days int
		want Severity
	}{
		{0, SeverityHealthy},
		{14, SeverityHealthy},
		{15, SeverityWarning},
		{28, SeverityWarning},
		{29, SeverityCritical},
		{120, SeverityCritical},
	}
	for _, c := range cases {
		s := Staleness{Visited: true, Days: c.days}
		if got := s.Severity(); got != c.want {
			t.Errorf("severity(%d) = %v, want %v", c.days, got, c.want)
		}
	}
}

func TestGroupCities(t *testing.T) {
	now := fixedNow()
	a := entity.PDV{ID: "p1", CompanyName: "Padaria X", City: "Campinas"}
	b := entity.PDV{ID: "p2", CompanyName: "Mercado Y", City: "  campinas "}
	c := entity.PDV{ID: "p3", CompanyName: "Café Z", City: "Valinhos"}
	sales := []entity.Sale{
		pdvSale(&a, daysAgo(now, 2), 100),
		pdvSale(&b, daysAgo(now, 40), 60),
	}

	cities := GroupCities(sales, []entity.PDV{a, b, c}, now)
	if len(cities) != 2 {
		t.Fatalf("city count = %d, want 2 (trimmed case-insensitive grouping)", len(cities))
	}

	campinas := cities[0]
	if campinas.Name != "Campinas" {
		t.Fatalf("worst city = %q, want Campinas first", campinas.Name)
	}
	if campinas.PDVCount != 2 {
		t.Errorf("pdv count = %d, want 2", campinas.PDVCount)
	}
	if campinas.Revenue != 160 {
		t.Errorf("revenue = %v, want 160", campinas.Revenue)
	}
	if campinas.MaxDaysSince.Days != 40 {
		t.Errorf("max days = %d, want 40 (worst member flags the city)", campinas.MaxDaysSince.Days)
	}

	valinhos := cities[1]
	if valinhos.MaxDaysSince.Visited {
		t.Error("city with no visits must stay unvisited")
	}
	if valinhos.MaxDaysSince.SortDays() != UnvisitedDays {
		t.Errorf("unvisited sort days = %d, want %d", valinhos.MaxDaysSince.SortDays(), UnvisitedDays)
	}
}

func TestCityActivityFrom(t *testing.T) {
	now := fixedNow()
	sales := []entity.Sale{
		{ID: "1", Timestamp: daysAgo(now, 10), Type: entity.ChannelPDV, City: "Campinas", Location: "A", Total: 30},
		{ID: "2", Timestamp: daysAgo(now, 2), Type: entity.ChannelPDV, City: "campinas", Location: "B", Total: 20},
		{ID: "3", Timestamp: daysAgo(now, 1), Type: entity.ChannelRua, City: entity.StreetCity, Location: entity.StreetLocation, Total: 15},
	}
	cities := CityActivityFrom(sales, now)
	if len(cities) != 1 {
		t.Fatalf("city count = %d, want 1 (street channel excluded)", len(cities))
	}
	got := cities[0]
	if got.Staleness.Days != 2 {
		t.Errorf("days since = %d, want 2 (most recent visit wins)", got.Staleness.Days)
	}
	if got.Revenue != 50 {
		t.Errorf("revenue = %v, want 50", got.Revenue)
	}
	if got.SalesCount != 2 {
		t.Errorf("sales count = %d, want 2", got.SalesCount)
	}
}

func TestFlavorBreakdown(t *testing.T) {
	now := fixedNow()
	p := entity.PDV{ID: "p1", CompanyName: "Padaria X", City: "Campinas"}
	sales := []entity.Sale{
		pdvSale(&p, daysAgo(now, 5), 40,
			entity.SaleItem{TruffleID: "t1", Quantity: 3, LeftOverQuantity: 1},
			entity.SaleItem{TruffleID: "deleted-flavor", Quantity: 8}),
		pdvSale(&p, daysAgo(now, 1), 20,
			entity.SaleItem{TruffleID: "t1", Quantity: 2, NewConsignedQuantity: 10}),
	}
	got := FlavorBreakdown(sales, &p)
	if len(got) != 2 {
		t.Fatalf("flavor count = %d, want 2", len(got))
	}
	if got[0].TruffleID != "deleted-flavor" {
		t.Errorf("first flavor = %q, want highest seller even when the catalog entry is gone", got[0].TruffleID)
	}
	if got[1].Sold != 5 || got[1].LeftOver != 1 || got[1].Consigned != 10 {
		t.Errorf("t1 movement = %+v, want sold 5 left 1 consigned 10", got[1])
	}
}
