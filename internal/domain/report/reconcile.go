package report

import (
	"sort"
	"strings"
	"time"

	"trufapro/internal/domain/entity"
)

const (
	// DayMillis is one day in epoch milliseconds.
	DayMillis = int64(24 * 60 * 60 * 1000)

	// UnvisitedDays is the sort/display sentinel for partners and
	// cities with no recorded visit. Kept out of the arithmetic paths;
	// only SortDays exposes it.
	UnvisitedDays = 999

	CriticalAfterDays = 28
	WarningAfterDays  = 15
)

// Severity bands for route staleness. Future is the distinct state for
// partners with no visits yet and never falls in a numeric band.
type Severity string

const (
	SeverityHealthy  Severity = "healthy"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
	SeverityFuture   Severity = "future"
)

// Staleness is the elapsed-days-since-last-visit state of a partner or
// city. Visited distinguishes a real day count from "never visited",
// so thresholds are never compared against the sentinel by accident.
type Staleness struct {
	Visited bool
	Days    int
}

// SortDays maps the staleness to a sortable integer, substituting the
// large sentinel for never-visited entries so they order last.
func (s Staleness) SortDays() int {
	if !s.Visited {
		return UnvisitedDays
	}
	return s.Days
}

func (s Staleness) Severity() Severity {
	switch {
	case !s.Visited:
		return SeverityFuture
	case s.Days > CriticalAfterDays:
		return SeverityCritical
	case s.Days >= WarningAfterDays:
		return SeverityWarning
	default:
		return SeverityHealthy
	}
}

// DaysBetween returns whole elapsed days from then to now, both in
// epoch millis. Partial days truncate, so 23h59m reads as 0 days.
func DaysBetween(then, now int64) int {
	if now <= then {
		return 0
	}
	return int((now - then) / DayMillis)
}

// PartnerStats is the derived consignment view of one partner.
type PartnerStats struct {
	Staleness     Staleness
	LastVisit     int64
	TotalRevenue  float64
	TotalSold     int
	TotalLeftOver int
	LastConsigned int
	VisitCount    int
}

// IsFuture reports whether the partner has no recorded visits yet.
func (p PartnerStats) IsFuture() bool { return !p.Staleness.Visited }

// Efficiency is the turnover ratio in percent: units sold over units
// sold plus units returned. 0 when nothing moved.
func (p PartnerStats) Efficiency() float64 {
	return Ratio(p.TotalSold, p.TotalLeftOver)
}

// Ratio computes a/(a+b) as a percentage, 0 on a zero denominator.
func Ratio(a, b int) float64 {
	if a+b == 0 {
		return 0
	}
	return float64(a) / float64(a+b) * 100
}

// MatchesPartner reports whether the sale belongs to the partner.
// New records carry the partner id; legacy and imported records are
// matched by case-insensitive location against the company name.
func MatchesPartner(s *entity.Sale, p *entity.PDV) bool {
	if s.Type != entity.ChannelPDV {
		return false
	}
	if s.PdvID != "" && s.PdvID == p.ID {
		return true
	}
	return strings.EqualFold(s.Location, p.CompanyName)
}

// ForPartner reconciles the ledger against one partner.
func ForPartner(sales []entity.Sale, p *entity.PDV, now time.Time) PartnerStats {
	var stats PartnerStats
	nowMs := now.UnixMilli()
	var last *entity.Sale
	for i := range sales {
		s := &sales[i]
		if !MatchesPartner(s, p) {
			continue
		}
		stats.VisitCount++
		stats.TotalRevenue += s.Total
		for _, it := range s.Items {
			if it.IsZero() {
				continue
			}
			stats.TotalSold += it.Quantity
			stats.TotalLeftOver += it.LeftOverQuantity
		}
		if last == nil || s.Timestamp > last.Timestamp {
			last = s
		}
	}
	if last == nil {
		return stats
	}
	stats.LastVisit = last.Timestamp
	stats.Staleness = Staleness{Visited: true, Days: DaysBetween(last.Timestamp, nowMs)}
	for _, it := range last.Items {
		stats.LastConsigned += it.NewConsignedQuantity
	}
	return stats
}

// FlavorMovement is the per-flavor stock movement of one partner.
// Name resolves to "unknown flavor" labels upstream when the catalog
// entry was deleted; the id is kept so callers can tell.
type FlavorMovement struct {
	TruffleID string
	Sold      int
	LeftOver  int
	Consigned int
}

// FlavorBreakdown accumulates per-flavor movement over the sales that
// match the partner. Order is by descending units sold.
func FlavorBreakdown(sales []entity.Sale, p *entity.PDV) []FlavorMovement {
	byID := make(map[string]*FlavorMovement)
	for i := range sales {
		s := &sales[i]
		if !MatchesPartner(s, p) {
			continue
		}
		for _, it := range s.Items {
			if it.IsZero() {
				continue
			}
			m, ok := byID[it.TruffleID]
			if !ok {
				m = &FlavorMovement{TruffleID: it.TruffleID}
				byID[it.TruffleID] = m
			}
			m.Sold += it.Quantity
			m.LeftOver += it.LeftOverQuantity
			m.Consigned += it.NewConsignedQuantity
		}
	}
	out := make([]FlavorMovement, 0, len(byID))
	for _, m := range byID {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sold != out[j].Sold {
			return out[i].Sold > out[j].Sold
		}
		return out[i].TruffleID < out[j].TruffleID
	})
	return out
}

// CityStats aggregates the partners of one city. MaxDaysSince carries
// the worst staleness among members, flagging the whole city when any
// single partner is overdue.
type CityStats struct {
	Name         string
	PDVCount     int
	Revenue      float64
	MaxDaysSince Staleness
}

// CityKey is the grouping key for city names: trimmed and lowercased,
// applied uniformly on partners and ledger records.
func CityKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GroupCities groups partners by city and folds each member's stats.
// Cities come back ordered by worst staleness first.
func GroupCities(sales []entity.Sale, pdvs []entity.PDV, now time.Time) []CityStats {
	index := make(map[string]int)
	var cities []CityStats
	for i := range pdvs {
		p := &pdvs[i]
		key := CityKey(p.City)
		idx, ok := index[key]
		if !ok {
			idx = len(cities)
			index[key] = idx
			cities = append(cities, CityStats{Name: strings.TrimSpace(p.City)})
		}
		stats := ForPartner(sales, p, now)
		c := &cities[idx]
		c.PDVCount++
		c.Revenue += stats.TotalRevenue
		if stats.Staleness.Visited {
			if !c.MaxDaysSince.Visited || stats.Staleness.Days > c.MaxDaysSince.Days {
				c.MaxDaysSince = stats.Staleness
			}
		}
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].MaxDaysSince.SortDays() != cities[j].MaxDaysSince.SortDays() {
			return cities[i].MaxDaysSince.SortDays() > cities[j].MaxDaysSince.SortDays()
		}
		return cities[i].Name < cities[j].Name
	})
	return cities
}

// CityActivity is the visit recency of one city derived straight from
// the ledger, independent of registered partners. Used for the route
// overview, where street placeholders are excluded.
type CityActivity struct {
	Name       string
	Staleness  Staleness
	Revenue    float64
	SalesCount int
}

// CityActivityFrom folds PDV-channel ledger records by city.
func CityActivityFrom(sales []entity.Sale, now time.Time) []CityActivity {
	nowMs := now.UnixMilli()
	index := make(map[string]int)
	var out []CityActivity
	for i := range sales {
		s := &sales[i]
		if s.Type != entity.ChannelPDV {
			continue
		}
		key := CityKey(s.City)
		idx, ok := index[key]
		if !ok {
			idx = len(out)
			index[key] = idx
			out = append(out, CityActivity{Name: strings.TrimSpace(s.City)})
		}
		c := &out[idx]
		c.Revenue += s.Total
		c.SalesCount++
		days := DaysBetween(s.Timestamp, nowMs)
		if !c.Staleness.Visited || days < c.Staleness.Days {
			c.Staleness = Staleness{Visited: true, Days: days}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Staleness.SortDays() != out[j].Staleness.SortDays() {
			return out[i].Staleness.SortDays() > out[j].Staleness.SortDays()
		}
		return out[i].Name < out[j].Name
	})
	return out
}
