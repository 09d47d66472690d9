package report

import (
	"sort"
	"time"

	"trufapro/internal/domain/entity"
)

// MonthlyStat is one calendar month's rollup, split by channel.
type MonthlyStat struct {
	Year         int
	Month        time.Month
	Total        float64
	Street       float64
	PDV          float64
	Count        int
	PDVItemsSold int
	PDVItemsLeft int
}

// Conversion is the month's consigned-stock turnover in percent.
func (m MonthlyStat) Conversion() float64 {
	return Ratio(m.PDVItemsSold, m.PDVItemsLeft)
}

// MonthlyRollup groups ledger records into calendar months in the
// given location. Months come back newest first.
func MonthlyRollup(sales []entity.Sale, loc *time.Location) []MonthlyStat {
	index := make(map[[2]int]int)
	var months []MonthlyStat
	for i := range sales {
		s := &sales[i]
		t := time.UnixMilli(s.Timestamp).In(loc)
		key := [2]int{t.Year(), int(t.Month())}
		idx, ok := index[key]
		if !ok {
			idx = len(months)
			index[key] = idx
			months = append(months, MonthlyStat{Year: t.Year(), Month: t.Month()})
		}
		m := &months[idx]
		m.Total += s.Total
		m.Count++
		switch s.Type {
		case entity.ChannelRua:
			m.Street += s.Total
		case entity.ChannelPDV:
			m.PDV += s.Total
			for _, it := range s.Items {
				if it.IsZero() {
					continue
				}
				m.PDVItemsSold += it.Quantity
				m.PDVItemsLeft += it.LeftOverQuantity
			}
		}
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return months[i].Month > months[j].Month
	})
	return months
}

// AnnualStat folds a year's months into one figure set.
type AnnualStat struct {
	Year         int
	Total        float64
	Street       float64
	PDV          float64
	Count        int
	PDVItemsSold int
	PDVItemsLeft int
}

func (a AnnualStat) Conversion() float64 {
	return Ratio(a.PDVItemsSold, a.PDVItemsLeft)
}

// Annual sums the monthly rollup for one year.
func Annual(months []MonthlyStat, year int) AnnualStat {
	out := AnnualStat{Year: year}
	for _, m := range months {
		if m.Year != year {
			continue
		}
		out.Total += m.Total
		out.Street += m.Street
		out.PDV += m.PDV
		out.Count += m.Count
		out.PDVItemsSold += m.PDVItemsSold
		out.PDVItemsLeft += m.PDVItemsLeft
	}
	return out
}

// PercentChange compares current against previous. No prior baseline
// counts as fully up; two empty windows count as no change.
func PercentChange(current, previous float64) float64 {
	switch {
	case previous > 0:
		return (current - previous) / previous * 100
	case current > 0:
		return 100
	default:
		return 0
	}
}

// StartOfDay returns local midnight of the instant, in epoch millis.
func StartOfDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).UnixMilli()
}

// StartOfMonth returns the first local instant of the month, in epoch
// millis. Monthly windows are calendar-aligned, never rolling.
func StartOfMonth(t time.Time) int64 {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).UnixMilli()
}

// SumSince totals ledger records at or after the cutoff.
func SumSince(sales []entity.Sale, cutoff int64) float64 {
	var total float64
	for i := range sales {
		if sales[i].Timestamp >= cutoff {
			total += sales[i].Total
		}
	}
	return total
}

// SumBetween totals ledger records in [from, to).
func SumBetween(sales []entity.Sale, from, to int64) float64 {
	var total float64
	for i := range sales {
		if sales[i].Timestamp >= from && sales[i].Timestamp < to {
			total += sales[i].Total
		}
	}
	return total
}

// DailyAverage divides the month-to-date total by elapsed days of the
// month, counting today as a full day.
func DailyAverage(monthTotal float64, now time.Time) float64 {
	return monthTotal / float64(now.Day())
}
