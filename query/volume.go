package query

import (
	"sort"
	"time"

	"github.com/vegasq/querylab/dataset"
)

// MonthCount is the number of orders placed in a month.
type MonthCount struct {
	Month time.Month
	Count int
}

// YearCount is the number of orders placed in a year.
type YearCount struct {
	Year  int
	Count int
}

// YearMonths breaks one year down by month.
type YearMonths struct {
	Year   int
	Months []MonthCount
}

// VolumeReport holds the three order-count breakdowns.
type VolumeReport struct {
	// ByMonth counts orders per month of year, ignoring the year.
	ByMonth []MonthCount
	ByYear  []YearCount
	// ByYearMonth counts orders per month within each year.
	ByYearMonth []YearMonths
}

// OrderVolume counts all orders of all customers per month of year, per year,
// and per year and month. Every breakdown is sorted ascending and only holds
// periods that have at least one order.
func OrderVolume(ds *dataset.Dataset) VolumeReport {
	orders := ds.Orders()
	var report VolumeReport

	for _, g := range groupBy(orders, func(o dataset.Order) time.Month { return o.Date.Month() }) {
		report.ByMonth = append(report.ByMonth, MonthCount{Month: g.key, Count: len(g.members)})
	}
	sort.Slice(report.ByMonth, func(i, j int) bool {
		return report.ByMonth[i].Month < report.ByMonth[j].Month
	})

	years := groupBy(orders, func(o dataset.Order) int { return o.Date.Year() })
	sort.Slice(years, func(i, j int) bool { return years[i].key < years[j].key })

	for _, year := range years {
		report.ByYear = append(report.ByYear, YearCount{Year: year.key, Count: len(year.members)})

		breakdown := YearMonths{Year: year.key}
		for _, g := range groupBy(year.members, func(o dataset.Order) time.Month { return o.Date.Month() }) {
			breakdown.Months = append(breakdown.Months, MonthCount{Month: g.key, Count: len(g.members)})
		}
		sort.Slice(breakdown.Months, func(i, j int) bool {
			return breakdown.Months[i].Month < breakdown.Months[j].Month
		})
		report.ByYearMonth = append(report.ByYearMonth, breakdown)
	}

	return report
}
