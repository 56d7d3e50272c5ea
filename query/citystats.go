package query

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/vegasq/querylab/dataset"
)

// CityStats aggregates the orders of the customers living in one city.
type CityStats struct {
	City      string
	Customers int
	Orders    int
	Revenue   apd.Decimal
	// Profitability is the mean order total. It is only meaningful when
	// HasOrders is true; a city without orders has no profitability.
	Profitability apd.Decimal
	HasOrders     bool
	// Intensity is the mean number of orders per customer: Orders / Customers.
	Intensity float64
}

// CityStatistics computes, for each distinct customer city, the mean order
// total (profitability) and the mean number of orders per customer
// (intensity).
//
// Cities are keyed by name alone and listed in order of first appearance in
// the customer list. Every listed city has at least one customer, so the
// intensity is always defined; it is zero when nobody in the city ordered.
func CityStatistics(ds *dataset.Dataset) []CityStats {
	cities := groupBy(ds.Customers, func(c dataset.Customer) string { return c.City })

	result := make([]CityStats, 0, len(cities))
	for _, city := range cities {
		var orders []dataset.Order
		for _, c := range city.members {
			orders = append(orders, c.Orders...)
		}

		stats := CityStats{
			City:      city.key,
			Customers: len(city.members),
			Orders:    len(orders),
			Revenue:   sumTotals(orders),
			Intensity: float64(len(orders)) / float64(len(city.members)),
		}
		if len(orders) > 0 {
			stats.HasOrders = true
			stats.Profitability = mean(&stats.Revenue, len(orders))
		}
		result = append(result, stats)
	}

	return result
}
