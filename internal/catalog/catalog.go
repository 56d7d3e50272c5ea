// Package catalog names the query exercises and turns their results into
// output result sets.
package catalog

import (
	"github.com/vegasq/querylab/dataset"
	"github.com/vegasq/querylab/internal/config"
	"github.com/vegasq/querylab/output"
)

// Category groups entries by the query technique they exercise.
type Category string

const (
	CategoryWhere     Category = "Where"
	CategoryJoin      Category = "Join"
	CategoryOrderBy   Category = "OrderBy"
	CategoryGroup     Category = "Group"
	CategoryStatistic Category = "Statistic"
)

// Entry is one runnable exercise.
type Entry struct {
	Name        string
	Category    Category
	Title       string
	Description string
	Run         func(ds *dataset.Dataset, cfg config.Config) ([]output.ResultSet, error)
}

// Entries returns the catalog in its fixed order.
func Entries() []Entry {
	return []Entry{
		{
			Name:        "turnover",
			Category:    CategoryWhere,
			Title:       "Customers by turnover",
			Description: "Customers whose summed order totals exceed each configured threshold.",
			Run:         runTurnover,
		},
		{
			Name:        "large-orders",
			Category:    CategoryWhere,
			Title:       "Customers with a large order",
			Description: "Customers with at least one order above the configured amount, and the grand total of their orders.",
			Run:         runLargeOrders,
		},
		{
			Name:        "contact-gaps",
			Category:    CategoryWhere,
			Title:       "Incomplete contact details",
			Description: "Customers with a non-numeric postal code, no region, or a phone without an operator code.",
			Run:         runContactGaps,
		},
		{
			Name:        "co-located-suppliers",
			Category:    CategoryJoin,
			Title:       "Suppliers in the customer's city",
			Description: "Customers joined with the suppliers located in the same city and country, flat and grouped by location.",
			Run:         runCoLocatedSuppliers,
		},
		{
			Name:        "first-order-dates",
			Category:    CategoryOrderBy,
			Title:       "Customer since",
			Description: "The date of every customer's first order.",
			Run:         runFirstOrderDates,
		},
		{
			Name:        "customer-ranking",
			Category:    CategoryOrderBy,
			Title:       "Customer ranking",
			Description: "Customers ordered by year and month of their first order, then by turnover descending, then by id.",
			Run:         runCustomerRanking,
		},
		{
			Name:        "product-groups",
			Category:    CategoryGroup,
			Title:       "Products by category and stock",
			Description: "Products grouped by category, then by units in stock, ordered by stock value.",
			Run:         runProductGroups,
		},
		{
			Name:        "price-tiers",
			Category:    CategoryGroup,
			Title:       "Products by price tier",
			Description: "Products partitioned into low, medium and high price tiers by the configured breakpoints.",
			Run:         runPriceTiers,
		},
		{
			Name:        "city-statistics",
			Category:    CategoryStatistic,
			Title:       "City statistics",
			Description: "Mean order total and mean number of orders per customer for every customer city.",
			Run:         runCityStatistics,
		},
		{
			Name:        "order-volume",
			Category:    CategoryStatistic,
			Title:       "Order volume",
			Description: "Order counts per month of year, per year, and per year and month.",
			Run:         runOrderVolume,
		},
	}
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Entries() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
