package query

import (
	"sort"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/vegasq/querylab/dataset"
)

// RankedCustomer is one line of the customer ranking.
type RankedCustomer struct {
	CustomerID string
	Year       int
	Month      time.Month
	Turnover   apd.Decimal
}

// RankCustomers orders customers by:
//
//  1. year of their first order, ascending
//  2. month of their first order, ascending
//  3. turnover, descending
//  4. customer id, ascending
//
// Customers without orders have no year or month and are left out.
func RankCustomers(ds *dataset.Dataset) []RankedCustomer {
	var ranked []RankedCustomer
	for _, c := range ds.Customers {
		first, ok := FirstOrder(c)
		if !ok {
			continue
		}
		ranked = append(ranked, RankedCustomer{
			CustomerID: c.ID,
			Year:       first.Date.Year(),
			Month:      first.Date.Month(),
			Turnover:   Turnover(c),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return compareRanked(&ranked[i], &ranked[j]) < 0
	})

	return ranked
}

// compareRanked returns -1, 0 or +1 following the RankCustomers key order.
func compareRanked(a, b *RankedCustomer) int {
	if a.Year != b.Year {
		return compareInts(a.Year, b.Year)
	}
	if a.Month != b.Month {
		return compareInts(int(a.Month), int(b.Month))
	}
	// Turnover sorts descending.
	if cmp := b.Turnover.Cmp(&a.Turnover); cmp != 0 {
		return cmp
	}
	switch {
	case a.CustomerID < b.CustomerID:
		return -1
	case a.CustomerID > b.CustomerID:
		return 1
	}
	return 0
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
