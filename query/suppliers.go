package query

import (
	"sort"

	"github.com/vegasq/querylab/dataset"
)

// SupplierMatch is one row of the customer/supplier location join.
type SupplierMatch struct {
	CustomerID   string
	City         string
	Country      string
	SupplierID   int
	SupplierName string
}

// LocationGroup holds the join rows sharing a (country, city) key.
type LocationGroup struct {
	Country string
	City    string
	Matches []SupplierMatch
}

// location is the composite join key. Both parts compare exactly, as stored.
type location struct {
	city    string
	country string
}

// CoLocatedSuppliers joins customers and suppliers on (city, country).
//
// It is an inner hash join: the suppliers are indexed by location, then the
// customers probe the index. Rows come out in customer order and, for each
// customer, in supplier order. Customers or suppliers without a counterpart
// produce no rows.
func CoLocatedSuppliers(ds *dataset.Dataset) []SupplierMatch {
	index := make(map[location][]dataset.Supplier)
	for _, s := range ds.Suppliers {
		key := location{city: s.City, country: s.Country}
		index[key] = append(index[key], s)
	}

	var matches []SupplierMatch
	for _, c := range ds.Customers {
		for _, s := range index[location{city: c.City, country: c.Country}] {
			matches = append(matches, SupplierMatch{
				CustomerID:   c.ID,
				City:         c.City,
				Country:      c.Country,
				SupplierID:   s.ID,
				SupplierName: s.Name,
			})
		}
	}

	return matches
}

// GroupByLocation groups join rows by (country, city). Groups are ordered by
// country, then city; rows inside a group keep their join order.
func GroupByLocation(matches []SupplierMatch) []LocationGroup {
	groups := groupBy(matches, func(m SupplierMatch) location {
		return location{city: m.City, country: m.Country}
	})

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].key.country != groups[j].key.country {
			return groups[i].key.country < groups[j].key.country
		}
		return groups[i].key.city < groups[j].key.city
	})

	result := make([]LocationGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, LocationGroup{
			Country: g.key.country,
			City:    g.key.city,
			Matches: g.members,
		})
	}
	return result
}
