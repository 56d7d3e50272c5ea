package query

import (
	"sort"

	"github.com/cockroachdb/apd/v3"

	"github.com/vegasq/querylab/dataset"
)

// ProductCost is a product with the value of its stock.
type ProductCost struct {
	ProductID    int
	Name         string
	Category     string
	UnitPrice    apd.Decimal
	UnitsInStock int
	// Cost is UnitPrice * UnitsInStock.
	Cost apd.Decimal
}

// StockGroup holds the products of one category with the same stock level.
type StockGroup struct {
	UnitsInStock int
	Products     []ProductCost
}

// CategoryGroup holds a category's stock-level groups.
type CategoryGroup struct {
	Category string
	Stock    []StockGroup
}

// GroupProducts groups products by category, then by units in stock.
//
// Categories are ordered by name and stock groups by units in stock, both
// ascending. Inside a stock group products are ordered by cost ascending;
// products with equal cost keep dataset order. Every product appears in
// exactly one stock group.
func GroupProducts(ds *dataset.Dataset) []CategoryGroup {
	costs := make([]ProductCost, 0, len(ds.Products))
	for _, p := range ds.Products {
		units := apd.New(int64(p.UnitsInStock), 0)
		costs = append(costs, ProductCost{
			ProductID:    p.ID,
			Name:         p.Name,
			Category:     p.Category,
			UnitPrice:    p.UnitPrice,
			UnitsInStock: p.UnitsInStock,
			Cost:         mul(&p.UnitPrice, units),
		})
	}

	categories := groupBy(costs, func(pc ProductCost) string { return pc.Category })
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].key < categories[j].key
	})

	result := make([]CategoryGroup, 0, len(categories))
	for _, cg := range categories {
		levels := groupBy(cg.members, func(pc ProductCost) int { return pc.UnitsInStock })
		sort.SliceStable(levels, func(i, j int) bool {
			return levels[i].key < levels[j].key
		})

		category := CategoryGroup{Category: cg.key}
		for _, level := range levels {
			products := level.members
			sort.SliceStable(products, func(i, j int) bool {
				return products[i].Cost.Cmp(&products[j].Cost) < 0
			})
			category.Stock = append(category.Stock, StockGroup{
				UnitsInStock: level.key,
				Products:     products,
			})
		}
		result = append(result, category)
	}

	return result
}
