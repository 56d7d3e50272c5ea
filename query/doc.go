// Package query implements the shop report queries over a dataset.Dataset.
//
// Every function in this package is a pure, deterministic transformation of
// the dataset it is given: no query mutates its input, and running the same
// query twice on the same dataset produces identical results in identical
// order. The dataset is always passed in explicitly.
//
// Queries are built from a handful of explicit steps instead of lazy chains:
//   - Filter: a predicate applied to a slice, keeping input order
//   - Join: a hash join on a composite key (customer and supplier location)
//   - Group: an ordered key -> members construction, then explicit key sorting
//   - Sort: multi-key comparators with a documented tie-break order
//   - Aggregate: decimal sums and means, counts per period
//
// # Available Queries
//
//   - CustomersWithTurnover: customers whose order totals exceed a threshold
//   - CustomersWithLargeOrder: customers with at least one order above an amount
//   - IncompleteContacts: customers with non-numeric postal codes, no region or
//     a phone without an operator code
//   - CoLocatedSuppliers / GroupByLocation: suppliers in the customer's city
//   - FirstOrderDates: the date each customer placed their first order
//   - RankCustomers: customers ordered by first-order year and month, turnover
//     and id
//   - GroupProducts: products by category, then stock level, then cost
//   - ClassifyPrices: products split into low, medium and high price tiers
//   - CityStatistics: mean order total and orders per customer for each city
//   - OrderVolume: order counts per month, per year and per year and month
//
// # Basic Usage
//
//	ds, err := dataset.LoadSample()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, ct := range query.CustomersWithTurnover(ds, dataset.MustMoney("10000")) {
//	    fmt.Printf("%s: %s\n", ct.Customer.ID, ct.Turnover.String())
//	}
//
// # Absent Data
//
// A customer without orders is a normal case, never an error: it has a
// turnover of zero, no first-order date and no ranking position. A city whose
// customers placed no orders has no profitability (CityStats.HasOrders is
// false) and an intensity of zero.
package query
