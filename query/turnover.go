package query

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/vegasq/querylab/dataset"
)

// CustomerTurnover is a customer together with the sum of its order totals.
type CustomerTurnover struct {
	Customer dataset.Customer
	Turnover apd.Decimal
}

// Turnover returns the sum of the customer's order totals (zero without orders).
func Turnover(c dataset.Customer) apd.Decimal {
	return sumTotals(c.Orders)
}

// CustomersWithTurnover returns the customers whose turnover is strictly
// greater than threshold, in dataset order.
//
// A customer without orders has a turnover of zero and is only returned for a
// negative threshold. Raising the threshold never adds customers to the result.
func CustomersWithTurnover(ds *dataset.Dataset, threshold apd.Decimal) []CustomerTurnover {
	var result []CustomerTurnover
	for _, c := range ds.Customers {
		turnover := Turnover(c)
		if turnover.Cmp(&threshold) > 0 {
			result = append(result, CustomerTurnover{Customer: c, Turnover: turnover})
		}
	}
	return result
}

// LargeOrder is the first order of a customer whose total exceeds the amount
// asked for.
type LargeOrder struct {
	CustomerID string
	Order      dataset.Order
}

// LargeOrderReport is the result of CustomersWithLargeOrder.
type LargeOrderReport struct {
	Amount  apd.Decimal
	Matches []LargeOrder
	// GrandTotal is the sum of every order total of every matching customer,
	// not only of the orders above Amount.
	GrandTotal apd.Decimal
}

// CustomersWithLargeOrder returns the customers with at least one order whose
// total is strictly greater than amount. For each customer the first such
// order (in order sequence) is reported.
func CustomersWithLargeOrder(ds *dataset.Dataset, amount apd.Decimal) LargeOrderReport {
	exceeds := func(o dataset.Order) bool {
		return o.Total.Cmp(&amount) > 0
	}

	matching := filter(ds.Customers, func(c dataset.Customer) bool {
		return len(filter(c.Orders, exceeds)) > 0
	})

	report := LargeOrderReport{Amount: amount}
	for _, c := range matching {
		first := filter(c.Orders, exceeds)[0]
		report.Matches = append(report.Matches, LargeOrder{CustomerID: c.ID, Order: first})

		turnover := Turnover(c)
		report.GrandTotal = add(&report.GrandTotal, &turnover)
	}

	return report
}
