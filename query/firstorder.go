package query

import (
	"time"

	"github.com/vegasq/querylab/dataset"
)

// CustomerSince is the date a customer placed their first order.
type CustomerSince struct {
	CustomerID string
	OrderID    int
	Since      time.Time
}

// FirstOrder returns the customer's chronologically earliest order. Among
// orders on the same date the one stored first wins. ok is false for a
// customer without orders.
func FirstOrder(c dataset.Customer) (first dataset.Order, ok bool) {
	for i, o := range c.Orders {
		if i == 0 || o.Date.Before(first.Date) {
			first = o
		}
	}
	return first, len(c.Orders) > 0
}

// FirstOrderDates returns, in dataset order, the first-order date of every
// customer that has ordered at all.
func FirstOrderDates(ds *dataset.Dataset) []CustomerSince {
	var result []CustomerSince
	for _, c := range ds.Customers {
		first, ok := FirstOrder(c)
		if !ok {
			continue
		}
		result = append(result, CustomerSince{
			CustomerID: c.ID,
			OrderID:    first.ID,
			Since:      first.Date,
		})
	}
	return result
}
