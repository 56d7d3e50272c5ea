package dataset

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// DateLayout is the calendar-date layout used by every dataset source.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date. Full RFC 3339 timestamps, as some SQL
// drivers return them, are accepted and truncated to the day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Customer is a buyer. A customer owns its orders.
type Customer struct {
	ID          string
	CompanyName string
	City        string
	Country     string
	Region      string // empty when the customer has no region
	PostalCode  string // empty when unknown
	Phone       string
	Orders      []Order
}

// Order is a single purchase. Total is authoritative; there are no line items.
type Order struct {
	ID         int
	CustomerID string
	Date       time.Time
	Total      apd.Decimal
}

// Product is a catalogue item.
type Product struct {
	ID           int
	Name         string
	Category     string
	UnitPrice    apd.Decimal
	UnitsInStock int
}

// Supplier delivers products from a city.
type Supplier struct {
	ID      int
	Name    string
	City    string
	Country string
}

// Dataset is the in-memory collection every query reads.
type Dataset struct {
	Customers []Customer
	Products  []Product
	Suppliers []Supplier
}

// Orders returns every order of every customer, customers in dataset order and
// each customer's orders in their stored order.
func (ds *Dataset) Orders() []Order {
	var orders []Order
	for _, c := range ds.Customers {
		orders = append(orders, c.Orders...)
	}
	return orders
}

// OrderCount returns the number of orders across all customers.
func (ds *Dataset) OrderCount() int {
	n := 0
	for _, c := range ds.Customers {
		n += len(c.Orders)
	}
	return n
}
