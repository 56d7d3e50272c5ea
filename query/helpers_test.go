package query

import (
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/querylab/dataset"
)

var nextOrderID = 1

// order builds an order dated YYYY-MM-DD with a decimal total.
func order(date, total string) dataset.Order {
	d, err := time.Parse(dataset.DateLayout, date)
	if err != nil {
		panic(err)
	}
	nextOrderID++
	return dataset.Order{ID: nextOrderID, Date: d, Total: dataset.MustMoney(total)}
}

// customer builds a customer that owns orders.
func customer(id, city, country string, orders ...dataset.Order) dataset.Customer {
	for i := range orders {
		orders[i].CustomerID = id
	}
	return dataset.Customer{ID: id, City: city, Country: country, Orders: orders}
}

func product(id int, name, category, price string, stock int) dataset.Product {
	return dataset.Product{ID: id, Name: name, Category: category, UnitPrice: dataset.MustMoney(price), UnitsInStock: stock}
}

func loadSample(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.LoadSample()
	require.NoError(t, err)
	return ds
}

// assertDecimal compares a decimal by value, so "150" equals "150.00".
func assertDecimal(t *testing.T, want string, got apd.Decimal) {
	t.Helper()
	w := dataset.MustMoney(want)
	assert.Zero(t, w.Cmp(&got), "want %s, got %s", want, got.String())
}
