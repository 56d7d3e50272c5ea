package dataset

import (
	"errors"
	"fmt"
)

// ErrUnknownCustomer is returned when an order references a customer that is
// not part of the dataset.
var ErrUnknownCustomer = errors.New("order references unknown customer")

// Assemble attaches flat orders to their customers and returns the dataset.
//
// Sources that store orders in their own table (parquet, SQL) use this to
// rebuild the customer-owns-orders shape. Orders keep their relative order
// within each customer. Orders already present on the customers are kept
// ahead of the attached ones.
func Assemble(customers []Customer, orders []Order, products []Product, suppliers []Supplier) (*Dataset, error) {
	index := make(map[string]int, len(customers))
	for i, c := range customers {
		if _, exists := index[c.ID]; exists {
			return nil, fmt.Errorf("duplicate customer id %q", c.ID)
		}
		index[c.ID] = i
	}

	for _, o := range orders {
		i, ok := index[o.CustomerID]
		if !ok {
			return nil, fmt.Errorf("order %d: %w %q", o.ID, ErrUnknownCustomer, o.CustomerID)
		}
		customers[i].Orders = append(customers[i].Orders, o)
	}

	return &Dataset{
		Customers: customers,
		Products:  products,
		Suppliers: suppliers,
	}, nil
}
