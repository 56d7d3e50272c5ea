package query

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/vegasq/querylab/dataset"
)

// filter returns the items for which keep returns true, in input order.
func filter[T any](items []T, keep func(T) bool) []T {
	var kept []T
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// group is one key of an ordered group-by with its members.
type group[K comparable, V any] struct {
	key     K
	members []V
}

// groupBy collects items under their key. Groups appear in order of first
// occurrence of their key and members keep input order; callers sort the
// groups explicitly when they need another order.
func groupBy[K comparable, V any](items []V, keyOf func(V) K) []group[K, V] {
	index := make(map[K]int)
	var groups []group[K, V]

	for _, item := range items {
		key := keyOf(item)
		if i, exists := index[key]; exists {
			groups[i].members = append(groups[i].members, item)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, group[K, V]{key: key, members: []V{item}})
	}

	return groups
}

// add returns x + y. The Money context only fails on exponent overflow, which
// no loaded amount can reach.
func add(x, y *apd.Decimal) apd.Decimal {
	var sum apd.Decimal
	if _, err := dataset.Money.Add(&sum, x, y); err != nil {
		panic(fmt.Sprintf("decimal add %s + %s: %v", x, y, err))
	}
	return sum
}

// mul returns x * y.
func mul(x, y *apd.Decimal) apd.Decimal {
	var product apd.Decimal
	if _, err := dataset.Money.Mul(&product, x, y); err != nil {
		panic(fmt.Sprintf("decimal mul %s * %s: %v", x, y, err))
	}
	return product
}

// mean returns sum / n for n > 0.
func mean(sum *apd.Decimal, n int) apd.Decimal {
	var avg apd.Decimal
	if _, err := dataset.Money.Quo(&avg, sum, apd.New(int64(n), 0)); err != nil {
		panic(fmt.Sprintf("decimal mean %s / %d: %v", sum, n, err))
	}
	return avg
}

// sumTotals adds up the totals of orders.
func sumTotals(orders []dataset.Order) apd.Decimal {
	var sum apd.Decimal
	for i := range orders {
		sum = add(&sum, &orders[i].Total)
	}
	return sum
}
