package dataset

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Money is the arithmetic context for totals, prices and derived amounts.
var Money = apd.BaseContext.WithPrecision(34)

var (
	// ErrInvalidAmount is returned for amounts that are not finite decimals,
	// or negative where only non-negative amounts make sense.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidStock is returned for a negative units-in-stock count.
	ErrInvalidStock = errors.New("invalid units in stock")
)

// ParseMoney parses a finite decimal amount such as "814.50". NaN and
// Infinity are rejected.
func ParseMoney(s string) (apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return apd.Decimal{}, fmt.Errorf("%w %q: %w", ErrInvalidAmount, s, err)
	}
	if d.Form != apd.Finite {
		return apd.Decimal{}, fmt.Errorf("%w %q: not a finite number", ErrInvalidAmount, s)
	}
	return *d, nil
}

// ParseAmount parses an order total or unit price. These are never negative.
func ParseAmount(s string) (apd.Decimal, error) {
	d, err := ParseMoney(s)
	if err != nil {
		return apd.Decimal{}, err
	}
	if d.Sign() < 0 {
		return apd.Decimal{}, fmt.Errorf("%w %q: negative", ErrInvalidAmount, s)
	}
	return d, nil
}

// CheckStock rejects a negative units-in-stock count.
func CheckStock(units int) error {
	if units < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStock, units)
	}
	return nil
}

// MustMoney is ParseMoney for literals known to be valid. It panics otherwise.
func MustMoney(s string) apd.Decimal {
	d, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return d
}
