package query

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/vegasq/querylab/dataset"
)

// ErrInvalidBreakpoints is returned for tier breakpoints that do not describe
// three ordered, non-negative price ranges.
var ErrInvalidBreakpoints = errors.New("invalid price tier breakpoints")

// Tier names a price range.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Tiers lists the tiers from cheapest to most expensive.
var Tiers = []Tier{TierLow, TierMedium, TierHigh}

// Breakpoints split prices into tiers:
//
//	low:    price <  Low
//	medium: Low  <= price < High
//	high:   price >= High
type Breakpoints struct {
	Low  apd.Decimal
	High apd.Decimal
}

// DefaultBreakpoints returns the 10 / 20 split.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Low:  *apd.New(10, 0),
		High: *apd.New(20, 0),
	}
}

// Validate rejects non-finite or negative breakpoints and Low > High.
// Low == High is accepted and leaves the medium tier empty.
func (b Breakpoints) Validate() error {
	for _, bp := range []struct {
		name  string
		value apd.Decimal
	}{
		{"low", b.Low},
		{"high", b.High},
	} {
		if bp.value.Form != apd.Finite {
			return fmt.Errorf("%w: %s breakpoint is %s", ErrInvalidBreakpoints, bp.name, bp.value.String())
		}
		if bp.value.Sign() < 0 {
			return fmt.Errorf("%w: %s breakpoint %s is negative", ErrInvalidBreakpoints, bp.name, bp.value.String())
		}
	}
	if b.Low.Cmp(&b.High) > 0 {
		return fmt.Errorf("%w: low %s is above high %s", ErrInvalidBreakpoints, b.Low.String(), b.High.String())
	}
	return nil
}

// Classify returns the tier of price.
func (b Breakpoints) Classify(price apd.Decimal) Tier {
	switch {
	case price.Cmp(&b.Low) < 0:
		return TierLow
	case price.Cmp(&b.High) < 0:
		return TierMedium
	default:
		return TierHigh
	}
}

// TieredProduct is a product listed under its price tier.
type TieredProduct struct {
	ProductID int
	Name      string
	UnitPrice apd.Decimal
}

// TierGroup is a tier with its products.
type TierGroup struct {
	Tier     Tier
	Products []TieredProduct
}

// ClassifyPrices partitions the products into the low, medium and high tiers.
//
// The result always holds the three tiers in that order, possibly empty, and
// every product appears in exactly one of them, in dataset order.
func ClassifyPrices(ds *dataset.Dataset, b Breakpoints) ([]TierGroup, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	members := make(map[Tier][]TieredProduct, len(Tiers))
	for _, p := range ds.Products {
		tier := b.Classify(p.UnitPrice)
		members[tier] = append(members[tier], TieredProduct{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
		})
	}

	result := make([]TierGroup, 0, len(Tiers))
	for _, tier := range Tiers {
		result = append(result, TierGroup{Tier: tier, Products: members[tier]})
	}
	return result, nil
}
