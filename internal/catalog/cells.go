package catalog

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/vegasq/querylab/dataset"
)

// decimalCell returns a private copy of d, so cells never alias dataset
// values.
func decimalCell(d apd.Decimal) *apd.Decimal {
	var c apd.Decimal
	c.Set(&d)
	return &c
}

// roundedCell returns d rounded half up to two decimal places.
func roundedCell(d apd.Decimal) (*apd.Decimal, error) {
	var c apd.Decimal
	if _, err := dataset.Money.Quantize(&c, &d, -2); err != nil {
		return nil, fmt.Errorf("failed to round %s: %w", d.String(), err)
	}
	return &c, nil
}

func dateCell(t time.Time) string {
	return t.Format(dataset.DateLayout)
}
