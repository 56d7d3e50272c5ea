package catalog

import (
	"io"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/jamesrr39/goutil/logpkg"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/querylab/dataset"
	"github.com/vegasq/querylab/internal/config"
	"github.com/vegasq/querylab/output"
	"github.com/vegasq/querylab/query"
)

func testLogger() *logpkg.Logger {
	return logpkg.NewLogger(io.Discard, logpkg.LogLevelDebug)
}

func date(s string) time.Time {
	d, err := dataset.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// tinyDataset is small enough to check every rendered row by hand.
func tinyDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Customers: []dataset.Customer{
			{
				ID: "ALPHA", CompanyName: "Alpha", City: "Berlin", Country: "Germany",
				PostalCode: "12209", Phone: "030-1",
				Orders: []dataset.Order{
					{ID: 1, CustomerID: "ALPHA", Date: date("1997-01-10"), Total: dataset.MustMoney("600.00")},
					{ID: 2, CustomerID: "ALPHA", Date: date("1997-03-05"), Total: dataset.MustMoney("1500.50")},
				},
			},
			{
				ID: "BETA", CompanyName: "Beta", City: "Madrid", Country: "Spain",
				PostalCode: "28023", Phone: "(91) 555",
			},
			{
				ID: "GAMMA", CompanyName: "Gamma", City: "Berlin", Country: "Germany",
				Region: "BE", PostalCode: "10115", Phone: "(030) 2",
				Orders: []dataset.Order{
					{ID: 3, CustomerID: "GAMMA", Date: date("1996-12-01"), Total: dataset.MustMoney("200")},
				},
			},
		},
		Products: []dataset.Product{
			{ID: 1, Name: "Chai", Category: "Beverages", UnitPrice: dataset.MustMoney("18.00"), UnitsInStock: 39},
			{ID: 2, Name: "Tofu", Category: "Produce", UnitPrice: dataset.MustMoney("23.25"), UnitsInStock: 35},
			{ID: 3, Name: "Syrup", Category: "Condiments", UnitPrice: dataset.MustMoney("10.00"), UnitsInStock: 13},
		},
		Suppliers: []dataset.Supplier{
			{ID: 1, Name: "Berlin Foods", City: "Berlin", Country: "Germany"},
			{ID: 2, Name: "Oslo Fish", City: "Oslo", Country: "Norway"},
		},
	}
}

func tinyConfig() config.Config {
	return config.Config{
		TurnoverThresholds: []apd.Decimal{dataset.MustMoney("1000")},
		LargeOrderAmount:   dataset.MustMoney("1000"),
		PriceTiers:         query.DefaultBreakpoints(),
	}
}

// recorder is a Formatter that keeps the result sets it is given.
type recorder struct {
	sets []output.ResultSet
	err  error
}

func (r *recorder) Format(rs output.ResultSet) error {
	if r.err != nil {
		return r.err
	}
	r.sets = append(r.sets, rs)
	return nil
}

func (r *recorder) SetOutput(io.Writer) {}

func runEntry(t *testing.T, name string, ds *dataset.Dataset, cfg config.Config) []output.ResultSet {
	t.Helper()
	e, ok := Lookup(name)
	require.True(t, ok, name)
	sets, err := e.Run(ds, cfg)
	require.NoError(t, err)
	return sets
}
