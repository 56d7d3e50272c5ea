// Package dataset defines the read-only records the query library works on.
//
// A Dataset holds customers (each owning its orders), products and suppliers.
// Values are built once by a loader and then shared by every query; nothing in
// this module mutates a Dataset after construction.
//
// # Loading
//
// The embedded sample is the default dataset:
//
//	ds, err := dataset.LoadSample()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Any YAML document with the same shape can be loaded from disk:
//
//	ds, err := dataset.LoadYAMLFile("shop.yaml")
//
// Parquet directories and SQL databases are read by the store package and by
// internal/source.
//
// # Money
//
// Order totals and unit prices are decimals (github.com/cockroachdb/apd/v3).
// Arithmetic on them goes through the Money context so that sums and means are
// exact up to 34 significant digits.
package dataset
