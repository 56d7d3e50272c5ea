// Package store keeps a dataset on disk as a directory of Apache Parquet
// files, one file per table.
//
// # Layout
//
//	customers.parquet  id, company_name, city, country, region, postal_code, phone
//	orders.parquet     id, customer_id, date, total
//	products.parquet   id, name, category, unit_price, units_in_stock
//	suppliers.parquet  id, name, city, country
//
// Dates are stored as "YYYY-MM-DD" strings and amounts as decimal strings, so
// a round trip keeps every digit. Region, postal code and phone are optional
// columns; an empty value is written as null.
//
// # Basic Usage
//
//	if err := store.WriteDataset("shop", ds); err != nil {
//	    log.Fatal(err)
//	}
//
//	ds, err := store.ReadDataset("shop")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Schema Inspection
//
// DescribeDataset reports the columns and row count of every table file,
// using the same type names as the parquet metadata (STRING, INT64, ...).
package store
