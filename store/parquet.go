package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/querylab/dataset"
)

// Table file names inside a dataset directory.
const (
	CustomersFile = "customers.parquet"
	OrdersFile    = "orders.parquet"
	ProductsFile  = "products.parquet"
	SuppliersFile = "suppliers.parquet"
)

// Files lists the table files in the order they are read and described.
var Files = []string{CustomersFile, OrdersFile, ProductsFile, SuppliersFile}

type customerRow struct {
	ID          string `parquet:"id"`
	CompanyName string `parquet:"company_name"`
	City        string `parquet:"city"`
	Country     string `parquet:"country"`
	Region      string `parquet:"region,optional"`
	PostalCode  string `parquet:"postal_code,optional"`
	Phone       string `parquet:"phone,optional"`
}

type orderRow struct {
	ID         int64  `parquet:"id"`
	CustomerID string `parquet:"customer_id"`
	Date       string `parquet:"date"`
	Total      string `parquet:"total"`
}

type productRow struct {
	ID           int64  `parquet:"id"`
	Name         string `parquet:"name"`
	Category     string `parquet:"category"`
	UnitPrice    string `parquet:"unit_price"`
	UnitsInStock int64  `parquet:"units_in_stock"`
}

type supplierRow struct {
	ID      int64  `parquet:"id"`
	Name    string `parquet:"name"`
	City    string `parquet:"city"`
	Country string `parquet:"country"`
}

// ReadDataset loads a dataset directory written by WriteDataset.
//
// All four table files must exist. Orders are attached to their customers in
// file order; an order for an unknown customer is an error.
func ReadDataset(dir string) (*dataset.Dataset, error) {
	customerRows, err := readRows[customerRow](filepath.Join(dir, CustomersFile))
	if err != nil {
		return nil, err
	}
	orderRows, err := readRows[orderRow](filepath.Join(dir, OrdersFile))
	if err != nil {
		return nil, err
	}
	productRows, err := readRows[productRow](filepath.Join(dir, ProductsFile))
	if err != nil {
		return nil, err
	}
	supplierRows, err := readRows[supplierRow](filepath.Join(dir, SuppliersFile))
	if err != nil {
		return nil, err
	}

	customers := make([]dataset.Customer, 0, len(customerRows))
	for _, r := range customerRows {
		customers = append(customers, dataset.Customer{
			ID:          r.ID,
			CompanyName: r.CompanyName,
			City:        r.City,
			Country:     r.Country,
			Region:      r.Region,
			PostalCode:  r.PostalCode,
			Phone:       r.Phone,
		})
	}

	orders := make([]dataset.Order, 0, len(orderRows))
	for _, r := range orderRows {
		date, err := dataset.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("%s: order %d: %w", OrdersFile, r.ID, err)
		}
		total, err := dataset.ParseAmount(r.Total)
		if err != nil {
			return nil, fmt.Errorf("%s: order %d: %w", OrdersFile, r.ID, err)
		}
		orders = append(orders, dataset.Order{
			ID:         int(r.ID),
			CustomerID: r.CustomerID,
			Date:       date,
			Total:      total,
		})
	}

	products := make([]dataset.Product, 0, len(productRows))
	for _, r := range productRows {
		price, err := dataset.ParseAmount(r.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("%s: product %d: %w", ProductsFile, r.ID, err)
		}
		if err := dataset.CheckStock(int(r.UnitsInStock)); err != nil {
			return nil, fmt.Errorf("%s: product %d: %w", ProductsFile, r.ID, err)
		}
		products = append(products, dataset.Product{
			ID:           int(r.ID),
			Name:         r.Name,
			Category:     r.Category,
			UnitPrice:    price,
			UnitsInStock: int(r.UnitsInStock),
		})
	}

	suppliers := make([]dataset.Supplier, 0, len(supplierRows))
	for _, r := range supplierRows {
		suppliers = append(suppliers, dataset.Supplier{
			ID:      int(r.ID),
			Name:    r.Name,
			City:    r.City,
			Country: r.Country,
		})
	}

	ds, err := dataset.Assemble(customers, orders, products, suppliers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return ds, nil
}

// WriteDataset writes ds as parquet table files into dir, creating dir if
// needed and replacing existing table files.
func WriteDataset(dir string, ds *dataset.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	customers := make([]customerRow, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		customers = append(customers, customerRow{
			ID:          c.ID,
			CompanyName: c.CompanyName,
			City:        c.City,
			Country:     c.Country,
			Region:      c.Region,
			PostalCode:  c.PostalCode,
			Phone:       c.Phone,
		})
	}

	var orders []orderRow
	for _, o := range ds.Orders() {
		orders = append(orders, orderRow{
			ID:         int64(o.ID),
			CustomerID: o.CustomerID,
			Date:       o.Date.Format(dataset.DateLayout),
			Total:      o.Total.String(),
		})
	}

	products := make([]productRow, 0, len(ds.Products))
	for _, p := range ds.Products {
		products = append(products, productRow{
			ID:           int64(p.ID),
			Name:         p.Name,
			Category:     p.Category,
			UnitPrice:    p.UnitPrice.String(),
			UnitsInStock: int64(p.UnitsInStock),
		})
	}

	suppliers := make([]supplierRow, 0, len(ds.Suppliers))
	for _, s := range ds.Suppliers {
		suppliers = append(suppliers, supplierRow{
			ID:      int64(s.ID),
			Name:    s.Name,
			City:    s.City,
			Country: s.Country,
		})
	}

	if err := writeRows(filepath.Join(dir, CustomersFile), customers); err != nil {
		return err
	}
	if err := writeRows(filepath.Join(dir, OrdersFile), orders); err != nil {
		return err
	}
	if err := writeRows(filepath.Join(dir, ProductsFile), products); err != nil {
		return err
	}
	return writeRows(filepath.Join(dir, SuppliersFile), suppliers)
}

// openParquet opens path as a parquet file. The caller closes the returned
// OS file.
func openParquet(path string) (*os.File, *parquet.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("failed to open parquet file %s: %w", filepath.Base(path), err)
	}

	return file, pqFile, nil
}

// readRows reads every row of a parquet file into T, matching columns by
// their parquet tag.
func readRows[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	rows, err := parquet.Read[T](file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func writeRows[T any](path string, rows []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := writer.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to close writer for %s: %w", filepath.Base(path), err)
	}
	return file.Close()
}
