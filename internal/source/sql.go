package source

import (
	"context"
	"fmt"

	"github.com/jamesrr39/goutil/logpkg"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vegasq/querylab/dataset"
)

// schema works on both SQLite and PostgreSQL. Amounts are stored as text so
// they keep their exact digits; NUMERIC columns in an existing database read
// just as well.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id TEXT PRIMARY KEY,
	company_name TEXT NOT NULL,
	city TEXT NOT NULL,
	country TEXT NOT NULL,
	region TEXT,
	postal_code TEXT,
	phone TEXT
);

CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY,
	customer_id TEXT NOT NULL REFERENCES customers(id),
	order_date TEXT NOT NULL,
	total TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	unit_price TEXT NOT NULL,
	units_in_stock INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS suppliers (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	city TEXT NOT NULL,
	country TEXT NOT NULL
);`

type customerRow struct {
	ID          string `db:"id"`
	CompanyName string `db:"company_name"`
	City        string `db:"city"`
	Country     string `db:"country"`
	Region      string `db:"region"`
	PostalCode  string `db:"postal_code"`
	Phone       string `db:"phone"`
}

type orderRow struct {
	ID         int    `db:"id"`
	CustomerID string `db:"customer_id"`
	Date       string `db:"order_date"`
	Total      string `db:"total"`
}

type productRow struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	Category     string `db:"category"`
	UnitPrice    string `db:"unit_price"`
	UnitsInStock int    `db:"units_in_stock"`
}

type supplierRow struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Country string `db:"country"`
}

// loadSQL reads the four tables, each ordered by primary key.
func loadSQL(ctx context.Context, driver, dsn string, logger *logpkg.Logger) (*dataset.Dataset, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	defer func() { _ = db.Close() }()

	var customers []customerRow
	err = db.SelectContext(ctx, &customers, `
		SELECT id, company_name, city, country,
			COALESCE(region, '') AS region,
			COALESCE(postal_code, '') AS postal_code,
			COALESCE(phone, '') AS phone
		FROM customers
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select customers: %w", err)
	}

	var orders []orderRow
	err = db.SelectContext(ctx, &orders, `
		SELECT id, customer_id, order_date, CAST(total AS TEXT) AS total
		FROM orders
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	var products []productRow
	err = db.SelectContext(ctx, &products, `
		SELECT id, name, category, CAST(unit_price AS TEXT) AS unit_price, units_in_stock
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	var suppliers []supplierRow
	err = db.SelectContext(ctx, &suppliers, `
		SELECT id, name, city, country
		FROM suppliers
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select suppliers: %w", err)
	}

	logger.Debug("selected %d customer rows and %d order rows via %s", len(customers), len(orders), driver)

	return toDataset(customers, orders, products, suppliers)
}

func toDataset(customerRows []customerRow, orderRows []orderRow, productRows []productRow, supplierRows []supplierRow) (*dataset.Dataset, error) {
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
			return nil, fmt.Errorf("order %d: %w", r.ID, err)
		}
		total, err := dataset.ParseAmount(r.Total)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", r.ID, err)
		}
		orders = append(orders, dataset.Order{ID: r.ID, CustomerID: r.CustomerID, Date: date, Total: total})
	}

	products := make([]dataset.Product, 0, len(productRows))
	for _, r := range productRows {
		price, err := dataset.ParseAmount(r.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", r.ID, err)
		}
		if err := dataset.CheckStock(r.UnitsInStock); err != nil {
			return nil, fmt.Errorf("product %d: %w", r.ID, err)
		}
		products = append(products, dataset.Product{
			ID:           r.ID,
			Name:         r.Name,
			Category:     r.Category,
			UnitPrice:    price,
			UnitsInStock: r.UnitsInStock,
		})
	}

	suppliers := make([]dataset.Supplier, 0, len(supplierRows))
	for _, r := range supplierRows {
		suppliers = append(suppliers, dataset.Supplier(r))
	}

	return dataset.Assemble(customers, orders, products, suppliers)
}

// saveSQL creates the tables when missing and inserts ds in one transaction.
func saveSQL(ctx context.Context, driver, dsn string, ds *dataset.Dataset, logger *logpkg.Logger) error {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range ds.Customers {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO customers (id, company_name, city, country, region, postal_code, phone)
			VALUES (:id, :company_name, :city, :country, :region, :postal_code, :phone)`,
			customerRow{
				ID:          c.ID,
				CompanyName: c.CompanyName,
				City:        c.City,
				Country:     c.Country,
				Region:      c.Region,
				PostalCode:  c.PostalCode,
				Phone:       c.Phone,
			})
		if err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.ID, err)
		}
	}

	for _, o := range ds.Orders() {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO orders (id, customer_id, order_date, total)
			VALUES (:id, :customer_id, :order_date, :total)`,
			orderRow{
				ID:         o.ID,
				CustomerID: o.CustomerID,
				Date:       o.Date.Format(dataset.DateLayout),
				Total:      o.Total.String(),
			})
		if err != nil {
			return fmt.Errorf("failed to insert order %d: %w", o.ID, err)
		}
	}

	for _, p := range ds.Products {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO products (id, name, category, unit_price, units_in_stock)
			VALUES (:id, :name, :category, :unit_price, :units_in_stock)`,
			productRow{
				ID:           p.ID,
				Name:         p.Name,
				Category:     p.Category,
				UnitPrice:    p.UnitPrice.String(),
				UnitsInStock: p.UnitsInStock,
			})
		if err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}

	for _, s := range ds.Suppliers {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO suppliers (id, name, city, country)
			VALUES (:id, :name, :city, :country)`,
			supplierRow(s))
		if err != nil {
			return fmt.Errorf("failed to insert supplier %d: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logger.Debug("inserted %d customers and %d orders via %s", len(ds.Customers), ds.OrderCount(), driver)
	return nil
}
