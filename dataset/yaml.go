package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// document is the YAML shape of a dataset. Amounts and dates are decoded as
// text so that decimals keep their exact digits.
type document struct {
	Customers []customerDoc `yaml:"customers"`
	Products  []productDoc  `yaml:"products"`
	Suppliers []supplierDoc `yaml:"suppliers"`
}

type customerDoc struct {
	ID          string     `yaml:"id"`
	CompanyName string     `yaml:"company_name"`
	City        string     `yaml:"city"`
	Country     string     `yaml:"country"`
	Region      string     `yaml:"region,omitempty"`
	PostalCode  string     `yaml:"postal_code,omitempty"`
	Phone       string     `yaml:"phone,omitempty"`
	Orders      []orderDoc `yaml:"orders,omitempty"`
}

type orderDoc struct {
	ID    int    `yaml:"id"`
	Date  string `yaml:"date"`
	Total string `yaml:"total"`
}

type productDoc struct {
	ID           int    `yaml:"id"`
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	UnitPrice    string `yaml:"unit_price"`
	UnitsInStock int    `yaml:"units_in_stock"`
}

type supplierDoc struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

// LoadSample returns the embedded sample dataset.
func LoadSample() (*Dataset, error) {
	ds, err := LoadYAML(sampleYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded sample: %w", err)
	}
	return ds, nil
}

// LoadYAMLFile reads a dataset from a YAML file.
func LoadYAMLFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	ds, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// LoadYAML decodes a dataset document.
//
// Unknown fields are rejected so that typos in hand-written datasets surface
// instead of silently producing empty values.
func LoadYAML(data []byte) (*Dataset, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return doc.toDataset()
}

func (doc *document) toDataset() (*Dataset, error) {
	ds := &Dataset{
		Customers: make([]Customer, 0, len(doc.Customers)),
		Products:  make([]Product, 0, len(doc.Products)),
		Suppliers: make([]Supplier, 0, len(doc.Suppliers)),
	}

	seen := make(map[string]bool, len(doc.Customers))
	for _, cd := range doc.Customers {
		if seen[cd.ID] {
			return nil, fmt.Errorf("duplicate customer id %q", cd.ID)
		}
		seen[cd.ID] = true

		c := Customer{
			ID:          cd.ID,
			CompanyName: cd.CompanyName,
			City:        cd.City,
			Country:     cd.Country,
			Region:      cd.Region,
			PostalCode:  cd.PostalCode,
			Phone:       cd.Phone,
		}
		for _, od := range cd.Orders {
			date, err := ParseDate(od.Date)
			if err != nil {
				return nil, fmt.Errorf("customer %s order %d: %w", cd.ID, od.ID, err)
			}
			total, err := ParseAmount(od.Total)
			if err != nil {
				return nil, fmt.Errorf("customer %s order %d: %w", cd.ID, od.ID, err)
			}
			c.Orders = append(c.Orders, Order{
				ID:         od.ID,
				CustomerID: cd.ID,
				Date:       date,
				Total:      total,
			})
		}
		ds.Customers = append(ds.Customers, c)
	}

	for _, pd := range doc.Products {
		price, err := ParseAmount(pd.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", pd.ID, err)
		}
		if err := CheckStock(pd.UnitsInStock); err != nil {
			return nil, fmt.Errorf("product %d: %w", pd.ID, err)
		}
		ds.Products = append(ds.Products, Product{
			ID:           pd.ID,
			Name:         pd.Name,
			Category:     pd.Category,
			UnitPrice:    price,
			UnitsInStock: pd.UnitsInStock,
		})
	}

	for _, sd := range doc.Suppliers {
		ds.Suppliers = append(ds.Suppliers, Supplier(sd))
	}

	return ds, nil
}
