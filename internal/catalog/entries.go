package catalog

import (
	"fmt"
	"strings"

	"github.com/vegasq/querylab/dataset"
	"github.com/vegasq/querylab/internal/config"
	"github.com/vegasq/querylab/output"
	"github.com/vegasq/querylab/query"
)

type row = map[string]interface{}

func runTurnover(ds *dataset.Dataset, cfg config.Config) ([]output.ResultSet, error) {
	sets := make([]output.ResultSet, 0, len(cfg.TurnoverThresholds))
	for _, threshold := range cfg.TurnoverThresholds {
		rs := output.ResultSet{
			Title:   fmt.Sprintf("Customers with turnover above %s", threshold.String()),
			Columns: []string{"customer_id", "company_name", "turnover"},
		}
		for _, ct := range query.CustomersWithTurnover(ds, threshold) {
			rs.Rows = append(rs.Rows, row{
				"customer_id":  ct.Customer.ID,
				"company_name": ct.Customer.CompanyName,
				"turnover":     decimalCell(ct.Turnover),
			})
		}
		sets = append(sets, rs)
	}
	return sets, nil
}

func runLargeOrders(ds *dataset.Dataset, cfg config.Config) ([]output.ResultSet, error) {
	report := query.CustomersWithLargeOrder(ds, cfg.LargeOrderAmount)

	matches := output.ResultSet{
		Title:   fmt.Sprintf("Customers with an order above %s", report.Amount.String()),
		Columns: []string{"customer_id", "order_id", "order_date", "total"},
	}
	for _, m := range report.Matches {
		matches.Rows = append(matches.Rows, row{
			"customer_id": m.CustomerID,
			"order_id":    m.Order.ID,
			"order_date":  dateCell(m.Order.Date),
			"total":       decimalCell(m.Order.Total),
		})
	}

	total := output.ResultSet{
		Title:   fmt.Sprintf("Grand total of customers with an order above %s", report.Amount.String()),
		Columns: []string{"customers", "grand_total"},
		Rows: []map[string]interface{}{{
			"customers":   len(report.Matches),
			"grand_total": decimalCell(report.GrandTotal),
		}},
	}

	return []output.ResultSet{matches, total}, nil
}

func runContactGaps(ds *dataset.Dataset, _ config.Config) ([]output.ResultSet, error) {
	rs := output.ResultSet{
		Title:   "Customers with incomplete contact details",
		Columns: []string{"customer_id", "postal_code", "region", "phone", "reasons"},
	}
	for _, gap := range query.IncompleteContacts(ds) {
		reasons := make([]string, 0, len(gap.Reasons))
		for _, r := range gap.Reasons {
			reasons = append(reasons, string(r))
		}
		rs.Rows = append(rs.Rows, row{
			"customer_id": gap.CustomerID,
			"postal_code": gap.PostalCode,
			"region":      gap.Region,
			"phone":       gap.Phone,
			"reasons":     strings.Join(reasons, ", "),
		})
	}
	return []output.ResultSet{rs}, nil
}

func runCoLocatedSuppliers(ds *dataset.Dataset, _ config.Config) ([]output.ResultSet, error) {
	matches := query.CoLocatedSuppliers(ds)

	flat := output.ResultSet{
		Title:   "Customers and suppliers in the same city",
		Columns: []string{"customer_id", "supplier_id", "supplier_name", "city", "country"},
	}
	for _, m := range matches {
		flat.Rows = append(flat.Rows, row{
			"customer_id":   m.CustomerID,
			"supplier_id":   m.SupplierID,
			"supplier_name": m.SupplierName,
			"city":          m.City,
			"country":       m.Country,
		})
	}

	grouped := output.ResultSet{
		Title:   "Customers and suppliers grouped by location",
		Columns: []string{"country", "city", "customer_id", "supplier_name"},
	}
	for _, g := range query.GroupByLocation(matches) {
		for _, m := range g.Matches {
			grouped.Rows = append(grouped.Rows, row{
				"country":       g.Country,
				"city":          g.City,
				"customer_id":   m.CustomerID,
				"supplier_name": m.SupplierName,
			})
		}
	}

	return []output.ResultSet{flat, grouped}, nil
}

func runFirstOrderDates(ds *dataset.Dataset, _ config.Config) ([]output.ResultSet, error) {
	rs := output.ResultSet{
		Title:   "Date of each customer's first order",
		Columns: []string{"customer_id", "order_id", "first_order"},
	}
	for _, cs := range query.FirstOrderDates(ds) {
		rs.Rows = append(rs.Rows, row{
			"customer_id": cs.CustomerID,
			"order_id":    cs.OrderID,
			"first_order": dateCell(cs.Since),
		})
	}
	return []output.ResultSet{rs}, nil
}

func runCustomerRanking(ds *dataset.Dataset, _ config.Config) ([]output.ResultSet, error) {
	rs := output.ResultSet{
		Title:   "Customers by first order month, then turnover",
		Columns: []string{"rank", "customer_id", "year", "month", "turnover"},
	}
	for i, r := range query.RankCustomers(ds) {
		rs.Rows = append(rs.Rows, row{
			"rank":        i + 1,
			"customer_id": r.CustomerID,
			"year":        r.Year,
			"month":       int(r.Month),
			"turnover":    decimalCell(r.Turnover),
		})
	}
	return []output.ResultSet{rs}, nil
}

func runProductGroups(ds *dataset.Dataset, _ config.Config) ([]output.ResultSet, error) {
	rs := output.ResultSet{
		Title:   "Products by category and units in stock",
		Columns: []string{"category", "units_in_stock", "product_id", "product_name", "unit_price", "cost"},
	}
	for _, cg := range query.GroupProducts(ds) {
		for _, sg := range cg.Stock {
			for _, p := range sg.Products {
				rs.Rows = append(rs.Rows, row{
					"category":       cg.Category,
					"units_in_stock": sg.UnitsInStock,
					"product_id":     p.ProductID,
					"product_name":   p.Name,
					"unit_price":     decimalCell(p.UnitPrice),
					"cost":           decimalCell(p.Cost),
				})
			}
		}
	}
	return []output.ResultSet{rs}, nil
}

// runPriceTiers lists every tier. A tier without products gets one row with
// empty product cells so that it still shows up.
func runPriceTiers(ds *dataset.Dataset, cfg config.Config) ([]output.ResultSet, error) {
	groups, err := query.ClassifyPrices(ds, cfg.PriceTiers)
	if err != nil {
		return nil, err
	}

	rs := output.ResultSet{
		Title: fmt.Sprintf("Products by price tier (low < %s <= medium < %s <= high)",
			cfg.PriceTiers.Low.String(), cfg.PriceTiers.High.String()),
		Columns: []string{"tier", "product_id", "product_name", "unit_price"},
	}
	for _, g := range groups {
		if len(g.Products) == 0 {
			rs.Rows = append(rs.Rows, row{
				"tier":         string(g.Tier),
				"product_id":   nil,
				"product_name": nil,
				"unit_price":   nil,
			})
			continue
		}
		for _, p := range g.Products {
			rs.Rows = append(rs.Rows, row{
				"tier":         string(g.Tier),
				"product_id":   p.ProductID,
				"product_name": p.Name,
				"unit_price":   decimalCell(p.UnitPrice),
			})
		}
	}
	return []output.ResultSet{rs}, nil
}

func runCityStatistics(ds *dataset.Dataset, _ config.Config) ([]output.ResultSet, error) {
	stats := query.CityStatistics(ds)

	profitability := output.ResultSet{
		Title:   "Mean order total by city",
		Columns: []string{"city", "orders", "revenue", "profitability"},
	}
	intensity := output.ResultSet{
		Title:   "Orders per customer by city",
		Columns: []string{"city", "customers", "orders", "intensity"},
	}

	for _, s := range stats {
		var mean interface{}
		if s.HasOrders {
			rounded, err := roundedCell(s.Profitability)
			if err != nil {
				return nil, fmt.Errorf("city %s: %w", s.City, err)
			}
			mean = rounded
		}
		profitability.Rows = append(profitability.Rows, row{
			"city":          s.City,
			"orders":        s.Orders,
			"revenue":       decimalCell(s.Revenue),
			"profitability": mean,
		})

		intensity.Rows = append(intensity.Rows, row{
			"city":      s.City,
			"customers": s.Customers,
			"orders":    s.Orders,
			"intensity": s.Intensity,
		})
	}

	return []output.ResultSet{profitability, intensity}, nil
}

func runOrderVolume(ds *dataset.Dataset, _ config.Config) ([]output.ResultSet, error) {
	report := query.OrderVolume(ds)

	byMonth := output.ResultSet{
		Title:   "Orders per month of year",
		Columns: []string{"month", "month_name", "orders"},
	}
	for _, m := range report.ByMonth {
		byMonth.Rows = append(byMonth.Rows, row{
			"month":      int(m.Month),
			"month_name": m.Month.String(),
			"orders":     m.Count,
		})
	}

	byYear := output.ResultSet{
		Title:   "Orders per year",
		Columns: []string{"year", "orders"},
	}
	for _, y := range report.ByYear {
		byYear.Rows = append(byYear.Rows, row{
			"year":   y.Year,
			"orders": y.Count,
		})
	}

	byYearMonth := output.ResultSet{
		Title:   "Orders per year and month",
		Columns: []string{"year", "month", "month_name", "orders"},
	}
	for _, ym := range report.ByYearMonth {
		for _, m := range ym.Months {
			byYearMonth.Rows = append(byYearMonth.Rows, row{
				"year":       ym.Year,
				"month":      int(m.Month),
				"month_name": m.Month.String(),
				"orders":     m.Count,
			})
		}
	}

	return []output.ResultSet{byMonth, byYear, byYearMonth}, nil
}
