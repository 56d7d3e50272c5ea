// Package config loads the tunable constants of the query catalog.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/apd/v3"
	"gopkg.in/yaml.v3"

	"github.com/vegasq/querylab/dataset"
	"github.com/vegasq/querylab/query"
)

// Config holds the parameters of the catalog queries.
type Config struct {
	// TurnoverThresholds produce one turnover result set each.
	TurnoverThresholds []apd.Decimal
	// LargeOrderAmount is the single-order amount a customer must exceed.
	LargeOrderAmount apd.Decimal
	PriceTiers       query.Breakpoints
}

// file is the YAML shape. Amounts are kept as YAML scalars and parsed as
// decimals, so "19.99" is never rounded through a float.
type file struct {
	TurnoverThresholds []string `yaml:"turnover_thresholds"`
	LargeOrderAmount   *string  `yaml:"large_order_amount"`
	PriceTiers         *struct {
		Low  *string `yaml:"low"`
		High *string `yaml:"high"`
	} `yaml:"price_tiers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TurnoverThresholds: []apd.Decimal{
			dataset.MustMoney("10000"),
			dataset.MustMoney("50000"),
			dataset.MustMoney("100000"),
		},
		LargeOrderAmount: dataset.MustMoney("1000"),
		PriceTiers:       query.DefaultBreakpoints(),
	}
}

// Load reads a YAML file and overlays it on Default. An empty path returns
// the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := f.overlay(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (f *file) overlay(cfg *Config) error {
	if f.TurnoverThresholds != nil {
		cfg.TurnoverThresholds = nil
		for _, s := range f.TurnoverThresholds {
			d, err := dataset.ParseMoney(s)
			if err != nil {
				return fmt.Errorf("turnover_thresholds: %w", err)
			}
			cfg.TurnoverThresholds = append(cfg.TurnoverThresholds, d)
		}
	}

	if f.LargeOrderAmount != nil {
		d, err := dataset.ParseMoney(*f.LargeOrderAmount)
		if err != nil {
			return fmt.Errorf("large_order_amount: %w", err)
		}
		cfg.LargeOrderAmount = d
	}

	if f.PriceTiers != nil {
		if f.PriceTiers.Low != nil {
			d, err := dataset.ParseMoney(*f.PriceTiers.Low)
			if err != nil {
				return fmt.Errorf("price_tiers.low: %w", err)
			}
			cfg.PriceTiers.Low = d
		}
		if f.PriceTiers.High != nil {
			d, err := dataset.ParseMoney(*f.PriceTiers.High)
			if err != nil {
				return fmt.Errorf("price_tiers.high: %w", err)
			}
			cfg.PriceTiers.High = d
		}
	}

	return nil
}

// Validate checks that at least one turnover threshold is set, that every
// amount is finite and that the price tier breakpoints are usable.
func (c Config) Validate() error {
	if len(c.TurnoverThresholds) == 0 {
		return errors.New("turnover_thresholds must not be empty")
	}
	for i := range c.TurnoverThresholds {
		if c.TurnoverThresholds[i].Form != apd.Finite {
			return fmt.Errorf("turnover_thresholds[%d] must be a finite number, got %s", i, c.TurnoverThresholds[i].String())
		}
	}
	if c.LargeOrderAmount.Form != apd.Finite {
		return fmt.Errorf("large_order_amount must be a finite number, got %s", c.LargeOrderAmount.String())
	}
	if err := c.PriceTiers.Validate(); err != nil {
		return fmt.Errorf("price_tiers: %w", err)
	}
	return nil
}
