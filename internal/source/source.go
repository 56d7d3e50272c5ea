// Package source resolves a --source argument to a loaded dataset.
//
// A source is one of:
//
//	""                     the embedded sample dataset
//	shop.yaml, shop.yml    a YAML dataset file
//	shop/                  a directory written by store.WriteDataset
//	sqlite:shop.db         a SQLite database
//	postgres://...         a PostgreSQL database (postgresql:// also works)
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesrr39/goutil/logpkg"

	"github.com/vegasq/querylab/dataset"
	"github.com/vegasq/querylab/store"
)

// ErrUnknownSource is returned when a source argument matches no known kind.
var ErrUnknownSource = errors.New("unknown source")

const sqlitePrefix = "sqlite:"

// Open loads the dataset named by spec.
func Open(ctx context.Context, spec string, logger *logpkg.Logger) (*dataset.Dataset, error) {
	ds, err := open(ctx, spec, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %d customers, %d orders, %d products, %d suppliers from %s",
		len(ds.Customers), ds.OrderCount(), len(ds.Products), len(ds.Suppliers), describe(spec))
	return ds, nil
}

func open(ctx context.Context, spec string, logger *logpkg.Logger) (*dataset.Dataset, error) {
	switch {
	case spec == "":
		return dataset.LoadSample()
	case strings.HasPrefix(spec, sqlitePrefix):
		path := strings.TrimPrefix(spec, sqlitePrefix)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return loadSQL(ctx, "sqlite3", path, logger)
	case isPostgres(spec):
		return loadSQL(ctx, "postgres", spec, logger)
	}

	switch strings.ToLower(filepath.Ext(spec)) {
	case ".yaml", ".yml":
		return dataset.LoadYAMLFile(spec)
	}

	info, err := os.Stat(spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownSource, spec, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w %q: expected a .yaml file, a parquet directory, sqlite:<path> or postgres://", ErrUnknownSource, spec)
	}
	return store.ReadDataset(spec)
}

// Save writes ds to dest. SQL destinations get their tables created when
// missing; any other destination is treated as a parquet directory.
func Save(ctx context.Context, dest string, ds *dataset.Dataset, logger *logpkg.Logger) error {
	switch {
	case dest == "":
		return fmt.Errorf("%w: empty destination", ErrUnknownSource)
	case strings.HasPrefix(dest, sqlitePrefix):
		return saveSQL(ctx, "sqlite3", strings.TrimPrefix(dest, sqlitePrefix), ds, logger)
	case isPostgres(dest):
		return saveSQL(ctx, "postgres", dest, ds, logger)
	}

	logger.Debug("writing parquet dataset to %s", dest)
	return store.WriteDataset(dest, ds)
}

func isPostgres(spec string) bool {
	return strings.HasPrefix(spec, "postgres://") || strings.HasPrefix(spec, "postgresql://")
}

// describe names a source for log lines without leaking credentials.
func describe(spec string) string {
	switch {
	case spec == "":
		return "embedded sample"
	case isPostgres(spec):
		return "postgres database"
	}
	return spec
}
