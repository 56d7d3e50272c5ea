package store

import (
	"fmt"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

// SchemaInfo represents metadata about a single column in a Parquet file.
type SchemaInfo struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	Optional     bool   `json:"optional"`
}

// TableSchema describes one table file of a dataset directory.
type TableSchema struct {
	File    string
	Rows    int64
	Columns []SchemaInfo
}

// DescribeDataset extracts the schema of every table file in dir, in Files
// order.
func DescribeDataset(dir string) ([]TableSchema, error) {
	tables := make([]TableSchema, 0, len(Files))
	for _, name := range Files {
		table, err := describeFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func describeFile(path string) (TableSchema, error) {
	file, pqFile, err := openParquet(path)
	if err != nil {
		return TableSchema{}, err
	}
	defer func() { _ = file.Close() }()

	table := TableSchema{File: filepath.Base(path), Rows: pqFile.NumRows()}
	for _, field := range pqFile.Schema().Fields() {
		info, err := extractFieldInfo(field)
		if err != nil {
			return TableSchema{}, fmt.Errorf("%s: %w", table.File, err)
		}
		table.Columns = append(table.Columns, info)
	}
	return table, nil
}

// extractFieldInfo describes a leaf column. Dataset tables are flat, so a
// group field means the file was not written by WriteDataset.
func extractFieldInfo(field parquet.Field) (SchemaInfo, error) {
	if field.Type() == nil || len(field.Fields()) > 0 {
		return SchemaInfo{}, fmt.Errorf("column %s: nested columns are not supported", field.Name())
	}

	info := SchemaInfo{
		Name:         field.Name(),
		PhysicalType: getPhysicalType(field),
		Optional:     field.Optional(),
	}
	if lt := field.Type().LogicalType(); lt != nil {
		info.LogicalType = lt.String()
	}
	info.Type = getUserFriendlyType(info)

	return info, nil
}

// getPhysicalType returns the physical type name of a Parquet field.
func getPhysicalType(field parquet.Field) string {
	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// getUserFriendlyType prefers the logical type for strings and falls back to
// the physical type.
func getUserFriendlyType(info SchemaInfo) string {
	switch info.LogicalType {
	case "STRING", "UTF8":
		return "STRING"
	case "DATE", "TIMESTAMP", "DECIMAL":
		return info.LogicalType
	}
	return info.PhysicalType
}
