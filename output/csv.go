package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a "# title" comment line, the header in column order and one
// record per row. The header is written even when there are no rows.
func (c *CSVFormatter) Format(rs ResultSet) error {
	if _, err := fmt.Fprintf(c.writer, "# %s\n", rs.Title); err != nil {
		return fmt.Errorf("failed to write CSV title: %w", err)
	}

	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(rs.Columns); err != nil {
		return err
	}

	for _, row := range rs.Rows {
		record := make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			record[i] = formatValue(row[col])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// formatValue converts a value to string for CSV output
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return sanitize(val)
	case *apd.Decimal:
		if val == nil {
			return ""
		}
		return val.String()
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// sanitize guards against CSV injection by prefixing characters that could
// trigger formula execution in spreadsheet applications.
func sanitize(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
