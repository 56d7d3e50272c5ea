package output

import "io"

// ResultSet is one titled table produced by a catalog entry.
//
// Columns fixes the column order for formats that need one; Rows hold the
// cell values keyed by column name. A nil cell means "no value".
type ResultSet struct {
	Title   string
	Columns []string
	Rows    []map[string]interface{}
}

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a result set in the target
// format and SetOutput to change the output destination. Format may be
// called once per result set on the same writer.
type Formatter interface {
	// Format writes one result set in the formatter's specific format
	Format(rs ResultSet) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
