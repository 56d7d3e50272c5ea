package output

import (
	"encoding/json"
	"io"
)

// QueryKey is the key under which JSON rows carry their result set title.
const QueryKey = "_query"

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line), each tagged
// with the result set title. Decimals are written as JSON strings so no
// precision is lost.
func (j *JSONFormatter) Format(rs ResultSet) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetEscapeHTML(false)

	for _, row := range rs.Rows {
		tagged := make(map[string]interface{}, len(row)+1)
		for k, v := range row {
			tagged[k] = v
		}
		tagged[QueryKey] = rs.Title

		if err := encoder.Encode(tagged); err != nil {
			return err
		}
	}
	return nil
}
