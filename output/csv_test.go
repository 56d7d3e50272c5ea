package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readCSV splits off the title comment and parses the remaining records.
func readCSV(t *testing.T, out string) (string, [][]string) {
	t.Helper()
	title, body, found := strings.Cut(out, "\n")
	require.True(t, found, "no title line in %q", out)

	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	return title, records
}

func TestCSVFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		rs        ResultSet
		wantLines int
	}{
		{
			name:      "empty rows keep header",
			rs:        ResultSet{Title: "empty", Columns: []string{"id", "name"}},
			wantLines: 1,
		},
		{
			name: "single row",
			rs: ResultSet{Title: "one", Columns: []string{"id", "name"}, Rows: []map[string]interface{}{
				{"id": "ALFKI", "name": "Alfreds Futterkiste"},
			}},
			wantLines: 2,
		},
		{
			name: "multiple rows",
			rs: ResultSet{Title: "two", Columns: []string{"id"}, Rows: []map[string]interface{}{
				{"id": "ALFKI"},
				{"id": "ANATR"},
			}},
			wantLines: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewCSVFormatter(&buf).Format(tt.rs))

			title, records := readCSV(t, buf.String())
			assert.Equal(t, "# "+tt.rs.Title, title)
			assert.Len(t, records, tt.wantLines)
			assert.Equal(t, tt.rs.Columns, records[0])
		})
	}
}

func TestCSVFormatter_ColumnOrder(t *testing.T) {
	rs := ResultSet{
		Title:   "order",
		Columns: []string{"z_last", "a_first", "m_middle"},
		Rows:    []map[string]interface{}{{"z_last": "1", "a_first": "2", "m_middle": "3"}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(rs))

	_, records := readCSV(t, buf.String())
	assert.Equal(t, []string{"z_last", "a_first", "m_middle"}, records[0])
	assert.Equal(t, []string{"1", "2", "3"}, records[1])
}

func TestCSVFormatter_TypeFormatting(t *testing.T) {
	rs := ResultSet{
		Title:   "types",
		Columns: []string{"string", "int", "float", "bool", "decimal", "nil", "missing"},
		Rows: []map[string]interface{}{{
			"string":  "alice",
			"int":     42,
			"float":   1.5,
			"bool":    true,
			"decimal": decimal(t, "6089.90"),
			"nil":     nil,
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(rs))

	_, records := readCSV(t, buf.String())
	require.Len(t, records, 2)
	assert.Equal(t, []string{"alice", "42", "1.5", "true", "6089.90", "", ""}, records[1])
}

func TestCSVFormatter_Sanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
		{"|pipe", "'|pipe"},
		{"=it's", "'=it''s"},
		{"(171) 555-7788", "(171) 555-7788"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.input))
		})
	}
}

func TestCSVFormatter_NegativeDecimalIsNotSanitized(t *testing.T) {
	assert.Equal(t, "-5.00", formatValue(decimal(t, "-5.00")))
}
