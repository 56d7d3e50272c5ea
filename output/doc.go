// Package output provides formatters for rendering query result sets.
//
// A ResultSet is a titled table: an ordered column list and rows represented
// as map[string]interface{}. Each formatter renders one result set per
// Format call, so several result sets can be written to the same stream.
//
// # Supported Formats
//
//   - Text: title line and an ASCII table, numbers localized by language tag
//   - JSON Lines: one JSON object per row, tagged with the result set title
//   - CSV: a "# title" comment line, header row in column order, records
//
// # Basic Usage
//
//	formatter := output.NewTextFormatter(os.Stdout, "en")
//	if err := formatter.Format(rs); err != nil {
//	    log.Fatal(err)
//	}
//
// # Type Handling
//
// Decimal cells are *apd.Decimal and keep their exact value in JSON (as a
// string) and CSV. Nil cells become null in JSON, an empty field in CSV and
// "no data" in text tables. CSV string cells are sanitized against formula
// injection.
package output
