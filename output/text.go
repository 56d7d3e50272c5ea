package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NoData is shown in text tables for cells without a value.
const NoData = "no data"

// TextFormatter renders each result set as a title line followed by an ASCII
// table. Decimals and floats are formatted for a language; integers are
// printed as plain digits.
type TextFormatter struct {
	writer  io.Writer
	printer *message.Printer
	// group and point are the language's digit group and decimal marks,
	// used to lay out decimals digit for digit.
	group string
	point string
}

// NewTextFormatter creates a text formatter. lang is a BCP 47 tag such as
// "en" or "de"; an unparsable tag falls back to English.
func NewTextFormatter(w io.Writer, lang string) *TextFormatter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	printer := message.NewPrinter(tag)
	group, point := separators(printer)
	return &TextFormatter{writer: w, printer: printer, group: group, point: point}
}

// separators reads the group and decimal marks off a formatted 1234.5.
// Languages whose digits are not ASCII fall back to "," and ".".
func separators(p *message.Printer) (group, point string) {
	s := p.Sprint(number.Decimal(1234.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	one := strings.Index(s, "1")
	hundreds := strings.Index(s, "234")
	five := strings.LastIndex(s, "5")
	if one < 0 || hundreds <= one || five <= hundreds+3 {
		return ",", "."
	}
	return s[one+1 : hundreds], s[hundreds+3 : five]
}

// SetOutput sets the output writer
func (t *TextFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the title and the rows as a table. An empty result set still
// gets its header.
func (t *TextFormatter) Format(rs ResultSet) error {
	if _, err := fmt.Fprintf(t.writer, "%s\n", rs.Title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(rs.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, row := range rs.Rows {
		cells := make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			cells[i] = t.cell(row[col])
		}
		table.Append(cells)
	}
	table.Render()

	_, err := fmt.Fprintln(t.writer)
	return err
}

func (t *TextFormatter) cell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return NoData
	case string:
		return val
	case *apd.Decimal:
		if val == nil {
			return NoData
		}
		return t.decimal(val)
	case int, int64:
		// Counts, years and ids: no grouping separators.
		return fmt.Sprintf("%d", val)
	case float64:
		return t.printer.Sprint(number.Decimal(val, number.MaxFractionDigits(2)))
	default:
		return fmt.Sprintf("%v", val)
	}
}

// decimal lays out the exact digits of d with the language's marks. The
// scale is kept, so 814.50 prints with two fraction digits.
func (t *TextFormatter) decimal(d *apd.Decimal) string {
	if d.Form != apd.Finite {
		return d.String()
	}

	digits := d.Text('f')
	var b strings.Builder
	if strings.HasPrefix(digits, "-") {
		b.WriteByte('-')
		digits = digits[1:]
	}

	whole, fraction, hasFraction := strings.Cut(digits, ".")
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(t.group)
		}
		b.WriteByte(whole[i])
	}
	if hasFraction {
		b.WriteString(t.point)
		b.WriteString(fraction)
	}
	return b.String()
}
