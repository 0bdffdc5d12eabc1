// Package output - Result formatting
// Renders calculation results as aligned key/value text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"thermo-calc/internal/errors"
)

// Format identifies an output format
type Format string

const (
	// FormatText is aligned key/value plain text
	FormatText Format = "text"
	// FormatJSON is indented JSON
	FormatJSON Format = "json"
)

// ParseFormat validates and normalizes a format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", errors.NotSupported(fmt.Sprintf("output format %q (supported: text, json)", name))
	}
}

// row is a single rendered line
type row struct {
	label string
	value string
	unit  string
}

// Table collects labelled values and renders them with aligned columns.
// Numeric values are rounded to the configured precision.
type Table struct {
	title     string
	precision int
	rows      []row
	fields    map[string]interface{}
	order     []string
}

// NewTable creates a table with the given decimal precision
func NewTable(title string, precision int) *Table {
	if precision < 0 {
		precision = 0
	}
	return &Table{
		title:     title,
		precision: precision,
		fields:    make(map[string]interface{}),
	}
}

// Value adds a numeric row
func (t *Table) Value(label string, value float64, unit string) *Table {
	t.rows = append(t.rows, row{label: label, value: t.round(value), unit: unit})
	t.field(label, value)
	return t
}

// Text adds a string row
func (t *Table) Text(label, value string) *Table {
	t.rows = append(t.rows, row{label: label, value: value})
	t.field(label, value)
	return t
}

// Section adds a blank separator followed by a subsection label
func (t *Table) Section(name string) *Table {
	t.rows = append(t.rows, row{}, row{label: name + ":"})
	return t
}

// round formats a float at table precision, trimming trailing zeros
func (t *Table) round(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%g", v)
	}
	return decimal.NewFromFloat(v).Round(int32(t.precision)).String()
}

// field records a value for JSON output under a snake_case key
func (t *Table) field(label string, value interface{}) {
	key := fieldKey(label)
	if _, seen := t.fields[key]; !seen {
		t.order = append(t.order, key)
	}
	t.fields[key] = value
}

// fieldKey converts a display label to a JSON key
func fieldKey(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '/':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

// Render writes the table in the requested format
func (t *Table) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return t.renderJSON(w)
	default:
		return t.renderText(w)
	}
}

// renderText writes aligned key/value lines
func (t *Table) renderText(w io.Writer) error {
	width := 0
	for _, r := range t.rows {
		if r.value != "" && len(r.label) > width {
			width = len(r.label)
		}
	}
	if t.title != "" {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", t.title, strings.Repeat("-", len(t.title))); err != nil {
			return err
		}
	}
	for _, r := range t.rows {
		var err error
		switch {
		case r.label == "" && r.value == "":
			_, err = fmt.Fprintln(w)
		case r.value == "":
			_, err = fmt.Fprintln(w, r.label)
		case r.unit == "":
			_, err = fmt.Fprintf(w, "%-*s  %s\n", width, r.label, r.value)
		default:
			_, err = fmt.Fprintf(w, "%-*s  %s %s\n", width, r.label, r.value, r.unit)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// renderJSON writes the collected fields as an indented object.
// Field order follows insertion order.
func (t *Table) renderJSON(w io.Writer) error {
	var b strings.Builder
	b.WriteString("{\n")
	for i, key := range t.order {
		raw, err := json.Marshal(t.fields[key])
		if err != nil {
			return errors.Internal("encode output", err)
		}
		fmt.Fprintf(&b, "  %q: %s", key, raw)
		if i < len(t.order)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes any value as indented JSON
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Internal("encode output", err)
	}
	return nil
}
