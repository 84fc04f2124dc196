package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/config"
)

// record is one loaded item. Fields are exposed by name so that columns can
// read them with a Key
type record struct {
	fields   map[string]any
	position int
}

type itemsDocument struct {
	Items []map[string]any `toml:"items" yaml:"items" json:"items"`
}

var errNoItems = errors.New("no items found")

func (r record) Field(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// loadRecords reads a YAML list, a JSON (with comments) array, or a TOML
// document of [[items]] tables
func loadRecords(path string) ([]record, error) {
	f, err := config.FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeRecords(f, data)
}

func decodeRecords(f config.Format, data []byte) ([]record, error) {
	var rows []map[string]any
	if f == config.TOML {
		var doc itemsDocument
		if err := config.Unmarshal(f, data, &doc); err != nil {
			return nil, err
		}
		rows = doc.Items
	} else if err := config.Unmarshal(f, data, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errNoItems
	}
	res := make([]record, len(rows))
	for i, fields := range rows {
		res[i] = record{fields: fields, position: i}
	}
	return res, nil
}

// recordKey uses the text of the key field, or the record's position when
// the field is absent
func recordKey(field string) func(record) string {
	return func(r record) string {
		if v, ok := r.fields[field]; ok && v != nil {
			if s := column.Text(column.Normalize(v)); s != "" {
				return s
			}
			return fmt.Sprint(v)
		}
		return "#" + strconv.Itoa(r.position)
	}
}

// fieldNames returns every field name in the records, sorted
func fieldNames(records []record) []string {
	seen := map[string]bool{}
	var res []string
	for _, r := range records {
		for k := range r.fields {
			if !seen[k] {
				seen[k] = true
				res = append(res, k)
			}
		}
	}
	slices.Sort(res)
	return res
}

// buildColumns turns "field" or "field=Label" specs into sortable columns,
// filterable when named in filterable (or when filterable is empty)
func buildColumns(
	specs, filterable []string, width int,
) []column.Column[record] {
	res := make([]column.Column[record], len(specs))
	for i, spec := range specs {
		field, label, found := strings.Cut(spec, "=")
		if !found {
			label = field
		}
		res[i] = column.Column[record]{
			ID:         column.ID(field),
			Label:      label,
			Key:        field,
			Sortable:   true,
			Filterable: len(filterable) == 0 || slices.Contains(filterable, field),
			Width:      width,
			Align:      alignFor(field),
		}
	}
	return res
}

func alignFor(field string) column.Align {
	switch strings.ToLower(field) {
	case "id", "count", "amount", "price", "total":
		return column.AlignRight
	default:
		return column.AlignLeft
	}
}

// columnWidth divides the terminal width between the columns
func columnWidth(termWidth, columns int) int {
	if termWidth <= 0 || columns == 0 {
		return 0
	}
	const marker = 4
	return max((termWidth-marker)/columns-1, 4)
}
