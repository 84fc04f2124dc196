// Package present renders view items against their column schema. It is a
// consumer of the view: nothing here influences filtering, sorting,
// pagination, or selection
package present

import (
	"github.com/kode4food/tableview/column"
)

// DefaultWidth is the cell width used for columns that don't declare one
const DefaultWidth = 12

// Cell renders the text of one column for an item. The column's Format hook
// wins over its resolved value
func Cell[Item any](c *column.Column[Item], item Item) string {
	if c.Format != nil {
		return c.Format(item)
	}
	return column.Text(column.Resolve(c, item))
}

// Cells renders the text of every column for an item, in schema order
func Cells[Item any](cols []column.Column[Item], item Item) []string {
	res := make([]string, len(cols))
	for i := range cols {
		res[i] = Cell(&cols[i], item)
	}
	return res
}

// Headers returns the header text of every column, in schema order
func Headers[Item any](cols []column.Column[Item]) []string {
	res := make([]string, len(cols))
	for i := range cols {
		res[i] = cols[i].Label
	}
	return res
}

// Width returns the display width of a column
func Width[Item any](c *column.Column[Item]) int {
	if c.Width > 0 {
		return c.Width
	}
	return DefaultWidth
}
