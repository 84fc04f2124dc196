package present

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/view"
)

// Columns adapts a column schema to bubbles table columns. A selection
// marker column is prepended when selectable is set
func Columns[Item any](
	cols []column.Column[Item], selectable bool,
) []table.Column {
	res := make([]table.Column, 0, len(cols)+1)
	if selectable {
		res = append(res, table.Column{
			Title: "", Width: len(MarkerSelected),
		})
	}
	for i, title := range Headers(cols) {
		res = append(res, table.Column{
			Title: title,
			Width: Width(&cols[i]),
		})
	}
	return res
}

// Rows adapts the View's current page to bubbles table rows
func Rows[Item any](v view.View[Item], selectable bool) []table.Row {
	cols := v.Columns()
	items := v.Items()
	res := make([]table.Row, len(items))
	for i, item := range items {
		cells := Cells(cols, item)
		if selectable {
			m := MarkerUnselected
			if v.IsSelected(v.Key(item)) {
				m = MarkerSelected
			}
			cells = append([]string{m}, cells...)
		}
		res[i] = cells
	}
	return res
}

// Table builds a bubbles table model over the View's current page
func Table[Item any](
	v view.View[Item], selectable bool, o ...table.Option,
) table.Model {
	opts := append([]table.Option{
		table.WithColumns(Columns(v.Columns(), selectable)),
		table.WithRows(Rows(v, selectable)),
	}, o...)
	return table.New(opts...)
}
