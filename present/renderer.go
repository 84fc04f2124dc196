package present

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/order"
	"github.com/kode4food/tableview/view"
)

type (
	// Theme holds the styles a Renderer draws with
	Theme struct {
		Header      lipgloss.Style
		Row         lipgloss.Style
		Selected    lipgloss.Style
		Highlighted lipgloss.Style
		Footer      lipgloss.Style
	}

	// Renderer draws a View's current page as a text table
	Renderer[Item any] struct {
		Theme Theme

		// Selectable prefixes each row with a selection marker
		Selectable bool

		// Separator is drawn between cells
		Separator string
	}
)

// Selection markers
const (
	MarkerSelected   = "[x]"
	MarkerUnselected = "[ ]"
	MarkerSome       = "[-]"
	ellipsis         = "…"
)

// DefaultTheme returns the Theme used by NewRenderer
func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Row:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Highlighted: lipgloss.NewStyle().Reverse(true),
		Footer:      lipgloss.NewStyle().Faint(true),
	}
}

// NewRenderer creates a selectable Renderer with the DefaultTheme
func NewRenderer[Item any]() *Renderer[Item] {
	return &Renderer[Item]{
		Theme:      DefaultTheme(),
		Selectable: true,
		Separator:  " ",
	}
}

// Render draws the header, the View's current page, and a page footer
func (r *Renderer[Item]) Render(v view.View[Item]) string {
	cols := v.Columns()
	lines := []string{r.RenderHeader(cols, v.SortBy(), v.ColumnIDs(), v.PageSelection())}
	hl, _ := v.Highlighted()
	for _, item := range v.Items() {
		k := v.Key(item)
		lines = append(lines,
			r.RenderRow(cols, item, v.IsSelected(k), k == hl),
		)
	}
	if v.Paginated() {
		lines = append(lines, r.Theme.Footer.Render(Footer(v)))
	}
	return strings.Join(lines, "\n")
}

// RenderHeader draws the column labels, marking sorted columns with their
// direction
func (r *Renderer[Item]) RenderHeader(
	cols []column.Column[Item], by []order.By, ids []column.ID,
	sel view.PageSelection,
) string {
	cells := make([]string, 0, len(cols)+1)
	if r.Selectable {
		cells = append(cells, marker(sel))
	}
	for i := range cols {
		label := cols[i].Label
		if i < len(ids) {
			label += sortIndicator(ids[i], by)
		}
		cells = append(cells, fit(label, Width(&cols[i]), cols[i].Align))
	}
	return r.Theme.Header.Render(strings.Join(cells, r.Separator))
}

// RenderRow draws a single item against the column schema
func (r *Renderer[Item]) RenderRow(
	cols []column.Column[Item], item Item, selected, highlighted bool,
) string {
	cells := make([]string, 0, len(cols)+1)
	if r.Selectable {
		if selected {
			cells = append(cells, MarkerSelected)
		} else {
			cells = append(cells, MarkerUnselected)
		}
	}
	for i := range cols {
		c := &cols[i]
		cells = append(cells, fit(Cell(c, item), Width(c), c.Align))
	}
	row := strings.Join(cells, r.Separator)
	switch {
	case highlighted:
		return r.Theme.Highlighted.Render(row)
	case selected:
		return r.Theme.Selected.Render(row)
	default:
		return r.Theme.Row.Render(row)
	}
}

// Footer describes the View's pagination and selection state
func Footer[Item any](v view.View[Item]) string {
	return fmt.Sprintf("page %d of %d · %d items · %d selected",
		v.PageIndex(), v.PageCount(), len(v.Filtered()),
		len(v.SelectedKeys()),
	)
}

// Truncate shortens text to the display width, ending it with an ellipsis
// when anything was cut
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, ellipsis)
}

func fit(text string, width int, align column.Align) string {
	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Align(lipglossAlign(align)).
		Render(Truncate(text, width))
}

func lipglossAlign(a column.Align) lipgloss.Position {
	switch a {
	case column.AlignCenter:
		return lipgloss.Center
	case column.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func marker(sel view.PageSelection) string {
	switch sel {
	case view.SelectedAll:
		return MarkerSelected
	case view.SelectedSome:
		return MarkerSome
	default:
		return MarkerUnselected
	}
}

func sortIndicator(id column.ID, by []order.By) string {
	for i, b := range by {
		if b.Column != id {
			continue
		}
		arrow := "▲"
		if b.Direction == order.Descending {
			arrow = "▼"
		}
		if len(by) > 1 {
			return fmt.Sprintf(" %s%d", arrow, i+1)
		}
		return " " + arrow
	}
	return ""
}
