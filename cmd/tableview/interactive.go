package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kode4food/tableview/present"
	"github.com/kode4food/tableview/view"
)

type (
	model struct {
		view   view.View[record]
		table  table.Model
		keys   keyMap
		status string
	}

	keyMap struct {
		Next       key.Binding
		Prev       key.Binding
		Toggle     key.Binding
		TogglePage key.Binding
		SelectAll  key.Binding
		Clear      key.Binding
		Quit       key.Binding
	}
)

var footerStyle = lipgloss.NewStyle().Faint(true)

func defaultKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("right", "l", "pgdown")),
		Prev:       key.NewBinding(key.WithKeys("left", "h", "pgup")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter")),
		TogglePage: key.NewBinding(key.WithKeys("a")),
		SelectAll:  key.NewBinding(key.WithKeys("A")),
		Clear:      key.NewBinding(key.WithKeys("c")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

func newModel(v view.View[record]) *model {
	m := &model{
		view: v,
		keys: defaultKeyMap(),
	}
	m.table = present.Table(v, true,
		table.WithFocused(true),
		table.WithHeight(max(len(v.Items()), 1)+1),
	)
	v.OnCurrentItemsChange(func([]record) { m.refresh() })
	v.OnSelectionChange(func([]record) { m.refresh() })
	v.OnRowClick(func(r record) {
		m.status = "clicked " + v.Key(r)
	})
	m.highlight()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.view.GoToPage(m.view.PageIndex() + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.view.GoToPage(m.view.PageIndex() - 1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.toggleCurrent()
			return m, nil
		case key.Matches(msg, m.keys.TogglePage):
			m.view.ToggleCurrentPage()
			return m, nil
		case key.Matches(msg, m.keys.SelectAll):
			m.view.SelectAllFiltered()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.view.ClearSelection()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.highlight()
	return m, cmd
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(present.Footer(m.view)))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(m.status))
	}
	return b.String()
}

func (m *model) current() (record, bool) {
	items := m.view.Items()
	c := m.table.Cursor()
	if c < 0 || c >= len(items) {
		return record{}, false
	}
	return items[c], true
}

func (m *model) toggleCurrent() {
	r, ok := m.current()
	if !ok {
		return
	}
	m.view.Click(r)
	k := m.view.Key(r)
	if m.view.IsSelected(k) {
		m.view.Unselect(k)
		return
	}
	m.view.Select(k)
}

func (m *model) highlight() {
	if r, ok := m.current(); ok {
		m.view.Highlight(m.view.Key(r))
		return
	}
	m.view.Highlight("")
}

func (m *model) refresh() {
	rows := present.Rows(m.view, true)
	m.table.SetRows(rows)
	m.table.SetHeight(max(len(rows), 1) + 1)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
	m.highlight()
}
