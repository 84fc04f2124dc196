package view

import (
	"errors"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/event"
	"github.com/kode4food/tableview/order"
)

type (
	// View is a consistent, re-derivable view over an in-memory collection
	// of items. It filters, sorts, and paginates the collection, and keeps a
	// selection of item keys that survives paging, filtering, and sorting.
	// Every input change re-derives the view synchronously
	View[Item any] interface {
		Inputs[Item]
		Outputs[Item]
		Selection
		Events[Item]

		// Click forwards a row activation to the RowClick Listeners
		Click(Item)
	}

	// Inputs are the values a View derives itself from
	Inputs[Item any] interface {
		// SetItems replaces the raw collection. Selected keys that are no
		// longer present are pruned
		SetItems([]Item)

		// SetColumns replaces the column schema
		SetColumns([]column.Column[Item]) error

		// SetFilter replaces the filter value
		SetFilter(any)

		// SetSortBy replaces the sort descriptors, in priority order
		SetSortBy(...order.By)

		// SetItemsPerPage changes the page size. A negative size disables
		// pagination
		SetItemsPerPage(int) error

		// SetPageIndex synchronizes the page index with a controlling
		// parent. Out-of-range indexes are clamped
		SetPageIndex(int)

		// GoToPage navigates to a page, as a pagination control would
		GoToPage(int)

		// SetSelected replaces the selection with the keys of the items
		SetSelected([]Item)

		// SetBulkSelectDisabled toggles the select-all affordances
		SetBulkSelectDisabled(bool)

		// SetTotalItems defers the page count to an external total. Use
		// config.DeriveTotal to derive it from the items again
		SetTotalItems(int)
	}

	// Outputs are the values a View derives
	Outputs[Item any] interface {
		// Items returns the items of the current page
		Items() []Item

		// Filtered returns the filtered and sorted items across all pages
		Filtered() []Item

		// All returns the raw collection
		All() []Item

		// Columns returns the column schema
		Columns() []column.Column[Item]

		// ColumnIDs returns the resolved ID of every column, in order
		ColumnIDs() []column.ID

		// SortBy returns the sort descriptors that are taking part in the
		// ordering
		SortBy() []order.By

		// Filter returns the filter value
		Filter() any

		PageIndex() int
		PageCount() int
		ItemsPerPage() int

		// Paginated reports whether pagination controls should be shown
		Paginated() bool

		// Selected returns the materialized selection, in collection order
		Selected() []Item

		// Key returns an item's key
		Key(Item) string
	}

	// Selection is the Selection Set Manager of a View. Keys are opaque and
	// unknown keys are ignored
	Selection interface {
		Select(key string)
		Unselect(key string)

		// ToggleCurrentPage unselects the current page's items when all of
		// them are selected, and selects them otherwise. It does nothing
		// when bulk selection is disabled
		ToggleCurrentPage()

		// SelectAllFiltered adds every filtered item, on any page
		SelectAllFiltered()

		ClearSelection()

		IsSelected(key string) bool

		// SelectedKeys returns the selected keys in collection order
		SelectedKeys() []string

		// PageSelection summarizes the current page's selection
		PageSelection() PageSelection

		// CanSelectAll reports whether select-all affordances should be
		// offered
		CanSelectAll() bool

		// Highlight marks one item key as highlighted. An empty key clears
		// the highlight
		Highlight(key string)

		Highlighted() (string, bool)
	}

	// Events are the outputs a View produces as notifications
	Events[Item any] interface {
		// OnSelectionChange is notified with the materialized selection
		// whenever it changes
		OnSelectionChange(event.Listener[[]Item]) event.Subscription

		// OnCurrentItemsChange is notified whenever the current page's key
		// sequence changes
		OnCurrentItemsChange(event.Listener[[]Item]) event.Subscription

		// OnPageIndexChange is notified when the View changes its own page
		// index
		OnPageIndexChange(event.Listener[int]) event.Subscription

		// OnRowClick is notified with every Clicked item
		OnRowClick(event.Listener[Item]) event.Subscription
	}

	// KeyGetter derives a stable, collision-free key for an item
	KeyGetter[Item any] func(Item) string

	// PageSelection describes how much of the current page is selected
	PageSelection int
)

// Page selection states
const (
	SelectedNone PageSelection = iota
	SelectedSome
	SelectedAll
)

// Error messages
var (
	ErrKeyGetterRequired = errors.New("an item key getter is required")
	ErrDuplicateColumnID = errors.New("column id duplicated in schema")
)

func (p PageSelection) String() string {
	switch p {
	case SelectedAll:
		return "all"
	case SelectedSome:
		return "some"
	default:
		return "none"
	}
}
