package view

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/config"
	"github.com/kode4food/tableview/event"
	internal "github.com/kode4food/tableview/internal/event"
	"github.com/kode4food/tableview/internal/filter"
	"github.com/kode4food/tableview/internal/index"
	"github.com/kode4food/tableview/internal/paging"
	"github.com/kode4food/tableview/internal/selection"
	"github.com/kode4food/tableview/internal/sorting"
	"github.com/kode4food/tableview/order"
	"github.com/kode4food/tableview/view"
)

type (
	// View is the internal implementation of a view.View
	View[Item any] struct {
		key      view.KeyGetter[Item]
		log      *slog.Logger
		idGetter column.IDGetter

		items  []Item
		index  *index.Index[Item]
		cols   []column.Column[Item]
		ids    []column.ID
		filter any
		sortBy []order.By

		perPage      int
		total        int
		bulkDisabled bool
		populated    bool

		filtered  []Item
		page      []Item
		pageKeys  []string
		pageIndex int

		// pending is the page index requested before the collection was
		// first populated
		pending int

		// announced is the last page index listeners were told about
		announced int

		selected    *selection.Set
		highlighted string

		observers *observers[Item]
		mu        sync.Mutex
	}

	observers[Item any] struct {
		selection *internal.Observers[[]Item]
		items     *internal.Observers[[]Item]
		page      *internal.Observers[int]
		click     *internal.Observers[Item]
	}

	// changes records which notifications a mutation has earned
	changes struct {
		selection bool
		page      bool
		items     bool
	}
)

// Make instantiates a new internal View over an empty collection
func Make[Item any](
	key view.KeyGetter[Item], cols []column.Column[Item], o ...config.Option,
) (view.View[Item], error) {
	if key == nil {
		return nil, view.ErrKeyGetterRequired
	}
	cfg, err := config.Make(o...)
	if err != nil {
		return nil, err
	}
	v := &View[Item]{
		key:          key,
		log:          cfg.Logger,
		idGetter:     cfg.ColumnIDs,
		filter:       cfg.Filter,
		sortBy:       cfg.SortBy,
		perPage:      cfg.ItemsPerPage,
		total:        cfg.TotalItems,
		bulkDisabled: cfg.BulkSelectDisabled,
		pageIndex:    cfg.PageIndex,
		pending:      cfg.PageIndex,
		selected:     selection.Make(),
		observers: &observers[Item]{
			selection: internal.Make[[]Item](),
			items:     internal.Make[[]Item](),
			page:      internal.Make[int](),
			click:     internal.Make[Item](),
		},
	}
	if v.log == nil {
		v.log = slog.New(slog.DiscardHandler)
	}
	if v.idGetter == nil {
		v.idGetter = column.ByIndex
	}
	if err := v.setColumns(cols); err != nil {
		return nil, err
	}
	v.index, _ = index.Make(v.items, v.key)
	v.refilter(&changes{})
	v.announced = v.pending
	return v, nil
}

func (v *View[Item]) setColumns(cols []column.Column[Item]) error {
	ids := column.IDs(cols, v.idGetter)
	if err := checkColumnDuplicates(ids); err != nil {
		return err
	}
	v.cols = slices.Clone(cols)
	v.ids = ids
	return nil
}

// update runs a mutation under the View's lock, then dispatches the
// notifications it earned once the lock is released
func (v *View[Item]) update(fn func(*changes)) {
	v.mu.Lock()
	var c changes
	fn(&c)
	dispatch := v.notifications(c)
	v.mu.Unlock()
	dispatch()
}

func (v *View[Item]) notifications(c changes) func() {
	var fns []func()
	if c.selection {
		sel := v.materialized()
		fns = append(fns, func() { v.observers.selection.Notify(sel) })
	}
	if c.page && v.perPage > 0 {
		idx := v.pageIndex
		v.announced = idx
		fns = append(fns, func() { v.observers.page.Notify(idx) })
	}
	if c.items {
		items := slices.Clone(v.page)
		fns = append(fns, func() { v.observers.items.Notify(items) })
	}
	return func() {
		for _, fn := range fns {
			fn()
		}
	}
}

// refilter re-derives the entire pipeline: filter, then sort, then paginate
func (v *View[Item]) refilter(c *changes) {
	prevCount := len(v.filtered)
	visible := filter.Apply(v.items, v.cols, v.filter)
	v.filtered = sorting.Sort(visible, v.sortBy, v.cols, v.ids, v.log)

	requested := v.pageIndex
	switch {
	case !v.populated:
		requested = v.pending
	case len(v.filtered) != prevCount:
		requested = 1
	}
	v.repage(c, requested, v.pageIndex)
}

// repage clamps the requested page index and slices the current page. A page
// change is recorded when the resulting index differs from the baseline
func (v *View[Item]) repage(c *changes, requested, baseline int) {
	if !v.populated {
		v.pending = requested
	}
	count := v.pageCount()
	idx := paging.Clamp(requested, count)
	if idx != requested {
		v.log.Debug("page index clamped",
			"requested", requested, "index", idx, "count", count,
		)
	}
	v.pageIndex = idx
	if idx != baseline {
		c.page = true
	}

	if v.total >= 0 {
		v.page = v.filtered
	} else {
		v.page = paging.Slice(v.filtered, idx, v.perPage)
	}
	keys := make([]string, len(v.page))
	for i, item := range v.page {
		keys[i] = v.key(item)
	}
	if !slices.Equal(keys, v.pageKeys) {
		c.items = true
	}
	v.pageKeys = keys
}

// requested is the page index a re-slice should aim for
func (v *View[Item]) requested() int {
	if !v.populated {
		return v.pending
	}
	return v.pageIndex
}

func (v *View[Item]) pageCount() int {
	if v.total >= 0 {
		return paging.Count(v.total, v.perPage)
	}
	return paging.Count(len(v.filtered), v.perPage)
}

func (v *View[Item]) materialized() []Item {
	return v.index.Resolve(v.selected.Has)
}

func (v *View[Item]) SetItems(items []Item) {
	v.update(func(c *changes) {
		v.items = slices.Clone(items)
		x, dups := index.Make(v.items, v.key)
		if len(dups) > 0 {
			v.log.Warn("duplicate item keys", "keys", dups)
		}
		v.index = x
		if v.selected.Retain(x.Has) {
			v.log.Debug("selection pruned", "remaining", v.selected.Len())
			c.selection = true
		}
		if v.highlighted != "" && !x.Has(v.highlighted) {
			v.highlighted = ""
		}
		v.refilter(c)
		v.populated = true
	})
}

func (v *View[Item]) SetColumns(cols []column.Column[Item]) error {
	var err error
	v.update(func(c *changes) {
		if err = v.setColumns(cols); err == nil {
			v.refilter(c)
		}
	})
	return err
}

func (v *View[Item]) SetFilter(value any) {
	v.update(func(c *changes) {
		v.filter = value
		v.refilter(c)
	})
}

func (v *View[Item]) SetSortBy(by ...order.By) {
	v.update(func(c *changes) {
		v.sortBy = slices.Clone(by)
		v.refilter(c)
	})
}

func (v *View[Item]) SetItemsPerPage(n int) error {
	if err := config.CheckItemsPerPage(n); err != nil {
		return err
	}
	v.update(func(c *changes) {
		v.perPage = n
		baseline := v.announced
		if !v.populated {
			baseline = v.pageIndex
		}
		v.repage(c, v.requested(), baseline)
	})
	return nil
}

func (v *View[Item]) SetPageIndex(i int) {
	v.update(func(c *changes) {
		v.announced = i
		v.repage(c, i, i)
	})
}

func (v *View[Item]) GoToPage(i int) {
	v.update(func(c *changes) {
		if v.perPage < 0 {
			return
		}
		v.repage(c, i, v.pageIndex)
	})
}

// SetSelected replaces the selection. Until the collection is first
// populated, keys are held as given and pruned by the first SetItems
func (v *View[Item]) SetSelected(items []Item) {
	v.update(func(c *changes) {
		keys := make([]string, 0, len(items))
		for _, item := range items {
			if k := v.key(item); !v.populated || v.index.Has(k) {
				keys = append(keys, k)
			}
		}
		if v.selected.Replace(keys...) && v.populated {
			c.selection = true
		}
	})
}

func (v *View[Item]) SetBulkSelectDisabled(disabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bulkDisabled = disabled
}

func (v *View[Item]) SetTotalItems(n int) {
	v.update(func(c *changes) {
		if n < 0 {
			n = config.DeriveTotal
		}
		v.total = n
		v.repage(c, v.requested(), v.pageIndex)
	})
}

func (v *View[Item]) Items() []Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.page)
}

func (v *View[Item]) Filtered() []Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.filtered)
}

func (v *View[Item]) All() []Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.items)
}

func (v *View[Item]) Columns() []column.Column[Item] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.cols)
}

func (v *View[Item]) ColumnIDs() []column.ID {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.ids)
}

func (v *View[Item]) SortBy() []order.By {
	v.mu.Lock()
	defer v.mu.Unlock()
	return sorting.Active(v.sortBy, v.cols, v.ids)
}

func (v *View[Item]) Filter() any {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func (v *View[Item]) PageIndex() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageIndex
}

func (v *View[Item]) PageCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageCount()
}

func (v *View[Item]) ItemsPerPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.perPage
}

func (v *View[Item]) Paginated() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.perPage > 0
}

func (v *View[Item]) Key(item Item) string {
	return v.key(item)
}

func (v *View[Item]) Click(item Item) {
	v.observers.click.Notify(item)
}

func (v *View[Item]) OnSelectionChange(
	l event.Listener[[]Item],
) event.Subscription {
	return v.observers.selection.Add(l)
}

func (v *View[Item]) OnCurrentItemsChange(
	l event.Listener[[]Item],
) event.Subscription {
	return v.observers.items.Add(l)
}

func (v *View[Item]) OnPageIndexChange(
	l event.Listener[int],
) event.Subscription {
	return v.observers.page.Add(l)
}

func (v *View[Item]) OnRowClick(l event.Listener[Item]) event.Subscription {
	return v.observers.click.Add(l)
}

func checkColumnDuplicates(ids []column.ID) error {
	seen := map[column.ID]bool{}
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("%w: %s", view.ErrDuplicateColumnID, id)
		}
		seen[id] = true
	}
	return nil
}
