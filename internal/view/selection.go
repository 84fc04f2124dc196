package view

import "github.com/kode4food/tableview/view"

func (v *View[_]) Select(key string) {
	v.update(func(c *changes) {
		if v.index.Has(key) {
			c.selection = v.selected.Add(key)
		}
	})
}

func (v *View[_]) Unselect(key string) {
	v.update(func(c *changes) {
		c.selection = v.selected.Remove(key)
	})
}

func (v *View[_]) ToggleCurrentPage() {
	v.update(func(c *changes) {
		if v.bulkDisabled || len(v.pageKeys) == 0 {
			return
		}
		if v.selected.HasAll(v.pageKeys...) {
			c.selection = v.selected.Remove(v.pageKeys...)
			return
		}
		c.selection = v.selected.Add(v.pageKeys...)
	})
}

func (v *View[Item]) SelectAllFiltered() {
	v.update(func(c *changes) {
		keys := make([]string, len(v.filtered))
		for i, item := range v.filtered {
			keys[i] = v.key(item)
		}
		c.selection = v.selected.Add(keys...)
	})
}

func (v *View[_]) ClearSelection() {
	v.update(func(c *changes) {
		c.selection = v.selected.Clear()
	})
}

func (v *View[_]) IsSelected(key string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected.Has(key)
}

func (v *View[Item]) SelectedKeys() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	res := []string{}
	for _, k := range v.index.Keys() {
		if v.selected.Has(k) {
			res = append(res, k)
		}
	}
	return res
}

func (v *View[Item]) Selected() []Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.materialized()
}

func (v *View[_]) PageSelection() view.PageSelection {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case len(v.pageKeys) == 0 || !v.selected.HasAny(v.pageKeys...):
		return view.SelectedNone
	case v.selected.HasAll(v.pageKeys...):
		return view.SelectedAll
	default:
		return view.SelectedSome
	}
}

func (v *View[_]) CanSelectAll() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.bulkDisabled && len(v.filtered) > 0
}

func (v *View[_]) Highlight(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if key == "" || v.index.Has(key) {
		v.highlighted = key
	}
}

func (v *View[_]) Highlighted() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.highlighted, v.highlighted != ""
}
