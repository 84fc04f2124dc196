package sorting

import (
	"log/slog"
	"slices"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/order"
)

type key[Item any] struct {
	compare   column.Compare[Item]
	direction order.Direction
}

// Sort returns the items ordered by the sort descriptors, in priority order.
// Items that tie on every descriptor keep their relative input order.
// Descriptors naming unknown or unsortable columns are dropped. When no
// descriptor remains, the items are returned untouched
func Sort[Item any](
	items []Item, by []order.By, cols []column.Column[Item],
	ids []column.ID, log *slog.Logger,
) []Item {
	keys := makeKeys(by, cols, ids, log)
	if len(keys) == 0 {
		return items
	}
	res := slices.Clone(items)
	slices.SortStableFunc(res, func(a, b Item) int {
		for _, k := range keys {
			if c := k.compare(a, b); c != 0 {
				return k.direction.Apply(c)
			}
		}
		return 0
	})
	return res
}

// Active filters the descriptors down to those that can take part in
// sorting, preserving their priority order
func Active[Item any](
	by []order.By, cols []column.Column[Item], ids []column.ID,
) []order.By {
	res := make([]order.By, 0, len(by))
	for _, b := range by {
		if _, ok := lookup(b.Column, cols, ids); ok {
			res = append(res, b)
		}
	}
	return res
}

// makeKeys builds one directed comparator per usable descriptor
func makeKeys[Item any](
	by []order.By, cols []column.Column[Item], ids []column.ID,
	log *slog.Logger,
) []key[Item] {
	res := make([]key[Item], 0, len(by))
	for _, b := range by {
		c, ok := lookup(b.Column, cols, ids)
		if !ok {
			if log != nil {
				log.Debug("dropping sort descriptor", "column", b.Column)
			}
			continue
		}
		res = append(res, key[Item]{
			compare:   column.Comparator(c),
			direction: b.Direction,
		})
	}
	return res
}

func lookup[Item any](
	id column.ID, cols []column.Column[Item], ids []column.ID,
) (*column.Column[Item], bool) {
	for i, e := range ids {
		if e == id && i < len(cols) && cols[i].Sortable {
			return &cols[i], true
		}
	}
	return nil, false
}
