package filter

import (
	"strings"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/text/cases"

	"github.com/kode4food/tableview/column"
)

// Apply returns the items that are visible under the filter value, in their
// original order. An item is visible when any filterable column matches it.
// When no column is filterable, the items are returned untouched
func Apply[Item any](
	items []Item, cols []column.Column[Item], value any,
) []Item {
	mask := Mask(items, cols, value)
	if int(mask.GetCardinality()) == len(items) {
		return items
	}
	res := make([]Item, 0, mask.GetCardinality())
	it := mask.Iterator()
	for it.HasNext() {
		res = append(res, items[it.Next()])
	}
	return res
}

// Mask returns a bitmap of the positions of the visible items
func Mask[Item any](
	items []Item, cols []column.Column[Item], value any,
) *roaring.Bitmap {
	preds := Predicates(cols, value)
	if len(preds) == 0 {
		res := roaring.New()
		res.AddRange(0, uint64(len(items)))
		return res
	}
	return match(items, preds)
}

// Predicates returns one bound predicate per filterable column
func Predicates[Item any](
	cols []column.Column[Item], value any,
) []func(Item) bool {
	var res []func(Item) bool
	for i := range cols {
		if c := &cols[i]; c.Filterable {
			res = append(res, Predicate(c, value))
		}
	}
	return res
}

// Predicate binds a column's filter to the filter value. A custom Filter is
// used when present, otherwise the default substring predicate applies
func Predicate[Item any](c *column.Column[Item], value any) func(Item) bool {
	if f := c.Filter; f != nil {
		return func(item Item) bool {
			return f(item, value)
		}
	}
	query, ok := Query(value)
	if !ok {
		return func(Item) bool { return true }
	}
	return func(item Item) bool {
		text := column.Text(column.Resolve(c, item))
		return strings.Contains(fold(text), query)
	}
}

// Query returns the case-folded text of a filter value, if the value is one
// that the default predicate understands: a string, number, or boolean
func Query(value any) (string, bool) {
	switch v := column.Normalize(value).(type) {
	case string, bool, int64, uint64, float64:
		return fold(column.Text(v)), true
	default:
		return "", false
	}
}

func match[Item any](items []Item, preds []func(Item) bool) *roaring.Bitmap {
	res := roaring.New()
	for _, pred := range preds {
		for i, item := range items {
			idx := uint32(i)
			if res.Contains(idx) {
				continue
			}
			if pred(item) {
				res.Add(idx)
			}
		}
	}
	return res
}

func fold(s string) string {
	return cases.Fold().String(s)
}
