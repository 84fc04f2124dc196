package index

// Index is the live view of an item collection, associating each item's key
// with the item in collection order
type Index[Item any] struct {
	items map[string]Item
	keys  []string
}

// Make builds an Index over the items. Items whose key duplicates an
// earlier one are left out, and their keys are returned
func Make[Item any](
	items []Item, key func(Item) string,
) (*Index[Item], []string) {
	res := &Index[Item]{
		items: make(map[string]Item, len(items)),
		keys:  make([]string, 0, len(items)),
	}
	var dups []string
	for _, item := range items {
		k := key(item)
		if _, ok := res.items[k]; ok {
			dups = append(dups, k)
			continue
		}
		res.items[k] = item
		res.keys = append(res.keys, k)
	}
	return res, dups
}

// Has reports whether the key is present in the collection
func (x *Index[_]) Has(k string) bool {
	_, ok := x.items[k]
	return ok
}

// Keys returns all keys in collection order
func (x *Index[_]) Keys() []string {
	return x.keys[:len(x.keys):len(x.keys)]
}

// Range iterates over all items in collection order, calling fn for each.
// If fn returns false, iteration stops
func (x *Index[Item]) Range(fn func(string, Item) bool) {
	for _, k := range x.keys {
		if !fn(k, x.items[k]) {
			return
		}
	}
}

// Resolve returns the items for the keys in collection order, skipping keys
// that aren't present
func (x *Index[Item]) Resolve(keys func(string) bool) []Item {
	res := []Item{}
	x.Range(func(k string, item Item) bool {
		if keys(k) {
			res = append(res, item)
		}
		return true
	})
	return res
}
