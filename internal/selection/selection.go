package selection

import "github.com/google/btree"

// Set is an ordered set of item keys. It is not safe for concurrent use;
// the view guards it
type Set struct {
	keys *btree.BTreeG[string]
}

const degree = 16

// Make instantiates a new Set containing the provided keys
func Make(keys ...string) *Set {
	s := &Set{
		keys: btree.NewOrderedG[string](degree),
	}
	s.Add(keys...)
	return s
}

// Add inserts keys into the Set, reporting whether any was newly added
func (s *Set) Add(keys ...string) bool {
	var changed bool
	for _, k := range keys {
		if _, found := s.keys.ReplaceOrInsert(k); !found {
			changed = true
		}
	}
	return changed
}

// Remove deletes keys from the Set, reporting whether any was present
func (s *Set) Remove(keys ...string) bool {
	var changed bool
	for _, k := range keys {
		if _, found := s.keys.Delete(k); found {
			changed = true
		}
	}
	return changed
}

// Has reports whether the key is in the Set
func (s *Set) Has(key string) bool {
	return s.keys.Has(key)
}

// HasAll reports whether every key is in the Set. It is vacuously true for
// no keys
func (s *Set) HasAll(keys ...string) bool {
	for _, k := range keys {
		if !s.keys.Has(k) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the keys is in the Set
func (s *Set) HasAny(keys ...string) bool {
	for _, k := range keys {
		if s.keys.Has(k) {
			return true
		}
	}
	return false
}

// Len returns the number of keys in the Set
func (s *Set) Len() int {
	return s.keys.Len()
}

// Clear empties the Set, reporting whether it held anything
func (s *Set) Clear() bool {
	if s.keys.Len() == 0 {
		return false
	}
	s.keys.Clear(false)
	return true
}

// Retain removes every key for which keep returns false, reporting whether
// anything was removed
func (s *Set) Retain(keep func(string) bool) bool {
	var drop []string
	s.keys.Ascend(func(k string) bool {
		if !keep(k) {
			drop = append(drop, k)
		}
		return true
	})
	return s.Remove(drop...)
}

// Replace swaps the Set's contents for the provided keys, reporting whether
// the contents changed
func (s *Set) Replace(keys ...string) bool {
	next := Make(keys...)
	if s.Equal(next) {
		return false
	}
	s.keys = next.keys
	return true
}

// Equal reports whether two Sets hold the same keys
func (s *Set) Equal(o *Set) bool {
	if s.keys.Len() != o.keys.Len() {
		return false
	}
	equal := true
	s.keys.Ascend(func(k string) bool {
		equal = o.keys.Has(k)
		return equal
	})
	return equal
}
