package column

import (
	"cmp"
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Comparator returns the ordering function for a column. A custom
// Comparator is used verbatim, otherwise the column's resolved values are
// compared with CompareValues
func Comparator[Item any](c *Column[Item]) Compare[Item] {
	if c.Comparator != nil {
		return c.Comparator
	}
	if !c.HasValue() {
		return func(_, _ Item) int { return 0 }
	}
	return func(a, b Item) int {
		return CompareValues(Resolve(c, a), Resolve(c, b))
	}
}

// CompareValues orders two normalized Values, returning -1, 0, or 1. Nil
// sorts first, strings compare case-insensitively, and numbers compare with
// booleans as 0 and 1. When a string meets a number, the number sorts first
func CompareValues(a, b Value) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	switch {
	case aStr && bStr:
		return FoldCompare(as, bs)
	case aStr:
		return 1
	case bStr:
		return -1
	}
	return compareNumeric(a, b)
}

// FoldCompare compares two strings under Unicode case folding
func FoldCompare(a, b string) int {
	f := cases.Fold()
	return strings.Compare(f.String(a), f.String(b))
}

// Bounds of the integer types, exact as float64
const (
	twoTo63 = 1 << 63
	twoTo64 = 1 << 64
)

func compareNumeric(a, b Value) int {
	switch a := widen(a).(type) {
	case int64:
		switch b := widen(b).(type) {
		case int64:
			return cmp.Compare(a, b)
		case uint64:
			return compareIntUint(a, b)
		case float64:
			return compareIntFloat(a, b)
		}
	case uint64:
		switch b := widen(b).(type) {
		case int64:
			return -compareIntUint(b, a)
		case uint64:
			return cmp.Compare(a, b)
		case float64:
			return compareUintFloat(a, b)
		}
	case float64:
		switch b := widen(b).(type) {
		case int64:
			return -compareIntFloat(b, a)
		case uint64:
			return -compareUintFloat(b, a)
		case float64:
			return cmp.Compare(a, b)
		}
	}
	return 0
}

func widen(v Value) Value {
	if b, ok := v.(bool); ok {
		if b {
			return int64(1)
		}
		return int64(0)
	}
	return v
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

// compareIntFloat compares without rounding the integer to a float. NaN
// sorts before every number
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f >= twoTo63:
		return -1
	case f < -twoTo63:
		return 1
	}
	t := math.Trunc(f)
	if res := cmp.Compare(i, int64(t)); res != 0 {
		return res
	}
	return cmp.Compare(t, f)
}

func compareUintFloat(u uint64, f float64) int {
	switch {
	case math.IsNaN(f), f < 0:
		return 1
	case f >= twoTo64:
		return -1
	}
	t := math.Trunc(f)
	if res := cmp.Compare(u, uint64(t)); res != 0 {
		return res
	}
	return cmp.Compare(t, f)
}
