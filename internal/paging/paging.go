package paging

// Window describes one page of a paginated sequence. Start and End are the
// bounds of the page's slice
type Window struct {
	Index int
	Count int
	Start int
	End   int
}

// Unpaginated is the page size that disables pagination
const Unpaginated = -1

// Count returns the number of pages needed for n items. An unpaginated
// sequence always has exactly one page, as does an empty one
func Count(n, perPage int) int {
	if perPage <= 0 || n <= 0 {
		return 1
	}
	return (n + perPage - 1) / perPage
}

// Clamp forces a 1-based page index into [1, count]
func Clamp(index, count int) int {
	switch {
	case index < 1:
		return 1
	case index > count:
		return max(count, 1)
	default:
		return index
	}
}

// Make computes the Window of the requested page over n items. The index is
// clamped rather than rejected
func Make(n, index, perPage int) Window {
	count := Count(n, perPage)
	index = Clamp(index, count)
	if perPage <= 0 {
		return Window{Index: index, Count: count, End: n}
	}
	start := min((index-1)*perPage, n)
	return Window{
		Index: index,
		Count: count,
		Start: start,
		End:   min(start+perPage, n),
	}
}

// Slice returns the items of the requested page
func Slice[Item any](items []Item, index, perPage int) []Item {
	w := Make(len(items), index, perPage)
	return items[w.Start:w.End:w.End]
}
