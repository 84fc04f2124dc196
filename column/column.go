package column

type (
	// Column describes how a single column derives, compares, and filters
	// its values. All behavior fields are optional capabilities: the engines
	// check for their presence rather than dispatching on a type
	Column[Item any] struct {
		// ID identifies the column in sort descriptors. When empty, the
		// view's IDGetter derives one
		ID ID

		// Label is the column's user-facing header text
		Label string

		// Key names the item field this column reads
		Key string

		// ValueGetter takes precedence over Key
		ValueGetter ValueGetter[Item]

		// Comparator replaces the default value ordering when provided
		Comparator Compare[Item]

		// Filter replaces the default substring predicate when provided. It
		// is only consulted when Filterable is set
		Filter Predicate[Item]

		Sortable   bool
		Filterable bool

		// Presentation only
		Width  int
		Align  Align
		Format Formatter[Item]
	}

	// ID is exactly what you think it is
	ID string

	// ValueGetter derives a column's value directly from an item
	ValueGetter[Item any] func(Item) Value

	// Compare returns a negative number when a sorts before b, a positive
	// number when it sorts after, and zero when they tie
	Compare[Item any] func(a, b Item) int

	// Predicate reports whether an item matches a filter value
	Predicate[Item any] func(item Item, filter any) bool

	// Formatter renders an item's cell text for a column
	Formatter[Item any] func(Item) string

	// Align is the horizontal alignment of a column's cells
	Align int
)

// Alignments
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Make instantiates a sortable and filterable Column that derives its value
// using the provided ValueGetter
func Make[Item any](label string, v ValueGetter[Item]) Column[Item] {
	return Column[Item]{
		Label:       label,
		ValueGetter: v,
		Sortable:    true,
		Filterable:  true,
	}
}

// Field instantiates a sortable and filterable Column that reads the named
// item field
func Field[Item any](label, key string) Column[Item] {
	return Column[Item]{
		Label:      label,
		Key:        key,
		Sortable:   true,
		Filterable: true,
	}
}

// HasValue reports whether the column is able to derive a value at all
func (c *Column[_]) HasValue() bool {
	return c.ValueGetter != nil || c.Key != ""
}
