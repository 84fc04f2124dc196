package column

import "strconv"

// IDGetter derives the ID of a column that doesn't declare one explicitly.
// The index is the column's position in its schema
type IDGetter func(label string, index int) ID

// ByIndex derives a column ID from its position. This is the default, as
// positions can't collide within a schema
func ByIndex(_ string, index int) ID {
	return ID(strconv.Itoa(index))
}

// ByLabel derives a column ID from its label, falling back to its position
// when the label is empty. Two columns sharing a label will collide
func ByLabel(label string, index int) ID {
	if label != "" {
		return ID(label)
	}
	return ByIndex(label, index)
}

// IDs resolves the ID of every column in a schema, in order. Explicit IDs
// always win over the getter
func IDs[Item any](cols []Column[Item], get IDGetter) []ID {
	if get == nil {
		get = ByIndex
	}
	res := make([]ID, len(cols))
	for i := range cols {
		if id := cols[i].ID; id != "" {
			res[i] = id
			continue
		}
		res[i] = get(cols[i].Label, i)
	}
	return res
}
