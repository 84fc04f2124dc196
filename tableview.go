package tableview

import (
	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/config"
	viewImpl "github.com/kode4food/tableview/internal/view"
	"github.com/kode4food/tableview/view"
)

// NewView instantiates a new View given an item key getter, a column schema,
// and a set of configuration Options. The View starts with no items
func NewView[Item any](
	key view.KeyGetter[Item], cols []column.Column[Item], o ...config.Option,
) (view.View[Item], error) {
	return viewImpl.Make(key, cols, o...)
}

// MustView instantiates a new View or panics if the configuration is invalid
func MustView[Item any](
	key view.KeyGetter[Item], cols []column.Column[Item], o ...config.Option,
) view.View[Item] {
	v, err := NewView(key, cols, o...)
	if err != nil {
		panic(err)
	}
	return v
}
