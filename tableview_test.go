package tableview_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tableview"
	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/config"
	"github.com/kode4food/tableview/order"
	"github.com/kode4food/tableview/view"
)

type dessert struct {
	Name     string
	Calories int
}

func desserts() []dessert {
	return []dessert{
		{"Frozen Yogurt", 159},
		{"Ice cream sandwich", 237},
		{"Eclair", 262},
		{"Cupcake", 305},
		{"Gingerbread", 356},
	}
}

func dessertKey(d dessert) string {
	return d.Name
}

func columns() []column.Column[dessert] {
	return []column.Column[dessert]{
		column.Field[dessert]("Name", "Name"),
		column.Field[dessert]("Calories", "Calories"),
	}
}

func TestNewView(t *testing.T) {
	as := assert.New(t)

	v, err := tableview.NewView(dessertKey, columns(),
		config.ItemsPerPage(2),
		config.SortBy(order.Desc("1")),
	)
	as.NoError(err)
	as.NotNil(v)

	v.SetItems(desserts())
	as.Equal(3, v.PageCount())
	as.Equal([]dessert{
		{"Gingerbread", 356}, {"Cupcake", 305},
	}, v.Items())
}

func TestNewViewErrors(t *testing.T) {
	as := assert.New(t)

	_, err := tableview.NewView[dessert](nil, columns())
	as.ErrorIs(err, view.ErrKeyGetterRequired)

	_, err = tableview.NewView(dessertKey, columns(), config.ItemsPerPage(0))
	as.ErrorIs(err, config.ErrInvalidItemsPerPage)

	cols := columns()
	cols[1].ID = "0"
	_, err = tableview.NewView(dessertKey, cols)
	as.ErrorIs(err, view.ErrDuplicateColumnID)
}

func TestMustView(t *testing.T) {
	as := assert.New(t)

	as.NotPanics(func() {
		tableview.MustView(dessertKey, columns())
	})
	as.Panics(func() {
		tableview.MustView(dessertKey, columns(), config.ItemsPerPage(0))
	})
}

func ExampleNewView() {
	v, _ := tableview.NewView(dessertKey, columns(),
		config.ItemsPerPage(2),
		config.Filter("r"),
		config.SortBy(order.Asc("0")),
	)
	v.SetItems(desserts())
	for _, d := range v.Items() {
		fmt.Println(d.Name)
	}
	fmt.Println(v.PageIndex(), "of", v.PageCount())
	// Output:
	// Eclair
	// Frozen Yogurt
	// 1 of 2
}
