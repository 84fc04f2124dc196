package filter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/internal/filter"
)

type dessert struct {
	Name     string
	Calories int
	Vegan    bool
}

var desserts = []dessert{
	{Name: "Frozen Yogurt", Calories: 159},
	{Name: "Eclair", Calories: 262},
	{Name: "Donut", Calories: 452, Vegan: true},
	{Name: "KitKat", Calories: 518},
}

func names(items []dessert) []string {
	res := make([]string, len(items))
	for i, d := range items {
		res[i] = d.Name
	}
	return res
}

func TestNoFilterableColumns(t *testing.T) {
	as := assert.New(t)

	cols := []column.Column[dessert]{
		{Label: "Name", Key: "Name"},
	}
	res := filter.Apply(desserts, cols, "zzz")
	as.Equal(desserts, res)
	as.Equal(uint64(len(desserts)), filter.Mask(desserts, cols, "zzz").GetCardinality())

	as.Equal(desserts, filter.Apply(desserts, nil, "zzz"))
}

func TestDefaultPredicate(t *testing.T) {
	as := assert.New(t)

	cols := []column.Column[dessert]{
		column.Field[dessert]("Name", "Name"),
	}
	as.Equal(
		[]string{"Eclair"},
		names(filter.Apply(desserts[1:3], cols, "e")),
	)
	as.Equal(
		[]string{"Frozen Yogurt", "Eclair"},
		names(filter.Apply(desserts, cols, "E")),
	)
	as.Empty(filter.Apply(desserts, cols, "xyz"))
	as.Equal(desserts, filter.Apply(desserts, cols, ""))
}

func TestDefaultPredicateValueTypes(t *testing.T) {
	as := assert.New(t)

	cols := []column.Column[dessert]{
		column.Field[dessert]("Calories", "Calories"),
		column.Field[dessert]("Vegan", "Vegan"),
	}
	as.Equal(
		[]string{"Eclair", "Donut"},
		names(filter.Apply(desserts, cols, 2)),
	)
	as.Equal(
		[]string{"Donut"},
		names(filter.Apply(desserts, cols, true)),
	)

	// values the default predicate doesn't understand keep every item
	as.Equal(desserts, filter.Apply(desserts, cols, nil))
	as.Equal(desserts, filter.Apply(desserts, cols, []string{"x"}))
}

func TestRowLevelOr(t *testing.T) {
	as := assert.New(t)

	cols := []column.Column[dessert]{
		column.Field[dessert]("Name", "Name"),
		{
			Label:      "Calories",
			Filterable: true,
			Filter: func(d dessert, v any) bool {
				return d.Calories > 500
			},
		},
	}
	as.Equal(
		[]string{"Eclair", "KitKat"},
		names(filter.Apply(desserts, cols, "clai")),
	)
}

func TestCustomFilterIgnoredUnlessFilterable(t *testing.T) {
	as := assert.New(t)

	cols := []column.Column[dessert]{
		column.Field[dessert]("Name", "Name"),
		{
			Label: "Never",
			Filter: func(dessert, any) bool {
				return true
			},
		},
	}
	as.Equal([]string{"Donut"}, names(filter.Apply(desserts, cols, "nut")))
}

func TestCustomFilterReceivesValue(t *testing.T) {
	as := assert.New(t)

	type bounds struct{ min, max int }
	cols := []column.Column[dessert]{
		{
			Filterable: true,
			Filter: func(d dessert, v any) bool {
				b := v.(bounds)
				return d.Calories >= b.min && d.Calories <= b.max
			},
		},
	}
	res := filter.Apply(desserts, cols, bounds{200, 500})
	as.Equal([]string{"Eclair", "Donut"}, names(res))
}

func TestColumnWithoutValue(t *testing.T) {
	as := assert.New(t)

	cols := []column.Column[dessert]{
		{Label: "Empty", Filterable: true},
	}
	as.Equal(desserts, filter.Apply(desserts, cols, ""))
	as.Empty(filter.Apply(desserts, cols, "a"))
}

func TestMonotonicity(t *testing.T) {
	as := assert.New(t)

	cols := []column.Column[dessert]{
		column.Field[dessert]("Name", "Name"),
		column.Field[dessert]("Calories", "Calories"),
	}
	all := strings.Join(names(desserts), "|")
	for _, q := range []any{"", "a", "o", "e", "5", 1, false, "zz"} {
		res := filter.Apply(desserts, cols, q)
		as.LessOrEqual(len(res), len(desserts))
		for _, n := range names(res) {
			as.Contains(all, n)
		}
		mask := filter.Mask(desserts, cols, q)
		as.Equal(uint64(len(res)), mask.GetCardinality())
	}
}

func TestQuery(t *testing.T) {
	as := assert.New(t)

	q, ok := filter.Query("ÉCLAIR")
	as.True(ok)
	as.Equal("éclair", q)

	q, ok = filter.Query(3.5)
	as.True(ok)
	as.Equal("3.5", q)

	_, ok = filter.Query(struct{}{})
	as.False(ok)
}
