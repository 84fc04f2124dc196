package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/config"
)

const dessertsYAML = `
- id: 1
  name: Frozen Yogurt
  calories: 159
- id: 2
  name: Ice cream sandwich
  calories: 237
- id: 3
  name: Eclair
  calories: 262
- id: 4
  name: Cupcake
  calories: 305
- id: 5
  name: Gingerbread
  calories: 356
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func names(items []record) []string {
	res := make([]string, len(items))
	for i, r := range items {
		res[i] = r.fields["name"].(string)
	}
	return res
}

func TestDecodeRecords(t *testing.T) {
	as := assert.New(t)

	r, err := decodeRecords(config.YAML, []byte(dessertsYAML))
	as.NoError(err)
	as.Len(r, 5)
	as.Equal(1, r[1].position)
	v, ok := r[2].Field("name")
	as.True(ok)
	as.Equal("Eclair", v)

	r, err = decodeRecords(config.JSONC, []byte(`[
		// leading comment
		{"id": "a", "name": "Donut"},
		{"id": "b", "name": "KitKat"},
	]`))
	as.NoError(err)
	as.Equal([]string{"Donut", "KitKat"}, names(r))

	r, err = decodeRecords(config.TOML, []byte(`
[[items]]
id = 1
name = "Lollipop"

[[items]]
id = 2
name = "Honeycomb"
`))
	as.NoError(err)
	as.Equal([]string{"Lollipop", "Honeycomb"}, names(r))

	_, err = decodeRecords(config.YAML, []byte(`[]`))
	as.ErrorIs(err, errNoItems)

	_, err = decodeRecords(config.JSONC, []byte(`{"not": "a list"}`))
	as.ErrorIs(err, config.ErrInvalidSettings)
}

func TestRecordKey(t *testing.T) {
	as := assert.New(t)
	key := recordKey("id")

	as.Equal("3", key(record{fields: map[string]any{"id": 3}}))
	as.Equal("abc", key(record{fields: map[string]any{"id": "abc"}}))
	as.Equal("#7", key(record{fields: map[string]any{}, position: 7}))
	as.Equal("#2", key(record{
		fields: map[string]any{"id": nil}, position: 2,
	}))
}

func TestFieldNames(t *testing.T) {
	as := assert.New(t)
	r := []record{
		{fields: map[string]any{"name": "a", "id": 1}},
		{fields: map[string]any{"fat": 1.0, "name": "b"}},
	}
	as.Equal([]string{"fat", "id", "name"}, fieldNames(r))
}

func TestBuildColumns(t *testing.T) {
	as := assert.New(t)

	cols := buildColumns(
		[]string{"id", "name=Dessert", "calories=Cal"},
		[]string{"name"}, 10,
	)
	as.Len(cols, 3)
	as.Equal(column.ID("name"), cols[1].ID)
	as.Equal("Dessert", cols[1].Label)
	as.Equal("name", cols[1].Key)
	as.Equal("id", cols[0].Label)
	as.Equal(column.AlignRight, cols[0].Align)
	as.Equal(column.AlignLeft, cols[2].Align)
	as.False(cols[0].Filterable)
	as.True(cols[1].Filterable)
	as.True(cols[2].Sortable)
	as.Equal(10, cols[2].Width)

	cols = buildColumns([]string{"id", "name"}, nil, 0)
	as.True(cols[0].Filterable)
	as.True(cols[1].Filterable)
}

func TestColumnWidth(t *testing.T) {
	as := assert.New(t)
	as.Equal(0, columnWidth(0, 3))
	as.Equal(0, columnWidth(80, 0))
	as.Equal(37, columnWidth(80, 2))
	as.Equal(4, columnWidth(20, 10))
}

func TestBuildView(t *testing.T) {
	as := assert.New(t)
	path := writeFile(t, "desserts.yaml", dessertsYAML)

	v, err := buildView(&options{
		items:      path,
		key:        "id",
		sortBy:     []string{"calories:desc"},
		perPage:    2,
		perPageSet: true,
		selected:   []string{"5", "missing"},
	}, nil)
	as.NoError(err)
	as.Equal(3, v.PageCount())
	as.Equal([]string{"Gingerbread", "Cupcake"}, names(v.Items()))
	as.Equal([]string{"5"}, v.SelectedKeys())

	v, err = buildView(&options{
		items:      path,
		key:        "id",
		filter:     "ice",
		filterable: []string{"name"},
		columns:    []string{"name=Dessert", "calories"},
	}, nil)
	as.NoError(err)
	as.Equal([]string{"Ice cream sandwich"}, names(v.Items()))
	as.Equal("Dessert", v.Columns()[0].Label)
}

func TestBuildViewSettings(t *testing.T) {
	as := assert.New(t)
	items := writeFile(t, "desserts.yaml", dessertsYAML)
	settings := writeFile(t, "view.toml", `
items_per_page = 2
page_index = 2
sort_by = ["name"]
`)

	v, err := buildView(&options{
		items: items, settings: settings, key: "id",
	}, nil)
	as.NoError(err)
	as.Equal(2, v.PageIndex())
	as.Equal([]string{"Frozen Yogurt", "Gingerbread"}, names(v.Items()))

	v, err = buildView(&options{
		items: items, settings: settings, key: "id",
		page: 3, pageSet: true,
	}, nil)
	as.NoError(err)
	as.Equal(3, v.PageIndex())
	as.Equal([]string{"Ice cream sandwich"}, names(v.Items()))
}

func TestBuildViewErrors(t *testing.T) {
	as := assert.New(t)
	items := writeFile(t, "desserts.yaml", dessertsYAML)

	_, err := buildView(&options{items: "desserts.csv", key: "id"}, nil)
	as.ErrorIs(err, config.ErrUnknownFormat)

	_, err = buildView(&options{
		items: items, key: "id", sortBy: []string{"name:sideways"},
	}, nil)
	as.Error(err)

	_, err = buildView(&options{
		items: items, key: "id", perPage: 0, perPageSet: true,
	}, nil)
	as.ErrorIs(err, config.ErrInvalidItemsPerPage)
}

func TestRunRequiresItems(t *testing.T) {
	as := assert.New(t)
	as.ErrorIs(run(nil), errItemsRequired)
	as.NoError(run([]string{"--help"}))
}
