package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tableview/internal/selection"
)

func TestAddRemove(t *testing.T) {
	as := assert.New(t)

	s := selection.Make()
	as.Equal(0, s.Len())
	as.True(s.Add("b", "a"))
	as.False(s.Add("a"))
	as.True(s.Equal(selection.Make("a", "b")))
	as.Equal(2, s.Len())
	as.True(s.Has("a"))
	as.False(s.Has("c"))

	as.False(s.Remove("c"))
	as.True(s.Remove("a", "c"))
	as.True(s.Equal(selection.Make("b")))
}

func TestHasAllAny(t *testing.T) {
	as := assert.New(t)

	s := selection.Make("a", "b", "c")
	as.True(s.HasAll("a", "c"))
	as.False(s.HasAll("a", "d"))
	as.True(s.HasAll())
	as.True(s.HasAny("d", "b"))
	as.False(s.HasAny("d"))
	as.False(s.HasAny())
}

func TestClearRetain(t *testing.T) {
	as := assert.New(t)

	s := selection.Make("a", "b", "c", "d")
	as.False(s.Retain(func(string) bool { return true }))
	as.True(s.Retain(func(k string) bool { return k != "b" && k != "d" }))
	as.True(s.Equal(selection.Make("a", "c")))

	as.True(s.Clear())
	as.False(s.Clear())
	as.Equal(0, s.Len())
}

func TestReplaceEqual(t *testing.T) {
	as := assert.New(t)

	s := selection.Make("a", "b")
	as.True(s.Equal(selection.Make("b", "a")))
	as.False(s.Equal(selection.Make("a")))
	as.False(s.Equal(selection.Make("a", "c")))

	as.False(s.Replace("b", "a", "a"))
	as.True(s.Replace("c"))
	as.True(s.Equal(selection.Make("c")))
}
