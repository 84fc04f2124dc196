package config_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/config"
	"github.com/kode4food/tableview/order"
)

func TestDefaults(t *testing.T) {
	as := assert.New(t)

	c, err := config.Make()
	as.Nil(err)
	as.Equal(config.DefaultItemsPerPage, c.ItemsPerPage)
	as.Equal(config.DefaultPageIndex, c.PageIndex)
	as.Equal(config.DeriveTotal, c.TotalItems)
	as.NotNil(c.Logger)
	as.NotNil(c.ColumnIDs)
	as.Nil(c.Filter)
	as.Empty(c.SortBy)
	as.False(c.BulkSelectDisabled)

	c2, err := config.Make(config.Defaults, config.Defaults)
	as.Nil(err)
	as.Equal(c.ItemsPerPage, c2.ItemsPerPage)
}

func TestOptions(t *testing.T) {
	as := assert.New(t)

	log := slog.New(slog.DiscardHandler)
	c, err := config.Make(
		config.ItemsPerPage(config.Unpaginated),
		config.PageIndex(4),
		config.Filter("eclair"),
		config.SortBy(order.Asc("name"), order.Desc("cal")),
		config.BulkSelectDisabled(true),
		config.TotalItems(100),
		config.ColumnIDs(column.ByLabel),
		config.Logger(log),
	)
	as.Nil(err)
	as.Equal(config.Unpaginated, c.ItemsPerPage)
	as.Equal(4, c.PageIndex)
	as.Equal("eclair", c.Filter)
	as.Equal([]order.By{order.Asc("name"), order.Desc("cal")}, c.SortBy)
	as.True(c.BulkSelectDisabled)
	as.Equal(100, c.TotalItems)
	as.Equal(column.ID("Name"), c.ColumnIDs("Name", 3))
	as.Same(log, c.Logger)
}

func TestBadOptions(t *testing.T) {
	as := assert.New(t)

	c, err := config.Make(config.ItemsPerPage(0))
	as.Nil(c)
	as.ErrorIs(err, config.ErrInvalidItemsPerPage)

	c, err = config.Make(config.TotalItems(-3))
	as.Nil(c)
	as.ErrorIs(err, config.ErrInvalidTotalItems)

	_, err = config.Make(config.TotalItems(config.DeriveTotal))
	as.Nil(err)
}

func TestOptionError(t *testing.T) {
	as := assert.New(t)

	boom := errors.New("boom")
	c, err := config.Make(func(*config.Config) error {
		return boom
	})
	as.Nil(c)
	as.ErrorIs(err, boom)
}
