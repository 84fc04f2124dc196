package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/order"
)

type (
	// Config conveys the properties of a View that one can configure using
	// Options
	Config struct {
		Filter             any
		Logger             *slog.Logger
		ColumnIDs          column.IDGetter
		SortBy             []order.By
		ItemsPerPage       int
		PageIndex          int
		TotalItems         int
		BulkSelectDisabled bool
	}

	// Option applies an option to a view configuration instance
	Option func(*Config) error
)

// Defaults
const (
	DefaultItemsPerPage = 10
	DefaultPageIndex    = 1

	// Unpaginated disables pagination when used as the items per page
	Unpaginated = -1

	// DeriveTotal has the page count derived from the items themselves
	DeriveTotal = -1
)

// Error messages
var (
	ErrInvalidItemsPerPage = errors.New("items per page must be non-zero")
	ErrInvalidTotalItems   = errors.New("total items must not be negative")
)

// Defaults applies the default configuration values
func Defaults(c *Config) error {
	c.ItemsPerPage = DefaultItemsPerPage
	c.PageIndex = DefaultPageIndex
	c.TotalItems = DeriveTotal
	c.ColumnIDs = column.ByIndex
	c.Logger = slog.Default()
	return nil
}

// Make builds a Config by applying the Defaults followed by each Option
func Make(o ...Option) (*Config, error) {
	res := &Config{}
	if err := Defaults(res); err != nil {
		return nil, err
	}
	for _, opt := range o {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ItemsPerPage sets the page size. A negative size disables pagination
func ItemsPerPage(n int) Option {
	return func(c *Config) error {
		if err := CheckItemsPerPage(n); err != nil {
			return err
		}
		c.ItemsPerPage = n
		return nil
	}
}

// CheckItemsPerPage validates a page size
func CheckItemsPerPage(n int) error {
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidItemsPerPage, n)
	}
	return nil
}

// PageIndex sets the initial 1-based page index. It is clamped once the
// view derives its pages
func PageIndex(i int) Option {
	return func(c *Config) error {
		c.PageIndex = i
		return nil
	}
}

// Filter sets the initial filter value
func Filter(v any) Option {
	return func(c *Config) error {
		c.Filter = v
		return nil
	}
}

// SortBy sets the initial sort descriptors, in priority order
func SortBy(b ...order.By) Option {
	return func(c *Config) error {
		c.SortBy = append([]order.By(nil), b...)
		return nil
	}
}

// BulkSelectDisabled turns off the select-all affordances
func BulkSelectDisabled(disabled bool) Option {
	return func(c *Config) error {
		c.BulkSelectDisabled = disabled
		return nil
	}
}

// TotalItems defers the page count to an externally known total. The items
// given to the view are then treated as the current page
func TotalItems(n int) Option {
	return func(c *Config) error {
		if n < 0 && n != DeriveTotal {
			return fmt.Errorf("%w: %d", ErrInvalidTotalItems, n)
		}
		c.TotalItems = n
		return nil
	}
}

// ColumnIDs sets how IDs are derived for columns that don't declare one
func ColumnIDs(get column.IDGetter) Option {
	return func(c *Config) error {
		c.ColumnIDs = get
		return nil
	}
}

// Logger sets the logger that the view reports through
func Logger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}
