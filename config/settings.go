package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/kode4food/tableview/column"
	"github.com/kode4food/tableview/order"
)

type (
	// Settings is the declarative form of a view configuration, as read from
	// a YAML, TOML, or JSON (with comments) document
	Settings struct {
		ItemsPerPage       *int     `json:"items_per_page" yaml:"items_per_page" toml:"items_per_page"`
		PageIndex          *int     `json:"page_index" yaml:"page_index" toml:"page_index"`
		TotalItems         *int     `json:"total_items" yaml:"total_items" toml:"total_items"`
		BulkSelectDisabled bool     `json:"bulk_select_disabled" yaml:"bulk_select_disabled" toml:"bulk_select_disabled"`
		Filter             string   `json:"filter" yaml:"filter" toml:"filter"`
		SortBy             []string `json:"sort_by" yaml:"sort_by" toml:"sort_by"`
		ColumnIDs          string   `json:"column_ids" yaml:"column_ids" toml:"column_ids"`
	}

	// Format identifies a settings document's encoding
	Format string
)

// Formats
const (
	YAML  Format = "yaml"
	TOML  Format = "toml"
	JSONC Format = "jsonc"
)

// Column ID strategies
const (
	ColumnIDsByIndex = "index"
	ColumnIDsByLabel = "label"
)

// Error messages
var (
	ErrUnknownFormat   = errors.New("unknown settings format")
	ErrInvalidSettings = errors.New("invalid settings")
)

// FormatOf determines a document's Format from its file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json", ".jsonc":
		return JSONC, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads a Settings document from a file, choosing the decoder by the
// file's extension
func Load(path string) (*Settings, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(f, data)
}

// Decode parses a Settings document of the given Format
func Decode(f Format, data []byte) (*Settings, error) {
	res := &Settings{}
	if err := Unmarshal(f, data, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Unmarshal decodes a document of the given Format into v
func Unmarshal(f Format, data []byte, v any) error {
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, v)
	case TOML:
		_, err = toml.Decode(string(data), v)
	case JSONC:
		err = json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data))).Decode(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// Options converts the Settings into view configuration Options
func (s *Settings) Options() ([]Option, error) {
	var res []Option
	if s.ItemsPerPage != nil {
		if err := CheckItemsPerPage(*s.ItemsPerPage); err != nil {
			return nil, err
		}
		res = append(res, ItemsPerPage(*s.ItemsPerPage))
	}
	if s.PageIndex != nil {
		res = append(res, PageIndex(*s.PageIndex))
	}
	if s.TotalItems != nil {
		res = append(res, TotalItems(*s.TotalItems))
	}
	if s.BulkSelectDisabled {
		res = append(res, BulkSelectDisabled(true))
	}
	if s.Filter != "" {
		res = append(res, Filter(s.Filter))
	}
	if len(s.SortBy) > 0 {
		by := make([]order.By, len(s.SortBy))
		for i, e := range s.SortBy {
			b, err := order.Parse(e)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
			}
			by[i] = b
		}
		res = append(res, SortBy(by...))
	}
	switch s.ColumnIDs {
	case "", ColumnIDsByIndex:
	case ColumnIDsByLabel:
		res = append(res, ColumnIDs(column.ByLabel))
	default:
		return nil, fmt.Errorf("%w: column_ids %q",
			ErrInvalidSettings, s.ColumnIDs,
		)
	}
	return res, nil
}
