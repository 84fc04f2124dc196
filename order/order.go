package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kode4food/tableview/column"
)

type (
	// By is one entry in an ordered sort-priority list. The first entry of a
	// list is the primary sort key
	By struct {
		Column    column.ID `json:"column" yaml:"column" toml:"column"`
		Direction Direction `json:"direction" yaml:"direction" toml:"direction"`
	}

	// Direction is the direction in which a column is sorted
	Direction int
)

// Directions
const (
	Ascending Direction = iota
	Descending
)

// ErrInvalidDirection is raised when a textual sort direction isn't one of
// the recognized forms
var ErrInvalidDirection = errors.New("invalid sort direction")

// Asc returns an ascending sort descriptor for a column
func Asc(id column.ID) By {
	return By{Column: id, Direction: Ascending}
}

// Desc returns a descending sort descriptor for a column
func Desc(id column.ID) By {
	return By{Column: id, Direction: Descending}
}

// Parse converts the textual form "id" or "id:dir" into a descriptor. The
// direction is one of asc, ascending, desc, or descending
func Parse(s string) (By, error) {
	id, dir, found := strings.Cut(s, ":")
	if !found {
		return Asc(column.ID(id)), nil
	}
	d, err := ParseDirection(dir)
	if err != nil {
		return By{}, err
	}
	return By{Column: column.ID(id), Direction: d}, nil
}

// ParseDirection converts a textual direction into a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %s", ErrInvalidDirection, s)
	}
}

// Apply orients a comparison result in the descriptor's direction
func (d Direction) Apply(res int) int {
	if d == Descending {
		return -res
	}
	return res
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func (b By) String() string {
	return fmt.Sprintf("%s:%s", b.Column, b.Direction)
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(b []byte) error {
	res, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = res
	return nil
}
