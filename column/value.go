package column

import (
	"reflect"
	"strconv"
	"strings"
)

type (
	// Value is a resolved column value. Once normalized it is always one of
	// nil, string, bool, int64, uint64, or float64
	Value any

	// Fielder is implemented by items that expose their fields by name.
	// It is consulted before maps and struct reflection
	Fielder interface {
		Field(name string) (any, bool)
	}
)

// TagName is the struct tag consulted when resolving a column Key
const TagName = "table"

// Resolve returns the column's value for an item. The ValueGetter is used
// when present, otherwise the field named by Key is read. Values that are
// not strings, numbers, booleans, or nil resolve to nil
func Resolve[Item any](c *Column[Item], item Item) Value {
	switch {
	case c.ValueGetter != nil:
		return Normalize(c.ValueGetter(item))
	case c.Key != "":
		if v, ok := Lookup(item, c.Key); ok {
			return Normalize(v)
		}
	}
	return nil
}

// Lookup reads a named field from an item
func Lookup(item any, key string) (any, bool) {
	if f, ok := item.(Fielder); ok {
		return f.Field(key)
	}
	if m, ok := item.(map[string]any); ok {
		v, ok := m[key]
		return v, ok
	}
	return lookupReflect(reflect.ValueOf(item), key)
}

func lookupReflect(v reflect.Value, key string) (any, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		e := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if f.Name == key || tagName(f.Tag.Get(TagName)) == key {
				return v.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// Normalize converts a raw value into a comparable Value, or nil if the
// value can't take part in ordering or filtering
func Normalize(v any) Value {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return v
	case bool:
		return v
	case int:
		return int64(v)
	case int64:
		return v
	case uint64:
		return v
	case float64:
		return v
	}
	r := reflect.ValueOf(v)
	switch r.Kind() {
	case reflect.String:
		return r.String()
	case reflect.Bool:
		return r.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return r.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return r.Uint()
	case reflect.Float32, reflect.Float64:
		return r.Float()
	case reflect.Pointer, reflect.Interface:
		if r.IsNil() {
			return nil
		}
		return Normalize(r.Elem().Interface())
	default:
		return nil
	}
}

// Text renders a normalized Value the way it is matched by the default
// filter predicate. Nil renders as the empty string
func Text(v Value) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
