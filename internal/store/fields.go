package store

import (
	"fmt"
	"reflect"
	"strings"
)

// jsonFieldName returns the json tag base name for a struct field. Fields
// without a usable tag (missing, or hidden with "-") fall back to the
// snake_case form of the Go name, the same name GORM derives for the column,
// so both backends resolve the field identically.
func jsonFieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return snakeCase(sf.Name)
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return snakeCase(sf.Name)
	}
	return tag
}

// snakeCase converts a Go field name to its snake_case column form
// (TokenHash -> token_hash, UserID -> user_id).
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || (i > 0 && nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fieldByJSONName resolves a settable struct field by its json name,
// descending into embedded structs.
func fieldByJSONName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if f, ok := fieldByJSONName(v.Field(i), name); ok {
				return f, true
			}
			continue
		}
		if jsonFieldName(sf) == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// applyFields merges a partial update into the record. The id and created_at
// fields are immutable; unknown field names are ignored.
func applyFields(rec reflect.Value, updates Fields) {
	for name, val := range updates {
		if name == "id" || name == "created_at" {
			continue
		}
		f, ok := fieldByJSONName(rec, name)
		if !ok || !f.CanSet() {
			continue
		}
		setField(f, val)
	}
}

func setField(f reflect.Value, val any) {
	if val == nil {
		if f.Kind() == reflect.Pointer {
			f.Set(reflect.Zero(f.Type()))
		}
		return
	}
	rv := reflect.ValueOf(val)
	if f.Kind() == reflect.Pointer {
		if rv.Type() == f.Type() {
			f.Set(rv)
			return
		}
		if rv.Type().ConvertibleTo(f.Type().Elem()) {
			p := reflect.New(f.Type().Elem())
			p.Elem().Set(rv.Convert(f.Type().Elem()))
			f.Set(p)
		}
		return
	}
	if rv.Type().ConvertibleTo(f.Type()) {
		f.Set(rv.Convert(f.Type()))
	}
}

// matchesAll reports whether the record satisfies every equality condition.
// Comparison is on the field's string form, which covers the id, enum and
// foreign-key fields used as secondary indexes.
func matchesAll(rec reflect.Value, matches []Match) bool {
	for _, m := range matches {
		f, ok := fieldByJSONName(rec, m.Field)
		if !ok {
			return false
		}
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				return m.Value == nil
			}
			f = f.Elem()
		}
		if m.Value == nil {
			return false
		}
		if fmt.Sprint(f.Interface()) != fmt.Sprint(m.Value) {
			return false
		}
	}
	return true
}
