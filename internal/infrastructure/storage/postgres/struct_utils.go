package postgres

import (
	"reflect"
	"sync"
)

// ExtractDBColumns lists the column names a struct maps to through its
// "db" tags, walking embedded structs. Called once per repository at
// construction.
func ExtractDBColumns[T any]() []string {
	var zero T
	return columnsOf(reflect.TypeOf(zero))
}

func columnsOf(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			cols = append(cols, columnsOf(field.Type)...)
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

type fieldInfo struct {
	index int
	dbTag string
}

type typeMeta struct {
	fields   []fieldInfo
	embedded []int
}

var typeCache sync.Map // reflect.Type -> *typeMeta

func metaOf(t reflect.Type) *typeMeta {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := typeCache.Load(t); ok {
		return cached.(*typeMeta)
	}

	meta := &typeMeta{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.Anonymous {
				meta.embedded = append(meta.embedded, i)
				continue
			}
			tag := field.Tag.Get("db")
			if tag == "" || tag == "-" {
				continue
			}
			meta.fields = append(meta.fields, fieldInfo{index: i, dbTag: tag})
		}
	}

	typeCache.Store(t, meta)
	return meta
}

// StructToMap converts a struct into a column -> value map using "db"
// tags. Metadata is cached per type so repeated calls skip reflection of
// the shape.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	meta := metaOf(rv.Type())
	res := make(map[string]any, len(meta.fields))

	for _, fi := range meta.fields {
		res[fi.dbTag] = rv.Field(fi.index).Interface()
	}
	for _, idx := range meta.embedded {
		for k, val := range StructToMap(rv.Field(idx).Interface()) {
			res[k] = val
		}
	}
	return res
}
