package store

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// MarshalCSV renders a record slice as comma-separated text: a header row of
// column names followed by one row per record, columns in struct declaration
// order. Column names reuse the json tags so export headers match the
// persisted field keys. An empty slice yields an empty string.
//
// Field values are written verbatim: embedded commas, quotes and newlines
// are NOT escaped. This matches the site's export behavior and is a known
// limitation, not an oversight — do not feed the output to a strict CSV
// parser if note fields may contain commas.
func MarshalCSV[T any](recs []T) string {
	if len(recs) == 0 {
		return ""
	}

	typ := reflect.TypeOf(recs[0])
	names, idx := columns(typ)

	var b strings.Builder
	b.WriteString(strings.Join(names, ","))
	for _, rec := range recs {
		v := reflect.ValueOf(rec)
		row := make([]string, len(idx))
		for i, fi := range idx {
			row[i] = formatValue(v.Field(fi))
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// columns returns the header names and field indices of typ's exported,
// non-skipped fields in declaration order.
func columns(typ reflect.Type) (names []string, idx []int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag != "" {
			if tag == "-" {
				continue
			}
			name = tag
		}
		names = append(names, name)
		idx = append(idx, i)
	}
	return names, idx
}

func formatValue(v reflect.Value) string {
	if t, ok := v.Interface().(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprint(v.Interface())
	}
}
