package form

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Strings encodes a field value in its wire form. Nil pointers and empty
// strings encode to nothing so optional fields stay unset after coercion.
func Strings(v any) []string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return Strings(rv.Elem().Interface())
	}

	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case TagSet:
		return t.Strings()
	case []string:
		return append([]string{}, t...)
	case bool:
		return []string{strconv.FormatBool(t)}
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return []string{t.Format(DateLayout)}
	case File:
		if t.Path == "" {
			return nil
		}
		return []string{t.Path}
	case fmt.Stringer:
		return Strings(t.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, Strings(rv.Index(i).Interface())...)
		}
		return out
	case reflect.String:
		return Strings(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return []string{strconv.FormatInt(rv.Int(), 10)}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return []string{strconv.FormatUint(rv.Uint(), 10)}
	case reflect.Float32, reflect.Float64:
		return []string{strconv.FormatFloat(rv.Float(), 'f', -1, 64)}
	}
	return []string{fmt.Sprint(v)}
}

// Text is the single-line wire form of a value.
func Text(v any) string {
	s := Strings(v)
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

func tagsOf(v any) TagSet {
	return NewTagSet(Strings(v)...)
}

func boolOf(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case *bool:
		return t != nil && *t
	}
	b, _ := strconv.ParseBool(Text(v))
	return b
}

func fileOf(v any) File {
	switch t := v.(type) {
	case File:
		return t
	case *File:
		if t != nil {
			return *t
		}
	case string:
		return Stored(t)
	case *string:
		if t != nil {
			return Stored(*t)
		}
	}
	return File{}
}
