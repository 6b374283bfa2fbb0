package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// DateLayout is the wire format of date fields.
const DateLayout = "2006-01-02"

var (
	decoder  = newDecoder()
	validate = newValidator()
	schemas  sync.Map
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, func(s string) reflect.Value {
		if s == "" {
			return reflect.ValueOf(time.Time{})
		}
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})
	return d
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("schema"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type schemaField struct {
	name    string
	index   []int
	typ     reflect.Type
	message string
	file    *FileRule
}

// Schema is the reflected coercion and validation contract of T, keyed by
// the `schema` tag of each field.
type Schema[T any] struct {
	fields []schemaField
	byName map[string]*schemaField
}

// SchemaOf returns the cached schema of T. It panics on a malformed `file` tag.
func SchemaOf[T any]() *Schema[T] {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if s, ok := schemas.Load(typ); ok {
		return s.(*Schema[T])
	}
	s := &Schema[T]{byName: map[string]*schemaField{}}
	// Embedded structs contribute their fields as if declared on T.
	for _, sf := range reflect.VisibleFields(typ) {
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("schema"), ",")
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		f := schemaField{name: name, index: sf.Index, typ: sf.Type, message: sf.Tag.Get("message")}
		if sf.Type == reflect.TypeOf(File{}) {
			rule, err := ParseFileRule(sf.Tag.Get("file"))
			if err != nil {
				panic(fmt.Sprintf("form: %s.%s: %v", typ.Name(), sf.Name, err))
			}
			f.file = &rule
		}
		s.fields = append(s.fields, f)
	}
	for i := range s.fields {
		s.byName[s.fields[i].name] = &s.fields[i]
	}
	actual, _ := schemas.LoadOrStore(typ, s)
	return actual.(*Schema[T])
}

// Has reports whether the schema declares a key.
func (s *Schema[T]) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Check verifies that every field has a schema key.
func (s *Schema[T]) Check(fields []Field) error {
	var errs []error
	for _, f := range fields {
		if !s.Has(f.Name) {
			errs = append(errs, fmt.Errorf("field %q has no schema key", f.Name))
		}
	}
	return errors.Join(errs...)
}

// Parse coerces values into T and validates it. The returned map holds one
// message per failing schema key.
func (s *Schema[T]) Parse(values Values, labels map[string]string) (*T, map[string]string) {
	out := new(T)
	errs := map[string]string{}
	label := func(name string) string {
		if l, ok := labels[name]; ok && l != "" {
			return l
		}
		return name
	}

	src := map[string][]string{}
	for _, f := range s.fields {
		if f.file != nil {
			continue
		}
		if vals := Strings(values[f.name]); len(vals) > 0 {
			src[f.name] = vals
		}
	}
	if err := decoder.Decode(out, src); err != nil {
		var multi schema.MultiError
		if !errors.As(err, &multi) {
			errs["_form"] = err.Error()
			return nil, errs
		}
		for key := range multi {
			f, ok := s.byName[key]
			if !ok {
				errs[key] = "Invalid value"
				continue
			}
			errs[key] = s.message(f, coercionMessage(label(key), f.typ))
		}
	}

	rv := reflect.ValueOf(out).Elem()
	for _, f := range s.fields {
		fv := rv.FieldByIndex(f.index)
		switch {
		case f.file != nil:
			file, _ := values[f.name].(File)
			fv.Set(reflect.ValueOf(file))
			if _, failed := errs[f.name]; !failed {
				if msg := f.file.Check(file); msg != "" {
					errs[f.name] = msg
				}
			}
		case fv.Kind() == reflect.Slice && fv.IsNil():
			fv.Set(reflect.MakeSlice(fv.Type(), 0, 0))
		}
	}

	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs["_form"] = err.Error()
			return nil, errs
		}
		for _, fe := range verrs {
			key := fe.Field()
			if _, failed := errs[key]; failed {
				continue
			}
			f := s.byName[key]
			errs[key] = s.message(f, ruleMessage(label(key), fe))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (s *Schema[T]) message(f *schemaField, fallback string) string {
	if f != nil && f.message != "" {
		return f.message
	}
	return fallback
}

func coercionMessage(label string, t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch {
	case t == reflect.TypeOf(time.Time{}):
		return label + " must be a valid date"
	case t.Kind() >= reflect.Int && t.Kind() <= reflect.Uint64:
		return label + " must be a whole number"
	case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
		return label + " must be a number"
	case t.Kind() == reflect.Bool:
		return label + " must be true or false"
	}
	return label + " is invalid"
}

func ruleMessage(label string, fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	isList := fe.Kind() == reflect.Slice
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return label + " is required"
	case "min", "gte":
		switch {
		case isText:
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		case isList:
			return fmt.Sprintf("%s must have at least %s item(s)", label, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", label, fe.Param())
	case "max", "lte":
		switch {
		case isText:
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		case isList:
			return fmt.Sprintf("%s must have at most %s item(s)", label, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return label + " must be a valid email"
	case "url", "http_url":
		return label + " must be a valid URL"
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", label, fe.Param())
	case "gtefield", "gtfield":
		return fmt.Sprintf("%s must not be before %s", label, fe.Param())
	}
	return label + " is invalid"
}
