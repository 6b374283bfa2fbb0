package form

import (
	"bytes"
	"errors"
	"html/template"
	"mime/multipart"
	"reflect"
	"strings"
)

// ErrInvalid is returned by Handle when the values fail validation.
var ErrInvalid = errors.New("form: validation failed")

// Form binds a field list, a schema and a default-value map into a stateful
// editing session.
type Form[T any] struct {
	Fields  []Field
	Values  Values
	State   map[string]*FieldState
	Errors  map[string]string
	Resolve URLResolver

	schema   *Schema[T]
	defaults Values
}

func New[T any](fields []Field, defaults Values) *Form[T] {
	f := &Form[T]{
		Fields: fields,
		State:  map[string]*FieldState{},
		Errors: map[string]string{},
		schema: SchemaOf[T](),
	}
	f.SetDefaults(defaults)
	return f
}

// SetDefaults resets values and per-field state to defaults when the map
// differs from the one currently in use. Re-supplying the same map keeps
// in-progress edits.
func (f *Form[T]) SetDefaults(defaults Values) {
	if f.defaults != nil && defaults != nil && sameMap(f.defaults, defaults) {
		return
	}
	if defaults == nil {
		defaults = Values{}
	}
	f.defaults = defaults
	f.Values = defaults.Clone()
	f.State = map[string]*FieldState{}
	f.Errors = map[string]string{}
}

func sameMap(a, b Values) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}

func (f *Form[T]) Schema() *Schema[T] { return f.schema }

func (f *Form[T]) field(name string) (Field, bool) {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return Field{}, false
}

func (f *Form[T]) state(name string) *FieldState {
	s, ok := f.State[name]
	if !ok {
		s = &FieldState{}
		f.State[name] = s
	}
	return s
}

// Apply merges a post into the form values. When the post carries a tag
// picker action the action is performed and Apply reports true; the caller
// then re-renders instead of submitting.
func (f *Form[T]) Apply(p *multipart.Form) bool {
	if p == nil {
		return false
	}
	for _, fd := range f.Fields {
		if v, ok := WidgetFor(fd.Kind).Extract(fd, p); ok {
			f.Values[fd.Name] = v
		}
		if fd.Kind == KindTagPicker {
			if pending := p.Value["_newtag."+fd.Name]; len(pending) > 0 {
				f.state(fd.Name).PendingTag = pending[len(pending)-1]
			}
		}
	}
	actions := p.Value["_action"]
	if len(actions) == 0 {
		return false
	}
	return f.Act(actions[len(actions)-1])
}

// Act performs a tag picker action of the form "verb:field[:tag]".
func (f *Form[T]) Act(action string) bool {
	parts := strings.SplitN(action, ":", 3)
	if len(parts) < 2 {
		return false
	}
	verb, name := parts[0], parts[1]
	fd, ok := f.field(name)
	if !ok || fd.Kind != KindTagPicker {
		return false
	}
	tag := ""
	if len(parts) == 3 {
		tag = parts[2]
	}
	st := f.state(name)
	tags := tagsOf(f.Values[name])
	switch verb {
	case "add":
		if tags.Add(st.PendingTag) {
			st.PendingTag = ""
		}
		st.DialogOpen = true
	case "remove":
		tags.Remove(tag)
		st.DialogOpen = true
	case "toggle":
		tags.Toggle(tag)
		st.DialogOpen = true
	case "open":
		st.DialogOpen = true
	case "close":
		st.DialogOpen = false
	default:
		return false
	}
	f.Values[name] = tags
	return true
}

// Submit validates the current values. On failure the per-field messages
// are kept in Errors and nil is returned.
func (f *Form[T]) Submit() (*T, bool) {
	labels := make(map[string]string, len(f.Fields))
	for _, fd := range f.Fields {
		labels[fd.Name] = fd.DisplayName()
	}
	out, errs := f.schema.Parse(f.Values, labels)
	f.Errors = errs
	if errs == nil {
		f.Errors = map[string]string{}
	}
	return out, out != nil
}

// Handle runs fn with the validated data. fn is never called on invalid input.
func (f *Form[T]) Handle(fn func(*T) error) error {
	out, ok := f.Submit()
	if !ok {
		return ErrInvalid
	}
	return fn(out)
}

// Valid reports whether the last submit produced no errors.
func (f *Form[T]) Valid() bool { return len(f.Errors) == 0 }

type RenderOptions struct {
	Action     string
	SubmitText string
}

type fieldView struct {
	Control
	Widget template.HTML
}

// Render produces the form markup: one labelled control per field, in
// declaration order, followed by the submit button.
func (f *Form[T]) Render(opts RenderOptions) (template.HTML, error) {
	if opts.SubmitText == "" {
		opts.SubmitText = "Submit"
	}
	rendered := make([]template.HTML, 0, len(f.Fields))
	richText := false
	for _, fd := range f.Fields {
		c := Control{
			Field:   fd,
			ID:      "field-" + fd.Name,
			Value:   f.Values[fd.Name],
			Error:   f.Errors[fd.Name],
			Resolve: f.Resolve,
		}
		if st, ok := f.State[fd.Name]; ok {
			c.State = *st
		}
		w, err := WidgetFor(fd.Kind).Render(c)
		if err != nil {
			return "", err
		}
		html, err := execute("field", fieldView{Control: c, Widget: w})
		if err != nil {
			return "", err
		}
		rendered = append(rendered, html)
		richText = richText || fd.Kind == KindRichText
	}
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "form", map[string]any{
		"Action":     opts.Action,
		"SubmitText": opts.SubmitText,
		"FormError":  f.Errors["_form"],
		"Fields":     rendered,
		"RichText":   richText,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
