package form

import "strings"

// Kind selects the widget a field renders as.
type Kind string

const (
	KindInput     Kind = "input"
	KindTextarea  Kind = "textarea"
	KindDropdown  Kind = "dropdown"
	KindTagPicker Kind = "tagpicker"
	KindFile      Kind = "file"
	KindCheckbox  Kind = "checkbox"
	KindRadio     Kind = "radio"
	KindDate      Kind = "date"
	KindRichText  Kind = "tiptap"
)

// Field describes one form control.
type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Placeholder string
	Description string
	// Options is the closed choice list of dropdown and radio fields.
	Options []string
	// TagOptions is the vocabulary offered by a tag picker.
	TagOptions []string
	// InputType is the HTML type of an input field (text, number, email, url, time).
	InputType string
	// Bucket names the storage bucket used to preview an already stored file.
	Bucket string
}

// DisplayName is the label without the trailing required marker.
func (f Field) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(f.Label), "*"))
	if name == "" {
		return f.Name
	}
	return name
}

// Values holds field values keyed by field name.
type Values map[string]any

// Clone returns a shallow copy with tag sets copied so edits never alias the source.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		switch t := val.(type) {
		case TagSet:
			out[k] = append(TagSet{}, t...)
		case []string:
			out[k] = append(TagSet{}, t...)
		default:
			out[k] = val
		}
	}
	return out
}

// FieldState is the transient UI state of a single control.
type FieldState struct {
	DialogOpen bool
	PendingTag string
}

// URLResolver turns a stored path in a bucket into a public URL.
type URLResolver func(bucket, path string) string
