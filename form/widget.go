package form

import (
	"bytes"
	"html/template"
	"mime/multipart"
	"strings"
)

// Control is what a widget sees while rendering one field.
type Control struct {
	Field   Field
	ID      string
	Value   any
	Error   string
	State   FieldState
	Resolve URLResolver
}

func (c Control) Text() string { return Text(c.Value) }

func (c Control) Tags() TagSet { return tagsOf(c.Value) }

func (c Control) Has(tag string) bool { return c.Tags().Has(tag) }

func (c Control) Checked() bool { return boolOf(c.Value) }

func (c Control) File() File { return fileOf(c.Value) }

// Preview is the public URL of an already stored file, if any.
func (c Control) Preview() string {
	f := c.File()
	if f.Path == "" || c.Resolve == nil {
		return ""
	}
	return c.Resolve(c.Field.Bucket, f.Path)
}

// Badge renders a tag. The amenities picker shows icons for known amenities.
func (c Control) Badge(tag string) template.HTML {
	if c.Field.Name == "amenities" {
		return AmenityBadge(tag)
	}
	return template.HTML(template.HTMLEscapeString(tag))
}

func (c Control) InputType() string {
	if c.Field.InputType == "" {
		return "text"
	}
	return c.Field.InputType
}

// Widget renders a field kind and extracts its posted value.
type Widget interface {
	Render(c Control) (template.HTML, error)
	// Extract returns the posted value, or false when the post carries none.
	Extract(f Field, p *multipart.Form) (any, bool)
}

var registry = map[Kind]Widget{
	KindInput:     textWidget{tmpl: "input", trim: true},
	KindTextarea:  textWidget{tmpl: "textarea"},
	KindDropdown:  textWidget{tmpl: "dropdown", trim: true},
	KindRadio:     textWidget{tmpl: "radio", trim: true},
	KindDate:      textWidget{tmpl: "date", trim: true},
	KindRichText:  richTextWidget{},
	KindCheckbox:  checkboxWidget{},
	KindTagPicker: tagPickerWidget{},
	KindFile:      fileWidget{},
}

// Register installs or replaces the widget of a kind.
func Register(kind Kind, w Widget) {
	registry[kind] = w
}

// WidgetFor falls back to a textarea for unknown kinds.
func WidgetFor(kind Kind) Widget {
	if w, ok := registry[kind]; ok {
		return w
	}
	return registry[KindTextarea]
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

type textWidget struct {
	tmpl string
	trim bool
}

func (w textWidget) Render(c Control) (template.HTML, error) {
	return execute(w.tmpl, c)
}

func (w textWidget) Extract(f Field, p *multipart.Form) (any, bool) {
	vals, ok := p.Value[f.Name]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	v := vals[len(vals)-1]
	if w.trim {
		v = strings.TrimSpace(v)
	}
	return v, true
}

type checkboxWidget struct{}

func (checkboxWidget) Render(c Control) (template.HTML, error) {
	return execute("checkbox", c)
}

// Extract reads the last posted value: the hidden "false" is followed by
// "true" when the box is ticked.
func (checkboxWidget) Extract(f Field, p *multipart.Form) (any, bool) {
	vals, ok := p.Value[f.Name]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	return boolOf(vals[len(vals)-1]) || vals[len(vals)-1] == "on", true
}

type tagPickerWidget struct{}

func (tagPickerWidget) Render(c Control) (template.HTML, error) {
	return execute("tagpicker", c)
}

func (tagPickerWidget) Extract(f Field, p *multipart.Form) (any, bool) {
	vals, ok := p.Value[f.Name]
	if !ok {
		return nil, false
	}
	return NewTagSet(vals...), true
}

type fileWidget struct{}

func (fileWidget) Render(c Control) (template.HTML, error) {
	return execute("file", c)
}

// Extract yields a pending upload when a file was chosen, an empty value when
// the remove box was ticked, and nothing otherwise so the stored path stays.
func (fileWidget) Extract(f Field, p *multipart.Form) (any, bool) {
	for _, fh := range p.File[f.Name] {
		if fh != nil && fh.Filename != "" {
			return Pending(fh), true
		}
	}
	if vals := p.Value[f.Name+"_remove"]; len(vals) > 0 && boolOf(vals[len(vals)-1]) {
		return File{}, true
	}
	return nil, false
}

// HTML is the sanitized value as markup, used by the rich text editor.
// Rows written before sanitizing on extract are cleaned here as well.
func (c Control) HTML() template.HTML { return template.HTML(SanitizeHTML(c.Text())) }
