package form

import (
	"html/template"
	"mime/multipart"

	"github.com/microcosm-cc/bluemonday"
)

var richTextPolicy = newRichTextPolicy()

func newRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyles("text-align").MatchingEnum("left", "center", "right", "justify").Globally()
	return p
}

// SanitizeHTML keeps the markup the editor toolbar produces and drops
// scripts, event handlers and other active content.
func SanitizeHTML(s string) string {
	return richTextPolicy.Sanitize(s)
}

type richTextWidget struct{}

func (richTextWidget) Render(c Control) (template.HTML, error) {
	return execute("richtext", c)
}

// Extract sanitizes the posted document before it reaches the schema.
func (richTextWidget) Extract(f Field, p *multipart.Form) (any, bool) {
	vals, ok := p.Value[f.Name]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	return SanitizeHTML(vals[len(vals)-1]), true
}
