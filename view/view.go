package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"nomad_admin/form"
	"nomad_admin/storage"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var files embed.FS

var pages = parse()

var funcs = template.FuncMap{
	"amenity": form.AmenityBadge,
	"asset":   storage.URL,
	"file": func(bucket, path string) string {
		return storage.URL(bucket, &path)
	},
	"human": func(s string) string { return strings.ReplaceAll(s, "_", " ") },
	"date": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			if t.IsZero() {
				return "-"
			}
			return t.Format("Jan 2, 2006")
		case *time.Time:
			if t == nil || t.IsZero() {
				return "-"
			}
			return t.Format("Jan 2, 2006")
		}
		return "-"
	},
	"first": func(n int, items []string) []string {
		if len(items) <= n {
			return items
		}
		return items[:n]
	},
	"more": func(n int, items []string) int {
		if len(items) <= n {
			return 0
		}
		return len(items) - n
	},
}

func parse() map[string]*template.Template {
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		panic(err)
	}
	out := map[string]*template.Template{}
	for _, name := range names {
		base := strings.TrimPrefix(name, "templates/")
		if base == "layout.html" {
			continue
		}
		out[base] = template.Must(template.New(base).Funcs(funcs).ParseFS(files, "templates/layout.html", name))
	}
	return out
}

type Link struct {
	Label string
	Href  string
}

// FormPage describes the chrome around a rendered form.
type FormPage struct {
	Title      string
	Subtitle   string
	Action     string
	SubmitText string
	Back       Link
	Links      []Link
	Banner     string
	// Template replaces form.html for pages that embed a form in a larger
	// layout; Extra is merged into its data.
	Template string
	Extra    fiber.Map
}

type Renderable interface {
	Render(opts form.RenderOptions) (template.HTML, error)
}

// Render executes a page inside the layout.
func Render(c *fiber.Ctx, status int, page string, data fiber.Map) error {
	t, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if data == nil {
		data = fiber.Map{}
	}
	data["Path"] = c.Path()
	data["SignedIn"] = c.Locals("user") != nil

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func RenderForm(c *fiber.Ctx, status int, page FormPage, f Renderable) error {
	html, err := f.Render(form.RenderOptions{Action: page.Action, SubmitText: page.SubmitText})
	if err != nil {
		return err
	}
	data := fiber.Map{}
	for k, v := range page.Extra {
		data[k] = v
	}
	data["Title"] = page.Title
	data["Page"] = page
	data["Form"] = html
	tmpl := page.Template
	if tmpl == "" {
		tmpl = "form.html"
	}
	return Render(c, status, tmpl, data)
}

// Error renders the error page; it is the fiber error handler's HTML side.
func Error(c *fiber.Ctx, status int, message string) error {
	return Render(c, status, "error.html", fiber.Map{"Title": "Error", "Status": status, "Message": message})
}
