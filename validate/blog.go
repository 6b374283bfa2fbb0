package validate

import (
	"nomad_admin/database"
	"nomad_admin/form"
	"nomad_admin/hook"
	"nomad_admin/model"
	"nomad_admin/storage"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
)

var BlogFields = []form.Field{
	{
		Name:        "name",
		Label:       "Name *",
		Kind:        form.KindInput,
		Placeholder: "Enter Blog",
		Description: "This field will be publicly displayed.",
	},
	{
		Name:        "content",
		Label:       "Content *",
		Kind:        form.KindRichText,
		Placeholder: "Enter the content",
	},
	{
		Name:    "status",
		Label:   "Status *",
		Kind:    form.KindDropdown,
		Options: model.Statuses,
	},
	{
		Name:        "tags",
		Label:       "Tags *",
		Kind:        form.KindTagPicker,
		Placeholder: "Select or add tags",
		TagOptions:  []string{"Technology", "Lifestyle", "Travel", "Food"},
	},
	{
		Name:        "slug",
		Label:       "Slug",
		Kind:        form.KindInput,
		Placeholder: "Enter the slug",
		Description: "Leave empty to generate it from the name.",
	},
	{
		Name:   "image",
		Label:  "Image *",
		Kind:   form.KindFile,
		Bucket: storage.BucketBlogs,
	},
	{
		Name:   "video",
		Label:  "Video",
		Kind:   form.KindFile,
		Bucket: storage.BucketBlogs,
	},
	{
		Name:        "time_to_read",
		Label:       "Time to read",
		Kind:        form.KindInput,
		InputType:   "number",
		Placeholder: "Enter the time to read",
		Description: "Minutes. Leave at 0 to estimate it from the content.",
	},
}

func BlogValues(p *model.BlogPost) form.Values {
	if p == nil {
		p = &model.BlogPost{Status: model.StatusDraft}
	}
	return form.Values{
		"name":         p.Name,
		"content":      p.Content,
		"status":       p.Status,
		"tags":         form.NewTagSet(p.Tags...),
		"slug":         p.Slug,
		"image":        stored(p.Image),
		"video":        stored(p.Video),
		"time_to_read": p.TimeToRead,
	}
}

func NewBlogForm(p *model.BlogPost) *form.Form[model.BlogInput] {
	f := form.New[model.BlogInput](BlogFields, BlogValues(p))
	f.Resolve = resolver()
	return f
}

func BlogPage(p *model.BlogPost) view.FormPage {
	page := view.FormPage{
		Title:      "Create Blog Post",
		Action:     "/blog/new",
		SubmitText: "Create Post",
		Back:       view.Link{Label: "Back to blog", Href: "/blog"},
	}
	if p != nil {
		page.Title = "Edit Blog Post"
		page.Subtitle = p.Name
		page.Action = "/blog/" + p.ID
		page.SubmitText = "Update Post"
	}
	return page
}

func Blog(key string) fiber.Handler {
	return load(key, KeyRow, "Blog post", func() getter[model.BlogPost] {
		return hook.NewBlog(database.DB, storage.Default)
	}, nil)
}

func CreateBlog() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.BlogInput], view.FormPage, error) {
		return NewBlogForm(nil), BlogPage(nil), nil
	})
}

func EditBlog() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.BlogInput], view.FormPage, error) {
		p, ok := c.Locals(KeyRow).(*model.BlogPost)
		if !ok {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		return NewBlogForm(p), BlogPage(p), nil
	})
}
