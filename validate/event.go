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

var EventFields = []form.Field{
	{Name: "title", Label: "Event Title *", Kind: form.KindInput, Placeholder: "Digital Nomad Meetup"},
	{Name: "description", Label: "Description *", Kind: form.KindTextarea, Placeholder: "Short summary"},
	{Name: "content", Label: "Detailed Content", Kind: form.KindRichText},
	{Name: "start_date", Label: "Start Date *", Kind: form.KindDate},
	{Name: "end_date", Label: "End Date", Kind: form.KindDate},
	{Name: "location", Label: "Location *", Kind: form.KindInput, Placeholder: "Ubud, Bali"},
	{Name: "venue", Label: "Venue", Kind: form.KindInput, Placeholder: "Hub Bali"},
	{Name: "capacity", Label: "Capacity", Kind: form.KindInput, InputType: "number", Placeholder: "50"},
	{Name: "price", Label: "Price (USD)", Kind: form.KindInput, InputType: "number", Placeholder: "0"},
	{Name: "status", Label: "Status *", Kind: form.KindDropdown, Options: model.Statuses},
	{Name: "tags", Label: "Tags", Kind: form.KindTagPicker, TagOptions: []string{
		"networking", "coworking", "wellness", "workshop", "meetup",
	}},
	{Name: "image", Label: "Cover Image", Kind: form.KindFile, Bucket: storage.BucketEvents},
	{Name: "is_online", Label: "Online Event", Kind: form.KindCheckbox},
}

func EventValues(e *model.Event) form.Values {
	if e == nil {
		e = &model.Event{Status: model.StatusDraft}
	}
	end := ""
	if e.EndDate != nil {
		end = e.EndDate.Format(form.DateLayout)
	}
	return form.Values{
		"title":       e.Title,
		"description": e.Description,
		"content":     e.Content,
		"start_date":  e.StartDate,
		"end_date":    end,
		"location":    e.Location,
		"venue":       e.Venue,
		"capacity":    e.Capacity,
		"price":       e.Price,
		"status":      e.Status,
		"tags":        form.NewTagSet(e.Tags...),
		"image":       stored(e.Image),
		"is_online":   e.IsOnline,
	}
}

func NewEventForm(e *model.Event) *form.Form[model.EventInput] {
	f := form.New[model.EventInput](EventFields, EventValues(e))
	f.Resolve = resolver()
	return f
}

func EventPage(e *model.Event) view.FormPage {
	page := view.FormPage{
		Title:      "Create Event",
		Action:     "/events/new",
		SubmitText: "Create Event",
		Back:       view.Link{Label: "Back to events", Href: "/events"},
	}
	if e != nil {
		page.Title = "Edit Event"
		page.Subtitle = e.Title
		page.Action = "/events/" + e.ID
		page.SubmitText = "Update Event"
	}
	return page
}

func Event(key string) fiber.Handler {
	return load(key, KeyRow, "Event", func() getter[model.Event] {
		return hook.NewEvent(database.DB, storage.Default)
	}, nil)
}

func CreateEvent() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.EventInput], view.FormPage, error) {
		return NewEventForm(nil), EventPage(nil), nil
	})
}

func EditEvent() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.EventInput], view.FormPage, error) {
		e, ok := c.Locals(KeyRow).(*model.Event)
		if !ok {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		return NewEventForm(e), EventPage(e), nil
	})
}
