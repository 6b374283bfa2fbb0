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

var SpaceFields = []form.Field{
	{Name: "name", Label: "Name *", Kind: form.KindInput, Placeholder: "Nomad Hub Ubud"},
	{Name: "space_type", Label: "Type *", Kind: form.KindDropdown, Options: []string{
		model.SpaceTypeCoworking, model.SpaceTypeCoworkingCafe, model.SpaceTypeColiving,
	}},

	{Name: "short_description", Label: "Short Description *", Kind: form.KindTextarea, Placeholder: "One-liner highlights"},
	{Name: "content", Label: "Detailed Content", Kind: form.KindRichText},

	{Name: "location", Label: "Location *", Kind: form.KindInput, Placeholder: "Ubud, Bali"},
	{Name: "address", Label: "Address", Kind: form.KindInput, Placeholder: "Jl. Raya Ubud No. 10"},
	{Name: "latitude", Label: "Latitude", Kind: form.KindInput, InputType: "number", Placeholder: "-8.5069"},
	{Name: "longitude", Label: "Longitude", Kind: form.KindInput, InputType: "number", Placeholder: "115.2625"},

	{Name: "amenities", Label: "Amenities", Kind: form.KindTagPicker, TagOptions: form.AmenityNames()},
	{Name: "options", Label: "Space Options", Kind: form.KindTagPicker, TagOptions: []string{
		"den", "hot_desk", "meeting_room", "private_office", "dedicated_desk",
	}},

	{Name: "opening_time", Label: "Opening Time", Kind: form.KindInput, InputType: "time"},
	{Name: "closing_time", Label: "Closing Time", Kind: form.KindInput, InputType: "time"},
	{Name: "capacity", Label: "Capacity", Kind: form.KindInput, InputType: "number", Placeholder: "100"},
	{Name: "price_from", Label: "Starting Price (USD)", Kind: form.KindInput, InputType: "number", Placeholder: "10"},
	{Name: "allow_booking", Label: "Allow Booking", Kind: form.KindCheckbox},

	{Name: "wifi_speed_mbps", Label: "WiFi Speed (Mbps)", Kind: form.KindInput, InputType: "number", Placeholder: "200"},
	{Name: "weather_condition", Label: "Weather Notes", Kind: form.KindInput, Placeholder: "Sunny, humid"},

	{Name: "contact_email", Label: "Contact Email", Kind: form.KindInput, InputType: "email", Placeholder: "hello@nomadhub.com"},
	{Name: "contact_phone", Label: "Contact Phone", Kind: form.KindInput, Placeholder: "+62 812 345 678"},
	{Name: "website", Label: "Website", Kind: form.KindInput, InputType: "url", Placeholder: "https://nomadhub.com"},
	{Name: "instagram", Label: "Instagram", Kind: form.KindInput, InputType: "url", Placeholder: "https://instagram.com/nomadhub"},
	{Name: "facebook", Label: "Facebook", Kind: form.KindInput, InputType: "url", Placeholder: "https://facebook.com/nomadhub"},
	{Name: "whatsapp", Label: "WhatsApp", Kind: form.KindInput, Placeholder: "+62 812 345 678"},

	{Name: "status", Label: "Status *", Kind: form.KindDropdown, Options: model.Statuses},
	{Name: "tags", Label: "Tags", Kind: form.KindTagPicker, TagOptions: []string{
		"coworking", "cafe", "coliving", "quiet", "central", "beach", "mountain",
	}},
	{Name: "image", Label: "Cover Image", Kind: form.KindFile, Bucket: storage.BucketSpaces},
}

// SpaceValues are the form defaults for a space; nil gives a blank draft.
func SpaceValues(s *model.Space) form.Values {
	if s == nil {
		s = &model.Space{SpaceType: model.SpaceTypeCoworking, Status: model.StatusDraft}
	}
	return form.Values{
		"name":              s.Name,
		"space_type":        s.SpaceType,
		"short_description": s.ShortDescription,
		"content":           s.Content,
		"location":          s.Location,
		"address":           s.Address,
		"latitude":          s.Latitude,
		"longitude":         s.Longitude,
		"amenities":         form.NewTagSet(s.Amenities...),
		"options":           form.NewTagSet(s.Options...),
		"opening_time":      s.OpeningTime,
		"closing_time":      s.ClosingTime,
		"capacity":          s.Capacity,
		"price_from":        s.PriceFrom,
		"allow_booking":     s.AllowBooking,
		"wifi_speed_mbps":   s.WifiSpeedMbps,
		"weather_condition": s.WeatherCondition,
		"contact_email":     s.ContactEmail,
		"contact_phone":     s.ContactPhone,
		"website":           s.Website,
		"instagram":         s.Instagram,
		"facebook":          s.Facebook,
		"whatsapp":          s.Whatsapp,
		"status":            s.Status,
		"tags":              form.NewTagSet(s.Tags...),
		"image":             stored(s.Image),
	}
}

func NewSpaceForm(s *model.Space) *form.Form[model.SpaceInput] {
	f := form.New[model.SpaceInput](SpaceFields, SpaceValues(s))
	f.Resolve = resolver()
	return f
}

func SpacePage(s *model.Space) view.FormPage {
	if s == nil {
		return view.FormPage{
			Title:      "Create Space",
			Subtitle:   "Add a new coworking or coliving space",
			Action:     "/spaces/new",
			SubmitText: "Create Space",
			Back:       view.Link{Label: "Back to spaces", Href: "/spaces"},
		}
	}
	base := "/spaces/" + s.ID
	return view.FormPage{
		Title:      "Edit Space",
		Subtitle:   s.Name,
		Action:     base,
		SubmitText: "Update Space",
		Back:       view.Link{Label: "Back to spaces", Href: "/spaces"},
		Links: []view.Link{
			{Label: "Offers", Href: base + "/offers"},
			{Label: "Attractions", Href: base + "/attractions"},
			{Label: "Gallery", Href: base + "/images"},
		},
	}
}

// Space loads the space named by the route param into Locals.
func Space(key string) fiber.Handler {
	return load(key, KeySpace, "Space", func() getter[model.Space] {
		return hook.NewSpace(database.DB, storage.Default)
	}, nil)
}

func CreateSpace() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.SpaceInput], view.FormPage, error) {
		return NewSpaceForm(nil), SpacePage(nil), nil
	})
}

// EditSpace runs the edit form of the space loaded by Space.
func EditSpace() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.SpaceInput], view.FormPage, error) {
		s, ok := c.Locals(KeySpace).(*model.Space)
		if !ok {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		return NewSpaceForm(s), SpacePage(s), nil
	})
}
