package validate

import (
	"nomad_admin/database"
	"nomad_admin/form"
	"nomad_admin/hook"
	"nomad_admin/model"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
)

var OfferFields = []form.Field{
	{Name: "name", Label: "Offer Name *", Kind: form.KindInput, Placeholder: "Hot Desk, Meeting Room, Private Office"},
	{Name: "description", Label: "Description", Kind: form.KindTextarea, Placeholder: "Brief description of the offer"},
	{Name: "price", Label: "Price (USD) *", Kind: form.KindInput, InputType: "number", Placeholder: "25"},
	{Name: "currency", Label: "Currency", Kind: form.KindDropdown, Options: []string{"USD", "EUR", "GBP", "IDR", "THB", "VND"}},
	{Name: "capacity", Label: "Capacity", Kind: form.KindInput, InputType: "number", Placeholder: "1"},
	{Name: "available", Label: "Available", Kind: form.KindCheckbox},
}

func OfferValues(o *model.SpaceOffer) form.Values {
	if o == nil {
		o = &model.SpaceOffer{Currency: "USD", Available: true}
	}
	return form.Values{
		"name":        o.Name,
		"description": o.Description,
		"price":       o.Price,
		"currency":    o.Currency,
		"capacity":    o.Capacity,
		"available":   o.Available,
	}
}

func NewOfferForm(o *model.SpaceOffer) *form.Form[model.OfferInput] {
	return form.New[model.OfferInput](OfferFields, OfferValues(o))
}

func OfferPage(space *model.Space, o *model.SpaceOffer) view.FormPage {
	base := "/spaces/" + space.ID + "/offers"
	page := view.FormPage{
		Title:      "Add Offer",
		Subtitle:   space.Name,
		Action:     base + "/new",
		SubmitText: "Add Offer",
		Back:       view.Link{Label: "Back to offers", Href: base},
	}
	if o != nil {
		page.Title = "Edit Offer"
		page.Action = base + "/" + o.ID
		page.SubmitText = "Update Offer"
	}
	return page
}

// Offer loads an offer of the space already in Locals.
func Offer(key string) fiber.Handler {
	return load(key, KeyRow, "Offer", func() getter[model.SpaceOffer] {
		return hook.NewOffer(database.DB)
	}, func(c *fiber.Ctx, o *model.SpaceOffer) bool {
		return o.SpaceID == parentID(c)
	})
}

func CreateOffer() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.OfferInput], view.FormPage, error) {
		space, ok := c.Locals(KeySpace).(*model.Space)
		if !ok {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		return NewOfferForm(nil), OfferPage(space, nil), nil
	})
}

func EditOffer() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.OfferInput], view.FormPage, error) {
		space, ok := c.Locals(KeySpace).(*model.Space)
		o, found := c.Locals(KeyRow).(*model.SpaceOffer)
		if !ok || !found {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		return NewOfferForm(o), OfferPage(space, o), nil
	})
}

var AttractionFields = []form.Field{
	{Name: "name", Label: "Attraction Name *", Kind: form.KindInput, Placeholder: "Phewa Lake, Peace Pagoda"},
	{Name: "description", Label: "Description", Kind: form.KindTextarea, Placeholder: "Brief description of the attraction"},
	{Name: "distance_km", Label: "Distance (km) *", Kind: form.KindInput, InputType: "number", Placeholder: "0.5"},
	{Name: "category", Label: "Category", Kind: form.KindDropdown, Options: model.AttractionCategories},
	{Name: "latitude", Label: "Latitude", Kind: form.KindInput, InputType: "number", Placeholder: "28.2096"},
	{Name: "longitude", Label: "Longitude", Kind: form.KindInput, InputType: "number", Placeholder: "83.9856"},
	{Name: "website", Label: "Website", Kind: form.KindInput, InputType: "url", Placeholder: "https://example.com"},
}

func AttractionValues(a *model.SpaceAttraction) form.Values {
	if a == nil {
		a = &model.SpaceAttraction{Category: "other"}
	}
	return form.Values{
		"name":        a.Name,
		"description": a.Description,
		"distance_km": a.DistanceKm,
		"category":    a.Category,
		"latitude":    a.Latitude,
		"longitude":   a.Longitude,
		"website":     a.Website,
	}
}

func NewAttractionForm(a *model.SpaceAttraction) *form.Form[model.AttractionInput] {
	return form.New[model.AttractionInput](AttractionFields, AttractionValues(a))
}

func AttractionPage(space *model.Space, a *model.SpaceAttraction) view.FormPage {
	base := "/spaces/" + space.ID + "/attractions"
	page := view.FormPage{
		Title:      "Add Attraction",
		Subtitle:   space.Name,
		Action:     base + "/new",
		SubmitText: "Add Attraction",
		Back:       view.Link{Label: "Back to attractions", Href: base},
	}
	if a != nil {
		page.Title = "Edit Attraction"
		page.Action = base + "/" + a.ID
		page.SubmitText = "Update Attraction"
	}
	return page
}

func Attraction(key string) fiber.Handler {
	return load(key, KeyRow, "Attraction", func() getter[model.SpaceAttraction] {
		return hook.NewAttraction(database.DB)
	}, func(c *fiber.Ctx, a *model.SpaceAttraction) bool {
		return a.SpaceID == parentID(c)
	})
}

func CreateAttraction() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.AttractionInput], view.FormPage, error) {
		space, ok := c.Locals(KeySpace).(*model.Space)
		if !ok {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		return NewAttractionForm(nil), AttractionPage(space, nil), nil
	})
}

func EditAttraction() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.AttractionInput], view.FormPage, error) {
		space, ok := c.Locals(KeySpace).(*model.Space)
		a, found := c.Locals(KeyRow).(*model.SpaceAttraction)
		if !ok || !found {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		return NewAttractionForm(a), AttractionPage(space, a), nil
	})
}
