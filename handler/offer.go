package handler

import (
	"fmt"
	"strconv"

	"nomad_admin/database"
	"nomad_admin/hook"
	"nomad_admin/model"
	"nomad_admin/validate"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func offersURL(space *model.Space) string { return "/spaces/" + space.ID + "/offers" }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func GetOffers(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	h := hook.NewOffer(database.DB)
	offers := h.ListBySpace(c.UserContext(), space.ID)
	return view.Render(c, statusOf(h.Error()), "children.html", fiber.Map{
		"Title":   "Offers",
		"Space":   space,
		"Base":    offersURL(space),
		"Banner":  h.Error(),
		"Columns": []string{"Name", "Price", "Capacity", "Available"},
		"Rows": lo.Map(offers, func(o model.SpaceOffer, _ int) tableRow {
			return tableRow{ID: o.ID, Cells: []string{
				o.Name,
				fmt.Sprintf("%.2f %s", o.Price, o.Currency),
				strconv.Itoa(o.Capacity),
				yesNo(o.Available),
			}}
		}),
	})
}

func NewOffer(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	return view.RenderForm(c, fiber.StatusOK, validate.OfferPage(space, nil), validate.NewOfferForm(nil))
}

func GetOfferById(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	offer := c.Locals(validate.KeyRow).(*model.SpaceOffer)
	return view.RenderForm(c, fiber.StatusOK, validate.OfferPage(space, offer), validate.NewOfferForm(offer))
}

func CreateOffer(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.OfferInput)
	space := c.Locals(validate.KeySpace).(*model.Space)
	h := hook.NewOffer(database.DB)

	offer := input.Offer(space.ID)
	if h.Create(c.UserContext(), &offer) == nil {
		return formFailure(c, h.Error())
	}
	return c.Redirect(offersURL(space), fiber.StatusSeeOther)
}

func EditOffer(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.OfferInput)
	space := c.Locals(validate.KeySpace).(*model.Space)
	offer := c.Locals(validate.KeyRow).(*model.SpaceOffer)
	h := hook.NewOffer(database.DB)

	if h.Update(c.UserContext(), offer.ID, input.Changes()) == nil {
		return formFailure(c, h.Error())
	}
	return c.Redirect(offersURL(space), fiber.StatusSeeOther)
}

func offerConfirmation(space *model.Space, offer *model.SpaceOffer) confirmation {
	return confirmation{
		Title:  "Delete Offer",
		Name:   offer.Name,
		Action: offersURL(space) + "/" + offer.ID + "/delete",
		Back:   offersURL(space),
	}
}

func ConfirmDeleteOffer(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	offer := c.Locals(validate.KeyRow).(*model.SpaceOffer)
	return confirm(c, fiber.StatusOK, offerConfirmation(space, offer))
}

func DeleteOffer(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	offer := c.Locals(validate.KeyRow).(*model.SpaceOffer)
	h := hook.NewOffer(database.DB)
	if !h.Delete(c.UserContext(), offer.ID) {
		p := offerConfirmation(space, offer)
		p.Banner = h.Error()
		return confirm(c, fiber.StatusInternalServerError, p)
	}
	return c.Redirect(offersURL(space), fiber.StatusSeeOther)
}

func attractionsURL(space *model.Space) string { return "/spaces/" + space.ID + "/attractions" }

func GetAttractions(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	h := hook.NewAttraction(database.DB)
	attractions := h.ListBySpace(c.UserContext(), space.ID)
	return view.Render(c, statusOf(h.Error()), "children.html", fiber.Map{
		"Title":   "Nearby Attractions",
		"Space":   space,
		"Base":    attractionsURL(space),
		"Banner":  h.Error(),
		"Columns": []string{"Name", "Category", "Distance", "Website"},
		"Rows": lo.Map(attractions, func(a model.SpaceAttraction, _ int) tableRow {
			return tableRow{ID: a.ID, Cells: []string{
				a.Name,
				a.Category,
				strconv.FormatFloat(a.DistanceKm, 'f', -1, 64) + " km",
				a.Website,
			}}
		}),
	})
}

func NewAttraction(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	return view.RenderForm(c, fiber.StatusOK, validate.AttractionPage(space, nil), validate.NewAttractionForm(nil))
}

func GetAttractionById(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	a := c.Locals(validate.KeyRow).(*model.SpaceAttraction)
	return view.RenderForm(c, fiber.StatusOK, validate.AttractionPage(space, a), validate.NewAttractionForm(a))
}

func CreateAttraction(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.AttractionInput)
	space := c.Locals(validate.KeySpace).(*model.Space)
	h := hook.NewAttraction(database.DB)

	a := input.Attraction(space.ID)
	if h.Create(c.UserContext(), &a) == nil {
		return formFailure(c, h.Error())
	}
	return c.Redirect(attractionsURL(space), fiber.StatusSeeOther)
}

func EditAttraction(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.AttractionInput)
	space := c.Locals(validate.KeySpace).(*model.Space)
	a := c.Locals(validate.KeyRow).(*model.SpaceAttraction)
	h := hook.NewAttraction(database.DB)

	if h.Update(c.UserContext(), a.ID, input.Changes()) == nil {
		return formFailure(c, h.Error())
	}
	return c.Redirect(attractionsURL(space), fiber.StatusSeeOther)
}

func attractionConfirmation(space *model.Space, a *model.SpaceAttraction) confirmation {
	return confirmation{
		Title:  "Delete Attraction",
		Name:   a.Name,
		Action: attractionsURL(space) + "/" + a.ID + "/delete",
		Back:   attractionsURL(space),
	}
}

func ConfirmDeleteAttraction(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	a := c.Locals(validate.KeyRow).(*model.SpaceAttraction)
	return confirm(c, fiber.StatusOK, attractionConfirmation(space, a))
}

func DeleteAttraction(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	a := c.Locals(validate.KeyRow).(*model.SpaceAttraction)
	h := hook.NewAttraction(database.DB)
	if !h.Delete(c.UserContext(), a.ID) {
		p := attractionConfirmation(space, a)
		p.Banner = h.Error()
		return confirm(c, fiber.StatusInternalServerError, p)
	}
	return c.Redirect(attractionsURL(space), fiber.StatusSeeOther)
}
