package handler

import (
	"nomad_admin/database"
	"nomad_admin/hook"
	"nomad_admin/model"
	"nomad_admin/storage"
	"nomad_admin/utils"
	"nomad_admin/validate"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
)

func events() *hook.Event { return hook.NewEvent(database.DB, storage.Default) }

func GetEvents(c *fiber.Ctx) error {
	h := events()
	rows := h.List(c.UserContext())
	return view.Render(c, statusOf(h.Error()), "events.html", fiber.Map{
		"Title":  "Events",
		"Rows":   rows,
		"Banner": h.Error(),
	})
}

func NewEvent(c *fiber.Ctx) error {
	return view.RenderForm(c, fiber.StatusOK, validate.EventPage(nil), validate.NewEventForm(nil))
}

func GetEventById(c *fiber.Ctx) error {
	event := c.Locals(validate.KeyRow).(*model.Event)
	return view.RenderForm(c, fiber.StatusOK, validate.EventPage(event), validate.NewEventForm(event))
}

func CreateEvent(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.EventInput)
	ctx := c.UserContext()
	h := events()

	event, err := input.Event()
	if err != nil {
		return formFailure(c, err.Error())
	}
	path, ok := h.UploadFile(ctx, input.ImageFile)
	if !ok {
		return formFailure(c, h.Error())
	}
	event.Image = utils.StringPtr(path)

	if h.Create(ctx, &event) == nil {
		h.Discard(ctx, event.Image, "")
		return formFailure(c, h.Error())
	}
	return c.Redirect("/events", fiber.StatusSeeOther)
}

func EditEvent(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.EventInput)
	event := c.Locals(validate.KeyRow).(*model.Event)
	ctx := c.UserContext()
	h := events()

	path, ok := h.UploadFile(ctx, input.ImageFile)
	if !ok {
		return formFailure(c, h.Error())
	}
	changes := input.Changes()
	changes["image"] = utils.StringPtr(path)

	if h.Update(ctx, event.ID, changes) == nil {
		if input.ImageFile.IsPending() {
			h.Discard(ctx, &path, "")
		}
		return formFailure(c, h.Error())
	}
	h.Discard(ctx, event.Image, path)
	return c.Redirect("/events", fiber.StatusSeeOther)
}

func eventConfirmation(event *model.Event) confirmation {
	return confirmation{
		Title:  "Delete Event",
		Name:   event.Title,
		Action: "/events/" + event.ID + "/delete",
		Back:   "/events",
	}
}

func ConfirmDeleteEvent(c *fiber.Ctx) error {
	return confirm(c, fiber.StatusOK, eventConfirmation(c.Locals(validate.KeyRow).(*model.Event)))
}

func DeleteEvent(c *fiber.Ctx) error {
	event := c.Locals(validate.KeyRow).(*model.Event)
	h := events()
	if !h.Delete(c.UserContext(), event.ID) {
		p := eventConfirmation(event)
		p.Banner = h.Error()
		return confirm(c, fiber.StatusInternalServerError, p)
	}
	return c.Redirect("/events", fiber.StatusSeeOther)
}
