package handler

import (
	"nomad_admin/validate"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
)

// statusOf is 500 when the hook behind a page recorded a failure.
func statusOf(failure string) int {
	if failure != "" {
		return fiber.StatusInternalServerError
	}
	return fiber.StatusOK
}

// formFailure re-renders the submitted form with a banner after the write
// behind it failed.
func formFailure(c *fiber.Ctx, message string) error {
	f, ok := c.Locals(validate.KeyForm).(view.Renderable)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, message)
	}
	page, _ := c.Locals(validate.KeyPage).(view.FormPage)
	page.Banner = message
	return view.RenderForm(c, fiber.StatusInternalServerError, page, f)
}

type confirmation struct {
	Title  string
	Name   string
	Action string
	Back   string
	Banner string
}

func confirm(c *fiber.Ctx, status int, p confirmation) error {
	return view.Render(c, status, "confirm.html", fiber.Map{
		"Title":  p.Title,
		"Name":   p.Name,
		"Action": p.Action,
		"Back":   p.Back,
		"Banner": p.Banner,
	})
}

// tableRow is one line of a child listing.
type tableRow struct {
	ID    string
	Cells []string
}
