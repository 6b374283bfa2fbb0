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

func spaces() *hook.Space { return hook.NewSpace(database.DB, storage.Default) }

func GetSpaces(c *fiber.Ctx) error {
	h := spaces()
	rows := h.List(c.UserContext())
	return view.Render(c, statusOf(h.Error()), "spaces.html", fiber.Map{
		"Title":  "Spaces",
		"Rows":   rows,
		"Banner": h.Error(),
	})
}

func NewSpace(c *fiber.Ctx) error {
	return view.RenderForm(c, fiber.StatusOK, validate.SpacePage(nil), validate.NewSpaceForm(nil))
}

func GetSpaceById(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	return view.RenderForm(c, fiber.StatusOK, validate.SpacePage(space), validate.NewSpaceForm(space))
}

func CreateSpace(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.SpaceInput)
	ctx := c.UserContext()
	h := spaces()

	space, err := input.Space()
	if err != nil {
		return formFailure(c, err.Error())
	}
	path, ok := h.UploadFile(ctx, input.ImageFile)
	if !ok {
		return formFailure(c, h.Error())
	}
	space.Image = utils.StringPtr(path)

	if h.Create(ctx, &space) == nil {
		h.Discard(ctx, space.Image, "")
		return formFailure(c, h.Error())
	}
	return c.Redirect("/spaces", fiber.StatusSeeOther)
}

func EditSpace(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.SpaceInput)
	space := c.Locals(validate.KeySpace).(*model.Space)
	ctx := c.UserContext()
	h := spaces()

	path, ok := h.UploadFile(ctx, input.ImageFile)
	if !ok {
		return formFailure(c, h.Error())
	}
	changes := input.Changes()
	changes["image"] = utils.StringPtr(path)

	if h.Update(ctx, space.ID, changes) == nil {
		if input.ImageFile.IsPending() {
			h.Discard(ctx, &path, "")
		}
		return formFailure(c, h.Error())
	}
	h.Discard(ctx, space.Image, path)
	return c.Redirect("/spaces", fiber.StatusSeeOther)
}

func spaceConfirmation(space *model.Space) confirmation {
	return confirmation{
		Title:  "Delete Space",
		Name:   space.Name,
		Action: "/spaces/" + space.ID + "/delete",
		Back:   "/spaces",
	}
}

func ConfirmDeleteSpace(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	return confirm(c, fiber.StatusOK, spaceConfirmation(space))
}

func DeleteSpace(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	h := spaces()
	if !h.Delete(c.UserContext(), space.ID) {
		p := spaceConfirmation(space)
		p.Banner = h.Error()
		return confirm(c, fiber.StatusInternalServerError, p)
	}
	return c.Redirect("/spaces", fiber.StatusSeeOther)
}
