package handler

import (
	"errors"
	"strings"

	"nomad_admin/database"
	"nomad_admin/hook"
	"nomad_admin/model"
	"nomad_admin/storage"
	"nomad_admin/utils"
	"nomad_admin/validate"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
)

func gallery() *hook.SpaceImage { return hook.NewSpaceImage(database.DB, storage.Default) }

func galleryURL(space *model.Space) string { return "/spaces/" + space.ID + "/images" }

// renderGallery shows the gallery with an empty upload form.
func renderGallery(c *fiber.Ctx, status int, space *model.Space, banner string) error {
	h := gallery()
	images := h.ListBySpace(c.UserContext(), space.ID)
	if banner == "" {
		banner = h.Error()
		if banner != "" {
			status = fiber.StatusInternalServerError
		}
	}
	page := validate.GalleryPage(space, images)
	page.Banner = banner
	return view.RenderForm(c, status, page, validate.NewImageForm())
}

func GetGallery(c *fiber.Ctx) error {
	return renderGallery(c, fiber.StatusOK, c.Locals(validate.KeySpace).(*model.Space), "")
}

func UploadImage(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.SpaceImageInput)
	space := c.Locals(validate.KeySpace).(*model.Space)
	h := gallery()

	if h.Upload(c.UserContext(), space.ID, input.ImageFile, strings.TrimSpace(input.Alt)) == nil {
		return formFailure(c, h.Error())
	}
	return c.Redirect(galleryURL(space), fiber.StatusSeeOther)
}

func GetImageById(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	img := c.Locals(validate.KeyRow).(*model.SpaceImage)
	return view.RenderForm(c, fiber.StatusOK, validate.AltPage(space, img), validate.NewAltForm(img))
}

func UpdateImageAlt(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.ImageAltInput)
	space := c.Locals(validate.KeySpace).(*model.Space)
	img := c.Locals(validate.KeyRow).(*model.SpaceImage)

	h := gallery()
	if h.UpdateAlt(c.UserContext(), img.ID, input.Alt) == nil {
		return formFailure(c, h.Error())
	}
	return c.Redirect(galleryURL(space), fiber.StatusSeeOther)
}

func DeleteImage(c *fiber.Ctx) error {
	space := c.Locals(validate.KeySpace).(*model.Space)
	img := c.Locals(validate.KeyRow).(*model.SpaceImage)
	h := gallery()
	if !h.Delete(c.UserContext(), img.ID) {
		return renderGallery(c, fiber.StatusInternalServerError, space, h.Error())
	}
	return c.Redirect(galleryURL(space), fiber.StatusSeeOther)
}

// ReorderImages is the JSON endpoint behind the drag and drop gallery.
func ReorderImages(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(model.ReorderInput)
	space := c.Locals(validate.KeySpace).(*model.Space)
	h := gallery()

	if !h.Reorder(c.UserContext(), space.ID, input.IDs) {
		status := fiber.StatusInternalServerError
		if errors.Is(h.Err(), hook.ErrIncompleteOrder) {
			status = fiber.StatusUnprocessableEntity
		}
		return utils.ErrorResponse(c, status, "Failed to reorder images", h.Err())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, h.ListBySpace(c.UserContext(), space.ID))
}
