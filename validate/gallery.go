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

var ImageFields = []form.Field{
	{Name: "image", Label: "Image *", Kind: form.KindFile, Bucket: storage.BucketSpaces},
	{Name: "alt", Label: "Alt Text", Kind: form.KindInput, Placeholder: "Describe the photo"},
}

func ImageValues() form.Values {
	return form.Values{"image": form.File{}, "alt": ""}
}

func NewImageForm() *form.Form[model.SpaceImageInput] {
	return form.New[model.SpaceImageInput](ImageFields, ImageValues())
}

// GalleryPage embeds the upload form in the gallery listing.
func GalleryPage(space *model.Space, images []model.SpaceImage) view.FormPage {
	return view.FormPage{
		Title:      "Gallery",
		Subtitle:   space.Name,
		Action:     "/spaces/" + space.ID + "/images",
		SubmitText: "Upload",
		Back:       view.Link{Label: "Back to space", Href: "/spaces/" + space.ID},
		Template:   "gallery.html",
		Extra:      fiber.Map{"Space": space, "Images": images},
	}
}

func UploadImage() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.SpaceImageInput], view.FormPage, error) {
		space, ok := c.Locals(KeySpace).(*model.Space)
		if !ok {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		images := hook.NewSpaceImage(database.DB, storage.Default).ListBySpace(c.UserContext(), space.ID)
		return NewImageForm(), GalleryPage(space, images), nil
	})
}

// Image loads a gallery image of the space already in Locals.
func Image(key string) fiber.Handler {
	return load(key, KeyRow, "Image", func() getter[model.SpaceImage] {
		return hook.NewSpaceImage(database.DB, storage.Default)
	}, func(c *fiber.Ctx, img *model.SpaceImage) bool {
		return img.SpaceID == parentID(c)
	})
}

var AltFields = []form.Field{
	{Name: "alt", Label: "Alt Text", Kind: form.KindInput, Placeholder: "Describe the photo"},
}

func NewAltForm(img *model.SpaceImage) *form.Form[model.ImageAltInput] {
	return form.New[model.ImageAltInput](AltFields, form.Values{"alt": img.Alt})
}

func AltPage(space *model.Space, img *model.SpaceImage) view.FormPage {
	gallery := "/spaces/" + space.ID + "/images"
	return view.FormPage{
		Title:      "Edit Alt Text",
		Subtitle:   space.Name,
		Action:     gallery + "/" + img.ID,
		SubmitText: "Save",
		Back:       view.Link{Label: "Back to gallery", Href: gallery},
	}
}

func EditImage() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.ImageAltInput], view.FormPage, error) {
		space, ok := c.Locals(KeySpace).(*model.Space)
		img, found := c.Locals(KeyRow).(*model.SpaceImage)
		if !ok || !found {
			return nil, view.FormPage{}, fiber.ErrNotFound
		}
		return NewAltForm(img), AltPage(space, img), nil
	})
}
