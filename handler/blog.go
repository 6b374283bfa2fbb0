package handler

import (
	"context"

	"nomad_admin/database"
	"nomad_admin/hook"
	"nomad_admin/model"
	"nomad_admin/storage"
	"nomad_admin/utils"
	"nomad_admin/validate"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
)

func posts() *hook.Blog { return hook.NewBlog(database.DB, storage.Default) }

func GetPosts(c *fiber.Ctx) error {
	h := posts()
	rows := h.List(c.UserContext())
	return view.Render(c, statusOf(h.Error()), "blog.html", fiber.Map{
		"Title":  "Blog",
		"Rows":   rows,
		"Banner": h.Error(),
	})
}

func NewPost(c *fiber.Ctx) error {
	return view.RenderForm(c, fiber.StatusOK, validate.BlogPage(nil), validate.NewBlogForm(nil))
}

func GetPostById(c *fiber.Ctx) error {
	post := c.Locals(validate.KeyRow).(*model.BlogPost)
	return view.RenderForm(c, fiber.StatusOK, validate.BlogPage(post), validate.NewBlogForm(post))
}

// uploadMedia stores the image and video of a post. On failure anything
// already uploaded by this call is removed again.
func uploadMedia(ctx context.Context, h *hook.Blog, input *model.BlogInput) (image, video string, ok bool) {
	image, ok = h.UploadFile(ctx, input.ImageFile)
	if !ok {
		return "", "", false
	}
	video, ok = h.UploadFile(ctx, input.VideoFile)
	if !ok {
		if input.ImageFile.IsPending() {
			h.Discard(ctx, &image, "")
		}
		return "", "", false
	}
	return image, video, true
}

func discardPending(ctx context.Context, h *hook.Blog, input *model.BlogInput, image, video string) {
	if input.ImageFile.IsPending() {
		h.Discard(ctx, &image, "")
	}
	if input.VideoFile.IsPending() {
		h.Discard(ctx, &video, "")
	}
}

func CreatePost(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.BlogInput)
	ctx := c.UserContext()
	h := posts()

	post, err := input.Post()
	if err != nil {
		return formFailure(c, err.Error())
	}
	image, video, ok := uploadMedia(ctx, h, input)
	if !ok {
		return formFailure(c, h.Error())
	}
	post.Image = utils.StringPtr(image)
	post.Video = utils.StringPtr(video)

	if h.Create(ctx, &post) == nil {
		discardPending(ctx, h, input, image, video)
		return formFailure(c, h.Error())
	}
	return c.Redirect("/blog", fiber.StatusSeeOther)
}

func EditPost(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.BlogInput)
	post := c.Locals(validate.KeyRow).(*model.BlogPost)
	ctx := c.UserContext()
	h := posts()

	image, video, ok := uploadMedia(ctx, h, input)
	if !ok {
		return formFailure(c, h.Error())
	}
	changes := input.Changes()
	changes["image"] = utils.StringPtr(image)
	changes["video"] = utils.StringPtr(video)

	if h.Update(ctx, post.ID, changes) == nil {
		discardPending(ctx, h, input, image, video)
		return formFailure(c, h.Error())
	}
	h.Discard(ctx, post.Image, image)
	h.Discard(ctx, post.Video, video)
	return c.Redirect("/blog", fiber.StatusSeeOther)
}

func postConfirmation(post *model.BlogPost) confirmation {
	return confirmation{
		Title:  "Delete Blog Post",
		Name:   post.Name,
		Action: "/blog/" + post.ID + "/delete",
		Back:   "/blog",
	}
}

func ConfirmDeletePost(c *fiber.Ctx) error {
	return confirm(c, fiber.StatusOK, postConfirmation(c.Locals(validate.KeyRow).(*model.BlogPost)))
}

func DeletePost(c *fiber.Ctx) error {
	post := c.Locals(validate.KeyRow).(*model.BlogPost)
	h := posts()
	if !h.Delete(c.UserContext(), post.ID) {
		p := postConfirmation(post)
		p.Banner = h.Error()
		return confirm(c, fiber.StatusInternalServerError, p)
	}
	return c.Redirect("/blog", fiber.StatusSeeOther)
}
