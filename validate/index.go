package validate

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"nomad_admin/form"
	"nomad_admin/model"
	"nomad_admin/storage"
	"nomad_admin/utils"
	"nomad_admin/view"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Locals keys shared with the handlers.
const (
	KeyID    = "inputId"
	KeyForm  = "form"
	KeyPage  = "page"
	KeyInput = "input"
	KeyRow   = "row"
	KeySpace = "space"
)

// Posted reads a multipart or urlencoded body into one shape.
func Posted(c *fiber.Ctx) (*multipart.Form, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return c.MultipartForm()
	}
	p := &multipart.Form{Value: map[string][]string{}, File: map[string][]*multipart.FileHeader{}}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		p.Value[k] = append(p.Value[k], string(value))
	})
	return p, nil
}

// GetById rejects ids that are not UUIDs before any lookup happens.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		if err := uuid.Validate(params); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		c.Locals(KeyID, params)
		return c.Next()
	}
}

// Reorder parses the gallery order posted by the drag and drop list.
func Reorder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReorderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Invalid image order", err)
		}

		c.Locals(KeyInput, input)
		return c.Next()
	}
}

// builder prepares the form and page of one request. Edit builders load the
// row first and stash it under KeyRow.
type builder[T any] func(c *fiber.Ctx) (*form.Form[T], view.FormPage, error)

// submit runs a posted form. A tag picker action re-renders the form, an
// invalid form re-renders with its messages, and a valid one hands the typed
// input to the next handler.
func submit[T any](build builder[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, page, err := build(c)
		if err != nil {
			return err
		}
		p, err := Posted(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "The form could not be read")
		}
		if f.Apply(p) {
			return view.RenderForm(c, fiber.StatusOK, page, f)
		}
		input, ok := f.Submit()
		if !ok {
			return view.RenderForm(c, fiber.StatusUnprocessableEntity, page, f)
		}

		c.Locals(KeyForm, view.Renderable(f))
		c.Locals(KeyPage, page)
		c.Locals(KeyInput, input)
		return c.Next()
	}
}

// lookupError maps a failed hook lookup to an HTTP error.
func lookupError(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	return fiber.NewError(fiber.StatusInternalServerError, msg)
}

func stored(path *string) form.File {
	if path == nil {
		return form.File{}
	}
	return form.Stored(*path)
}

type getter[M any] interface {
	Get(ctx context.Context, id string) *M
	Err() error
}

// load fetches the row named by a route param into Locals. belongs, when
// set, rejects rows that do not hang under the already loaded parent.
func load[M any](key, local, what string, open func() getter[M], belongs func(c *fiber.Ctx, row *M) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if uuid.Validate(id) != nil {
			return fiber.NewError(fiber.StatusNotFound, what+" not found")
		}
		h := open()
		row := h.Get(c.UserContext(), id)
		if row == nil {
			return lookupError(h.Err(), what)
		}
		if belongs != nil && !belongs(c, row) {
			return fiber.NewError(fiber.StatusNotFound, what+" not found")
		}
		c.Locals(local, row)
		return c.Next()
	}
}

func parentID(c *fiber.Ctx) string {
	if s, ok := c.Locals(KeySpace).(*model.Space); ok {
		return s.ID
	}
	return ""
}

func resolver() form.URLResolver {
	if storage.Default == nil {
		return nil
	}
	return storage.Default.PublicURL
}
