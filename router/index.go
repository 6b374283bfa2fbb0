package router

import (
	"errors"
	"strings"

	"nomad_admin/config"
	"nomad_admin/handler"
	"nomad_admin/middleware"
	"nomad_admin/utils"
	"nomad_admin/validate"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ErrorHandler answers JSON callers with the error envelope and everyone
// else with the error page.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Something went wrong"
	var e *fiber.Error
	if errors.As(err, &e) {
		status = e.Code
		message = e.Message
	} else {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	if strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
		return utils.ErrorResponse(c, status, message, err)
	}
	return view.Error(c, status, message)
}

// New builds the admin app with its middleware and routes.
func New() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    config.Int("BODY_LIMIT_MB", 64) * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.String("CORS_ORIGINS", "http://localhost:3000"),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))
	SetupRoutes(app)
	return app
}

func SetupRoutes(app *fiber.App) {
	logged := logger.New()
	app.Get("/login", logged, middleware.Guest(), handler.LoginPage)
	app.Post("/login", logged, middleware.Guest(), validate.Login(), handler.Login)
	app.Post("/logout", logged, middleware.Protected(), handler.Logout)
	app.Get("/", logged, middleware.Protected(), handler.Dashboard)

	spaces := app.Group("/spaces", logger.New(), middleware.Protected())
	spaces.Get("/", handler.GetSpaces)
	spaces.Get("/new", handler.NewSpace)
	spaces.Post("/", validate.CreateSpace(), handler.CreateSpace)
	spaces.Post("/new", validate.CreateSpace(), handler.CreateSpace)
	spaces.Get("/:id", validate.Space("id"), handler.GetSpaceById)
	spaces.Post("/:id", validate.Space("id"), validate.EditSpace(), handler.EditSpace)
	spaces.Get("/:id/delete", validate.Space("id"), handler.ConfirmDeleteSpace)
	spaces.Post("/:id/delete", validate.Space("id"), handler.DeleteSpace)

	// Child routes resolve the parent space before anything else.
	space := validate.Space("id")

	offers := spaces.Group("/:id/offers")
	offers.Get("/", space, handler.GetOffers)
	offers.Get("/new", space, handler.NewOffer)
	offers.Post("/", space, validate.CreateOffer(), handler.CreateOffer)
	offers.Post("/new", space, validate.CreateOffer(), handler.CreateOffer)
	offers.Get("/:offerId", space, validate.Offer("offerId"), handler.GetOfferById)
	offers.Post("/:offerId", space, validate.Offer("offerId"), validate.EditOffer(), handler.EditOffer)
	offers.Get("/:offerId/delete", space, validate.Offer("offerId"), handler.ConfirmDeleteOffer)
	offers.Post("/:offerId/delete", space, validate.Offer("offerId"), handler.DeleteOffer)

	attractions := spaces.Group("/:id/attractions")
	attractions.Get("/", space, handler.GetAttractions)
	attractions.Get("/new", space, handler.NewAttraction)
	attractions.Post("/", space, validate.CreateAttraction(), handler.CreateAttraction)
	attractions.Post("/new", space, validate.CreateAttraction(), handler.CreateAttraction)
	attractions.Get("/:attractionId", space, validate.Attraction("attractionId"), handler.GetAttractionById)
	attractions.Post("/:attractionId", space, validate.Attraction("attractionId"), validate.EditAttraction(), handler.EditAttraction)
	attractions.Get("/:attractionId/delete", space, validate.Attraction("attractionId"), handler.ConfirmDeleteAttraction)
	attractions.Post("/:attractionId/delete", space, validate.Attraction("attractionId"), handler.DeleteAttraction)

	images := spaces.Group("/:id/images")
	images.Get("/", space, handler.GetGallery)
	images.Post("/", space, validate.UploadImage(), handler.UploadImage)
	images.Post("/reorder", space, validate.Reorder(), handler.ReorderImages)
	images.Get("/:imageId", space, validate.Image("imageId"), handler.GetImageById)
	images.Post("/:imageId", space, validate.Image("imageId"), validate.EditImage(), handler.UpdateImageAlt)
	images.Post("/:imageId/delete", space, validate.Image("imageId"), handler.DeleteImage)

	events := app.Group("/events", logger.New(), middleware.Protected())
	events.Get("/", handler.GetEvents)
	events.Get("/new", handler.NewEvent)
	events.Post("/", validate.CreateEvent(), handler.CreateEvent)
	events.Post("/new", validate.CreateEvent(), handler.CreateEvent)
	events.Get("/:id", validate.Event("id"), handler.GetEventById)
	events.Post("/:id", validate.Event("id"), validate.EditEvent(), handler.EditEvent)
	events.Get("/:id/delete", validate.Event("id"), handler.ConfirmDeleteEvent)
	events.Post("/:id/delete", validate.Event("id"), handler.DeleteEvent)

	blog := app.Group("/blog", logger.New(), middleware.Protected())
	blog.Get("/", handler.GetPosts)
	blog.Get("/new", handler.NewPost)
	blog.Post("/", validate.CreateBlog(), handler.CreatePost)
	blog.Post("/new", validate.CreateBlog(), handler.CreatePost)
	blog.Get("/:id", validate.Blog("id"), handler.GetPostById)
	blog.Post("/:id", validate.Blog("id"), validate.EditBlog(), handler.EditPost)
	blog.Get("/:id/delete", validate.Blog("id"), handler.ConfirmDeletePost)
	blog.Post("/:id/delete", validate.Blog("id"), handler.DeletePost)

	feedback := app.Group("/feedback", logger.New(), middleware.Protected())
	feedback.Get("/", handler.GetFeedback)
	feedback.Get("/:id", validate.Feedback("id"), handler.GetFeedbackById)
	feedback.Get("/:id/delete", validate.Feedback("id"), handler.ConfirmDeleteFeedback)
	feedback.Post("/:id/delete", validate.Feedback("id"), handler.DeleteFeedback)
}
