package handler

import (
	"strings"

	"nomad_admin/database"
	"nomad_admin/hook"
	"nomad_admin/storage"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	spaces := hook.NewSpace(database.DB, storage.Default)
	events := hook.NewEvent(database.DB, storage.Default)
	posts := hook.NewBlog(database.DB, storage.Default)
	feedback := hook.NewFeedback(database.DB)

	data := fiber.Map{
		"Title":    "Dashboard",
		"Spaces":   spaces.Count(ctx),
		"Events":   events.Count(ctx),
		"Posts":    posts.Count(ctx),
		"Feedback": feedback.Count(ctx),
	}
	banner := strings.Join(lo.Compact([]string{spaces.Error(), events.Error(), posts.Error(), feedback.Error()}), "; ")
	data["Banner"] = banner
	return view.Render(c, statusOf(banner), "dashboard.html", data)
}
