package validate

import (
	"nomad_admin/database"
	"nomad_admin/hook"
	"nomad_admin/model"

	"github.com/gofiber/fiber/v2"
)

func Feedback(key string) fiber.Handler {
	return load(key, KeyRow, "Feedback", func() getter[model.Feedback] {
		return hook.NewFeedback(database.DB)
	}, nil)
}
