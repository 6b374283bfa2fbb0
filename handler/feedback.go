package handler

import (
	"nomad_admin/database"
	"nomad_admin/hook"
	"nomad_admin/model"
	"nomad_admin/validate"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
)

func GetFeedback(c *fiber.Ctx) error {
	h := hook.NewFeedback(database.DB)
	rows := h.List(c.UserContext())
	return view.Render(c, statusOf(h.Error()), "feedback.html", fiber.Map{
		"Title":  "Feedback",
		"Rows":   rows,
		"Banner": h.Error(),
	})
}

func GetFeedbackById(c *fiber.Ctx) error {
	row := c.Locals(validate.KeyRow).(*model.Feedback)
	return view.Render(c, fiber.StatusOK, "feedback_detail.html", fiber.Map{
		"Title": "Feedback from " + row.Name,
		"Row":   row,
	})
}

func feedbackConfirmation(row *model.Feedback) confirmation {
	return confirmation{
		Title:  "Delete Feedback",
		Name:   "feedback from " + row.Name,
		Action: "/feedback/" + row.ID + "/delete",
		Back:   "/feedback",
	}
}

func ConfirmDeleteFeedback(c *fiber.Ctx) error {
	return confirm(c, fiber.StatusOK, feedbackConfirmation(c.Locals(validate.KeyRow).(*model.Feedback)))
}

func DeleteFeedback(c *fiber.Ctx) error {
	row := c.Locals(validate.KeyRow).(*model.Feedback)
	h := hook.NewFeedback(database.DB)
	if !h.Delete(c.UserContext(), row.ID) {
		p := feedbackConfirmation(row)
		p.Banner = h.Error()
		return confirm(c, fiber.StatusInternalServerError, p)
	}
	return c.Redirect("/feedback", fiber.StatusSeeOther)
}
