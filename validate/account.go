package validate

import (
	"nomad_admin/form"
	"nomad_admin/model"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
)

var LoginFields = []form.Field{
	{Name: "email", Label: "Email", Kind: form.KindInput, InputType: "email", Placeholder: "admin@example.com"},
	{Name: "password", Label: "Password", Kind: form.KindInput, InputType: "password"},
}

func NewLoginForm() *form.Form[model.LoginInput] {
	return form.New[model.LoginInput](LoginFields, form.Values{"email": "", "password": ""})
}

func LoginPage() view.FormPage {
	return view.FormPage{
		Title:      "Sign in",
		Action:     "/login",
		SubmitText: "Sign in",
		Template:   "login.html",
	}
}

func Login() fiber.Handler {
	return submit(func(c *fiber.Ctx) (*form.Form[model.LoginInput], view.FormPage, error) {
		return NewLoginForm(), LoginPage(), nil
	})
}
