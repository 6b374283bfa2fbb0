package handler

import (
	"errors"
	"time"

	"nomad_admin/helper"
	"nomad_admin/middleware"
	"nomad_admin/model"
	"nomad_admin/validate"
	"nomad_admin/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

func LoginPage(c *fiber.Ctx) error {
	return view.RenderForm(c, fiber.StatusOK, validate.LoginPage(), validate.NewLoginForm())
}

func Login(c *fiber.Ctx) error {
	input := c.Locals(validate.KeyInput).(*model.LoginInput)

	tokenClaim, err := helper.Authenticate(input.Email, input.Password)
	if err != nil {
		status := fiber.StatusUnauthorized
		message := "Invalid email or password"
		if !errors.Is(err, helper.ErrInvalidCredentials) {
			log.Errorf("login: %v", err)
			status = fiber.StatusInternalServerError
			message = err.Error()
		}
		page := validate.LoginPage()
		page.Banner = message
		return view.RenderForm(c, status, page, validate.NewLoginForm())
	}

	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(helper.SessionTTL()),
		Path:     "/",
	})
	log.Infof("admin %s signed in", tokenClaim.Email)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func Logout(c *fiber.Ctx) error {
	if claims, ok := c.Locals("user").(jwt.MapClaims); ok {
		if err := helper.RevokeToken(c.UserContext(), claims); err != nil {
			log.Warnf("revoke session: %v", err)
		}
	}
	c.ClearCookie(middleware.CookieName)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
