package middleware

import (
	"errors"
	"strings"

	"nomad_admin/helper"
	"nomad_admin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const CookieName = "access_token"

func tokenFrom(c *fiber.Ctx) string {
	token := c.Cookies(CookieName)
	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) ||
		strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

func deny(c *fiber.Ctx, message string, err error) error {
	if wantsJSON(c) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, message, err)
	}
	c.ClearCookie(CookieName)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// Protected admits requests carrying a valid, unrevoked session token.
// Pages are redirected to /login, JSON callers get a 401.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFrom(c)
		if token == "" {
			return deny(c, "Missing token", errors.New("no token"))
		}

		claims, err := helper.ParseAccessToken(token)
		if err != nil {
			return deny(c, "Invalid token", err)
		}

		revoked, err := helper.IsRevoked(c.UserContext(), claims)
		if err != nil {
			log.Warnf("session revocation check failed: %v", err)
		}
		if revoked {
			return deny(c, "Session ended", errors.New("token revoked"))
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// Guest sends already signed-in admins away from the login page.
func Guest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := tokenFrom(c); token != "" {
			if _, err := helper.ParseAccessToken(token); err == nil {
				return c.Redirect("/", fiber.StatusSeeOther)
			}
		}
		return c.Next()
	}
}
