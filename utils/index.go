package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON error envelope: {"message", "error"}.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// GetFirstValue returns the first posted value of key, or "".
func GetFirstValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

// StringPtr maps "" to nil for nullable columns.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
