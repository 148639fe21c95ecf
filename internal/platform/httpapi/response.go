// Package httpapi holds the JSON envelope and request validation shared by
// the HTTP handlers.
package httpapi

import "github.com/gofiber/fiber/v2"

// Envelope wraps every successful response body.
type Envelope struct {
	Success bool `json:"success" example:"true"`
	Data    any  `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"invalid time window"`
}

// JSON writes data inside a success envelope.
func JSON(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Success: true, Data: data})
}

// Error writes an error body. code is a stable machine-readable identifier;
// msg may be empty.
func Error(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   code,
		Message: msg,
	})
}
