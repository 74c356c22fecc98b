package utils

import "github.com/gofiber/fiber/v2"

// APIResponse describes the common structure for error responses. Success
// payloads are endpoint-specific and returned unwrapped.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}
