package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse represents the standard API response format
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return respond(c, code, "success", message, data)
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return respond(c, code, errorStatus(code), message, nil)
}

// ErrorWithDataResponse sends an error response with details, e.g. per-field validation messages
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return respond(c, code, errorStatus(code), message, data)
}

// errorStatus is "fail" for server faults and "error" for client mistakes.
func errorStatus(code int) string {
	if code >= fiber.StatusInternalServerError {
		return "fail"
	}
	return "error"
}

func respond(c *fiber.Ctx, code int, status, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Data:    data,
	})
}
