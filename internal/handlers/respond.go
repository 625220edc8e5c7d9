package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/bazaar/internal/services"
	"github.com/example/bazaar/internal/validation"
)

// sendSuccess writes the standard success envelope.
func sendSuccess(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
		"meta":    nil,
	})
}

// sendSuccessMeta writes the success envelope with pagination meta.
func sendSuccessMeta(c *fiber.Ctx, message string, data, meta interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
		"meta":    meta,
	})
}

// sendValidationErrors writes the 400 envelope for failed rule tables.
func sendValidationErrors(c *fiber.Ctx, errs []validation.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success":   false,
		"errorCode": "VALIDATION_ERROR",
		"errors":    errs,
	})
}

// serviceError maps workflow errors onto HTTP status codes. Unknown errors
// pass through to the app-level error handler, which logs them and answers
// with a generic 500.
func serviceError(err error) error {
	var stockErr *services.InsufficientStockError
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrMobileTaken),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrCodeExpired),
		errors.Is(err, services.ErrAlreadyActive),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrQuantityOutOfRange),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrAlreadyWishlisted),
		errors.Is(err, services.ErrStockBelowReserved):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.As(err, &stockErr):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAccountLocked):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return err
}
