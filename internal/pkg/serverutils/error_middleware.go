package serverutils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts typed service errors into HTTP responses so
// controllers can simply `return err`.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(validationErr.Error()))
		}

		var notFoundErr *NotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(notFoundErr.Error()))
		}

		var conflictErr *ConflictError
		if errors.As(err, &conflictErr) {
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(conflictErr.Error()))
		}

		var invariantErr *InvariantViolationError
		if errors.As(err, &invariantErr) {
			log.Printf("[FATAL-LOGIC] %v (path=%s)", invariantErr, ctx.Path())
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(invariantErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Printf("[ERROR] Unhandled: %v (path=%s)", err, ctx.Path())
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
