package serverutils

import (
	"errors"

	"ai-shopping-list-be/pkg/grocery"

	"github.com/gofiber/fiber/v2"
)

// StatusForError maps domain and transport errors to an HTTP status.
func StatusForError(err error) int {
	var genErr *grocery.Error
	if errors.As(err, &genErr) {
		switch genErr.Kind {
		case grocery.KindValidation:
			return fiber.StatusBadRequest
		case grocery.KindEmptyResult:
			return fiber.StatusUnprocessableEntity
		case grocery.KindGeneration:
			return fiber.StatusBadGateway
		}
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return fiber.StatusInternalServerError
}

// WriteError renders err in the standard error envelope.
func WriteError(ctx *fiber.Ctx, err error) error {
	status := StatusForError(err)

	var genErr *grocery.Error
	if errors.As(err, &genErr) {
		return ctx.Status(status).JSON(ErrorResponseWithDetails(status, genErr.Reason, fiber.Map{
			"kind":    genErr.Kind,
			"details": genErr.Details,
		}))
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(status).JSON(ErrorResponseWithDetails(status, "Invalid request", validationErr.Fields))
	}

	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "Internal server error"
	}
	return ctx.Status(status).JSON(ErrorResponse(status, message))
}

// ErrorHandlerMiddleware converts errors returned by downstream handlers into JSON responses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err)
	}
}

// ErrorHandler is the fiber.Config ErrorHandler for errors raised outside the middleware chain.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	return WriteError(ctx, err)
}
