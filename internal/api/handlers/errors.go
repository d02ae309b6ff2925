package handlers

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/internal/api/presenters"
	"Pick-My-Dish/internal/utils/storage"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func statusFor(err error) int {
	var (
		validationErr validator.ValidationErrors
		fieldErr      *domain.ValidationError
		malformedErr  *domain.MalformedInputError
	)
	switch {
	case errors.As(err, &fieldErr),
		errors.As(err, &malformedErr),
		errors.As(err, &validationErr),
		errors.Is(err, domain.ErrDuplicateUser):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps a service error to its status. A failed ingredient link
// also reports the recipe and ingredient ids, and whether the recipe row was
// discarded with the rolled back transaction.
func respondError(c *fiber.Ctx, message string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Errorw(message, "method", c.Method(), "path", c.Path(), "error", err)
	}

	var linkErr *domain.IngredientLinkError
	if errors.As(err, &linkErr) {
		return c.Status(status).JSON(fiber.Map{
			"error":           message,
			"recipeId":        linkErr.RecipeID,
			"ingredientId":    linkErr.IngredientID,
			"recipeDiscarded": linkErr.RecipeDiscarded,
		})
	}
	return presenters.ErrorResponse(c, status, message, err)
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return uint(id), nil
}

// ErrorHandler is the fiber fallback for errors no handler rendered, such
// as unknown routes or an oversized body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	switch {
	case status >= fiber.StatusInternalServerError:
		log.Errorw("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedProcessRequest, err)
	case status == fiber.StatusRequestEntityTooLarge:
		// fasthttp refuses the body before any handler runs, so the image
		// size check never sees it; report it the same way.
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, fallbackMessage(status),
			domain.NewValidationError("size", fmt.Sprintf("request body exceeds %d bytes, images are limited to %d bytes",
				c.App().Config().BodyLimit, storage.MaxImageSize)))
	}
	return presenters.ErrorResponse(c, status, fallbackMessage(status), err)
}

func fallbackMessage(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "route not found"
	case fiber.StatusRequestEntityTooLarge:
		return "request body too large"
	default:
		return domain.MessageFailedProcessRequest
	}
}
