package handlers

import (
	"errors"

	"ayushi-kitchen-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps domain sentinel errors onto the HTTP taxonomy:
// 400 validation, 401 auth, 404 missing references, 409 business-rule
// conflicts, 500 otherwise.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, domain.ErrDiscountExceeds),
		errors.Is(err, domain.ErrEmailMissing):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrGoogleTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrTypeNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrImageNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrFoodSoldOut),
		errors.Is(err, domain.ErrTypeInUse),
		errors.Is(err, domain.ErrIngredientInUse):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
