package handlers

import (
	"ayushi-kitchen-backend/domain"
	"ayushi-kitchen-backend/internal/api/presenters"
	"ayushi-kitchen-backend/pkg/foodtype"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodTypeHandler interface {
		ListTypes(c *fiber.Ctx) error
		AddType(c *fiber.Ctx) error
		UpdateType(c *fiber.Ctx) error
		DeleteType(c *fiber.Ctx) error
	}

	foodTypeHandler struct {
		foodTypeService foodtype.FoodTypeService
		validator       *validator.Validate
	}
)

func NewFoodTypeHandler(foodTypeService foodtype.FoodTypeService, validator *validator.Validate) FoodTypeHandler {
	return &foodTypeHandler{
		foodTypeService: foodTypeService,
		validator:       validator,
	}
}

func (h *foodTypeHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.foodTypeService.List(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedGetTypes, err)
	}

	return presenters.SuccessResponse(c, types, fiber.StatusOK, domain.MessageSuccessGetTypes)
}

func (h *foodTypeHandler) AddType(c *fiber.Ctx) error {
	req := new(domain.FoodTypeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddType, err)
	}

	res, err := h.foodTypeService.Create(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedAddType, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddType)
}

func (h *foodTypeHandler) UpdateType(c *fiber.Ctx) error {
	req := new(domain.FoodTypeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateType, err)
	}

	res, err := h.foodTypeService.Update(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedUpdateType, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateType)
}

func (h *foodTypeHandler) DeleteType(c *fiber.Ctx) error {
	if err := h.foodTypeService.Delete(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFromError(err), domain.MessageFailedDeleteType, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteType)
}
