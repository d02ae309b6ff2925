package handlers

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/internal/api/presenters"
	"Pick-My-Dish/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetIngredients(c.UserContext())
	if err != nil {
		return respondError(c, domain.MessageFailedGetIngredients, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"ingredients": res}, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.CreateIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIngredient, err)
	}

	id, err := h.ingredientService.CreateIngredient(c.UserContext(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedCreateIngredient, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"ingredientId": id}, fiber.StatusCreated, domain.MessageSuccessCreateIngredient)
}
