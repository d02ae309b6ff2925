package handlers

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/internal/api/presenters"
	"Pick-My-Dish/pkg/category"

	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		GetCategories(c *fiber.Ctx) error
		Health(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
	}
)

func NewCategoryHandler(categoryService category.CategoryService) CategoryHandler {
	return &categoryHandler{categoryService: categoryService}
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.categoryService.GetCategories(c.UserContext())
	if err != nil {
		return respondError(c, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"categories": res}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

// Health reads the category table, which also proves the seed ran.
func (h *categoryHandler) Health(c *fiber.Ctx) error {
	res, err := h.categoryService.GetCategories(c.UserContext())
	if err != nil {
		return respondError(c, domain.MessageFailedHealth, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"categories": res}, fiber.StatusOK, domain.MessageSuccessHealth)
}
