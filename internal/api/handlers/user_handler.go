package handlers

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/internal/api/presenters"
	"Pick-My-Dish/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Profile(c *fiber.Ctx) error
		UpdateUsername(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	userID, err := h.userService.Register(c.UserContext(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"userId": userID}, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.UserContext(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"user":   res.User,
		"userId": res.User.ID,
		"token":  res.Token,
	}, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) Profile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	res, err := h.userService.Me(c.UserContext(), userID)
	if err != nil {
		return respondError(c, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"user": res}, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *userHandler) UpdateUsername(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.UpdateUsernameRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUsername, err)
	}

	if err := h.userService.UpdateUsername(c.UserContext(), userID, req.Username); err != nil {
		return respondError(c, domain.MessageFailedUpdateUsername, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"username": req.Username}, fiber.StatusOK, domain.MessageSuccessUpdateUsername)
}
