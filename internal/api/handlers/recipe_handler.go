package handlers

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/internal/api/presenters"
	"Pick-My-Dish/internal/utils/storage"
	"Pick-My-Dish/pkg/recipe"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const recipeImageDir = "recipes"

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		AttachIngredients(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		storage       storage.Storage
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, storage storage.Storage, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		storage:       storage,
		validator:     validator,
	}
}

// CreateRecipe decodes the whole form before the image is stored, and
// removes the stored image again if the recipe cannot be written.
func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	image, err := singleImage(c)
	if err != nil {
		return respondError(c, domain.MessageFailedCreateRecipe, err)
	}

	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	draft, err := recipe.DecodeRecipeForm(*req)
	if err != nil {
		return respondError(c, domain.MessageFailedCreateRecipe, err)
	}

	ctx := c.UserContext()
	var imagePath *string
	if image != nil {
		rel, err := h.storage.UploadFile(ctx, image, recipeImageDir)
		if err != nil {
			return respondError(c, domain.MessageFailedCreateRecipe, err)
		}
		imagePath = &rel
	}

	recipeID, err := h.recipeService.CreateRecipe(ctx, draft, imagePath)
	if err != nil {
		if imagePath != nil {
			if derr := h.storage.DeleteFile(ctx, *imagePath); derr != nil {
				log.Warnw("orphaned recipe image", "path", *imagePath, "error", derr)
			}
		}
		return respondError(c, domain.MessageFailedCreateRecipe, err)
	}

	res := fiber.Map{"recipeId": recipeID}
	if imagePath != nil {
		res["imagePath"] = *imagePath
		res["imageUrl"] = h.storage.PublicURL(*imagePath)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

// singleImage returns the optional "image" upload. Requests that are not
// multipart carry no image.
func singleImage(c *fiber.Ctx) (*multipart.FileHeader, error) {
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domain.NewValidationError("image", err.Error())
	}

	files := form.File["image"]
	switch len(files) {
	case 0:
		return nil, nil
	case 1:
		return files[0], nil
	default:
		return nil, domain.NewValidationError("image", "only one image may be uploaded")
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ListRecipes(c.UserContext())
	if err != nil {
		return respondError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"recipes": res}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.GetRecipe(c.UserContext(), recipeID)
	if err != nil {
		return respondError(c, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"recipe": res}, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) AttachIngredients(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, domain.MessageFailedAttachIngredient, err)
	}

	req := new(domain.AttachIngredientsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachIngredient, err)
	}

	if err := h.recipeService.AttachIngredients(c.UserContext(), recipeID, req.Ingredients); err != nil {
		return respondError(c, domain.MessageFailedAttachIngredient, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipeId":    recipeID,
		"ingredients": req.Ingredients,
	}, fiber.StatusOK, domain.MessageSuccessAttachIngredient)
}
