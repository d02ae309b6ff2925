package domain

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "Ingredient created"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedCreateIngredient = "failed to create ingredient"
)

type (
	CreateIngredientRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	Ingredient struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
