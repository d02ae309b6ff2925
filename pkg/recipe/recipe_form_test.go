package recipe

import (
	"Pick-My-Dish/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Name:         " Pancakes ",
		Category:     "Breakfast",
		Time:         "20 mins",
		Calories:     "350",
		Ingredients:  `[1, "2", 2]`,
		Instructions: `["Step 1", "  ", "Step 2"]`,
		Emotions:     `["happy","cozy","happy"]`,
		UserID:       "7",
	}
}

func TestDecodeRecipeForm(t *testing.T) {
	draft, err := DecodeRecipeForm(validForm())
	require.NoError(t, err)

	assert.Equal(t, domain.RecipeDraft{
		Name:          "Pancakes",
		Category:      "Breakfast",
		CookingTime:   "20 mins",
		Calories:      "350",
		IngredientIDs: []uint{1, 2, 2},
		Instructions:  []string{"Step 1", "Step 2"},
		Moods:         []string{"happy", "cozy"},
		OwnerUserID:   7,
	}, draft)
}

func TestDecodeRecipeForm_AbsentListsAreEmpty(t *testing.T) {
	form := validForm()
	form.Ingredients, form.Instructions, form.Emotions = "", "", ""

	draft, err := DecodeRecipeForm(form)
	require.NoError(t, err)
	assert.Equal(t, []uint{}, draft.IngredientIDs)
	assert.Equal(t, []string{}, draft.Instructions)
	assert.Equal(t, []string{}, draft.Moods)
}

func TestDecodeRecipeForm_RequiredFields(t *testing.T) {
	cases := map[string]func(*domain.CreateRecipeRequest){
		"name":     func(f *domain.CreateRecipeRequest) { f.Name = "  " },
		"category": func(f *domain.CreateRecipeRequest) { f.Category = "" },
		"userId":   func(f *domain.CreateRecipeRequest) { f.UserID = "abc" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			form := validForm()
			mutate(&form)

			_, err := DecodeRecipeForm(form)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, field, verr.Field)
		})
	}
}

func TestDecodeRecipeForm_MalformedLists(t *testing.T) {
	cases := map[string]func(*domain.CreateRecipeRequest){
		"ingredients":  func(f *domain.CreateRecipeRequest) { f.Ingredients = `[1, "two"]` },
		"instructions": func(f *domain.CreateRecipeRequest) { f.Instructions = `Step 1, Step 2` },
		"emotions":     func(f *domain.CreateRecipeRequest) { f.Emotions = `{"mood":"happy"}` },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			form := validForm()
			mutate(&form)

			_, err := DecodeRecipeForm(form)
			var merr *domain.MalformedInputError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, field, merr.Field)
		})
	}
}

func TestStringListEncoding(t *testing.T) {
	assert.Equal(t, "[]", EncodeStringList(nil))
	assert.Equal(t, `["Step 1","Step 2"]`, EncodeStringList([]string{"Step 1", "Step 2"}))

	items, ok := decodeStoredList(`["a"]`)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, items)

	for _, raw := range []string{"", "not json", `{"a":1}`, "null"} {
		items, _ := decodeStoredList(raw)
		assert.NotNil(t, items, raw)
		assert.Empty(t, items, raw)
	}
}
