package recipe

import (
	"Pick-My-Dish/domain"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EncodeStringList is the storage encoding for steps and emotions: a JSON
// array of strings. A nil list encodes as "[]".
func EncodeStringList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		// []string always marshals
		panic(err)
	}
	return string(b)
}

// DecodeStringList is the strict decoder used on the write path.
func DecodeStringList(raw string) ([]string, error) {
	items := []string{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// decodeStoredList never fails: rows written by older clients may hold
// anything, and the list view must still render them.
func decodeStoredList(raw string) ([]string, bool) {
	items, err := DecodeStringList(raw)
	if err != nil {
		return []string{}, false
	}
	return items, true
}

// DecodeRecipeForm validates the multipart fields and parses the JSON
// encoded ones. Nothing is written before this succeeds.
func DecodeRecipeForm(req domain.CreateRecipeRequest) (domain.RecipeDraft, error) {
	draft := domain.RecipeDraft{
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		CookingTime: strings.TrimSpace(req.Time),
		Calories:    strings.TrimSpace(req.Calories),
	}

	if draft.Name == "" {
		return domain.RecipeDraft{}, domain.NewValidationError("name", "is required")
	}
	if draft.Category == "" {
		return domain.RecipeDraft{}, domain.NewValidationError("category", "is required")
	}
	ownerID, err := parseID(req.UserID)
	if err != nil {
		return domain.RecipeDraft{}, domain.NewValidationError("userId", err.Error())
	}
	draft.OwnerUserID = ownerID

	if draft.IngredientIDs, err = decodeIDList("ingredients", req.Ingredients); err != nil {
		return domain.RecipeDraft{}, err
	}
	if draft.Instructions, err = decodeFormList("instructions", req.Instructions); err != nil {
		return domain.RecipeDraft{}, err
	}
	if draft.Moods, err = decodeFormList("emotions", req.Emotions); err != nil {
		return domain.RecipeDraft{}, err
	}
	draft.Moods = uniqueStrings(draft.Moods)

	return draft, nil
}

func parseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("must be a positive integer, got %q", raw)
	}
	return uint(id), nil
}

// decodeFormList parses a JSON array of strings, trimming entries and
// dropping blank ones. An absent field is an empty list.
func decodeFormList(field, raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	items, err := DecodeStringList(raw)
	if err != nil {
		return nil, &domain.MalformedInputError{Field: field, Err: err}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}

// decodeIDList accepts a JSON array of positive integers; numeric strings
// such as "3" are accepted too. Order and duplicates are kept.
func decodeIDList(field, raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return []uint{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, &domain.MalformedInputError{Field: field, Err: err}
	}

	ids := make([]uint, 0, len(items))
	for i, item := range items {
		var n json.Number
		if err := json.Unmarshal(item, &n); err != nil {
			var s string
			if json.Unmarshal(item, &s) != nil {
				return nil, &domain.MalformedInputError{Field: field, Err: fmt.Errorf("element %d is not an id", i)}
			}
			n = json.Number(strings.TrimSpace(s))
		}
		id, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil || id == 0 {
			return nil, &domain.MalformedInputError{Field: field, Err: fmt.Errorf("element %d: %q is not a positive integer", i, n.String())}
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func uniqueStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
