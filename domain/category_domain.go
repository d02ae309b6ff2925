package domain

var (
	MessageSuccessGetCategories = "success get categories"
	MessageFailedGetCategories  = "failed to get categories"
)

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
