package entities

type Recipe struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      *uint   `gorm:"index" json:"user_id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	CategoryID  uint    `gorm:"not null;index" json:"category_id"`
	CookingTime *string `gorm:"size:50" json:"cooking_time"`
	Calories    *string `gorm:"size:50" json:"calories"`
	// Steps and Emotions hold JSON arrays of strings.
	Steps     string  `gorm:"type:text;not null;default:'[]'" json:"steps"`
	Emotions  string  `gorm:"type:text;not null;default:'[]'" json:"emotions"`
	ImagePath *string `gorm:"size:512" json:"image_path"`

	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}

// RecipeIngredient links a recipe to an ingredient. The autoincrement ID
// records insertion order; Quantity and Unit are optional.
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RecipeID     uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint    `gorm:"not null;index" json:"ingredient_id"`
	Quantity     *string `gorm:"size:50" json:"quantity,omitempty"`
	Unit         *string `gorm:"size:50" json:"unit,omitempty"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
