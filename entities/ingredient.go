package entities

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Timestamp
}

// MadeWith links a food item to an ingredient with a free-text quantity
// such as "200g". Rows are owned by the food item and replaced wholesale
// when its ingredient list is edited.
type MadeWith struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FoodItemID   uuid.UUID `gorm:"index" json:"food_item_id"`
	IngredientID uuid.UUID `gorm:"index" json:"ingredient_id"`
	Quantity     string    `json:"quantity"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}
