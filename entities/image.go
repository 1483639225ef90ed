package entities

import (
	"time"

	"github.com/google/uuid"
)

// Image is a display image URL owned by exactly one food item. The first
// image of an item is its default display image.
type Image struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FoodItemID uuid.UUID `gorm:"index" json:"food_item_id"`
	Path       string    `json:"path"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`
}
