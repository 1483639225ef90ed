package entities

import (
	"github.com/google/uuid"
)

type FoodItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name            string     `json:"name"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	OriginalPrice   float64    `json:"original_price"`
	DiscountedPrice *float64   `json:"discounted_price,omitempty"`
	TypeID          *uuid.UUID `json:"type_id,omitempty"`
	IsFeatured      bool       `json:"is_featured"`
	IsSoldOut       bool       `json:"is_sold_out"`
	IsWeekendOnly   bool       `json:"is_weekend_only"`
	IsActive        bool       `gorm:"default:true" json:"is_active"`

	Type     *FoodType  `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	MadeWith []MadeWith `gorm:"foreignKey:FoodItemID" json:"made_with,omitempty"`
	Images   []Image    `gorm:"foreignKey:FoodItemID" json:"images,omitempty"`
	Timestamp
}

// Price is the storefront unit price: the discounted price when one is
// set, the original price otherwise.
func (f *FoodItem) Price() float64 {
	if f.DiscountedPrice != nil {
		return *f.DiscountedPrice
	}
	return f.OriginalPrice
}
