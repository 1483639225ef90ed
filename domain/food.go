package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFood      = "food item added successfully"
	MessageSuccessUpdateFood   = "food item updated successfully"
	MessageSuccessDeleteFood   = "food item deactivated successfully"
	MessageSuccessGetFoods     = "food items retrieved successfully"
	MessageSuccessAddImage     = "image added successfully"
	MessageSuccessDeleteImage  = "image deleted successfully"
	MessageSuccessUpdateStatus = "food item status updated successfully"

	MessageFailedAddFood      = "failed to add food item"
	MessageFailedUpdateFood   = "failed to update food item"
	MessageFailedDeleteFood   = "failed to deactivate food item"
	MessageFailedGetFoods     = "failed to retrieve food items"
	MessageFailedAddImage     = "failed to add image"
	MessageFailedDeleteImage  = "failed to delete image"
	MessageFailedUpdateStatus = "failed to update food item status"

	ErrFoodNotFound    = errors.New("food item not found")
	ErrImageNotFound   = errors.New("image not found")
	ErrTypeNotFound    = errors.New("food type not found")
	ErrDiscountExceeds = errors.New("discounted price exceeds original price")
	ErrEmptyUpdate     = errors.New("at least one field must be provided")
)

type (
	MadeWithRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
		Quantity     string `json:"quantity" validate:"required"`
	}

	AddFoodRequest struct {
		Name            string            `json:"name" validate:"required"`
		Description     string            `json:"description"`
		OriginalPrice   float64           `json:"original_price" validate:"required,gt=0"`
		DiscountedPrice *float64          `json:"discounted_price" validate:"omitempty,gte=0"`
		TypeID          *string           `json:"type_id" validate:"omitempty,uuid"`
		IsFeatured      bool              `json:"is_featured"`
		IsWeekendOnly   bool              `json:"is_weekend_only"`
		MadeWith        []MadeWithRequest `json:"made_with" validate:"omitempty,dive"`
		Images          []string          `json:"images" validate:"omitempty,dive,min=1"`
	}

	// UpdateFoodRequest is partial: nil fields are left untouched. MadeWith
	// and Images, when present, replace the item's associations wholesale.
	UpdateFoodRequest struct {
		Name            *string            `json:"name" validate:"omitempty,min=1"`
		Description     *string            `json:"description"`
		OriginalPrice   *float64           `json:"original_price" validate:"omitempty,gt=0"`
		DiscountedPrice *float64           `json:"discounted_price" validate:"omitempty,gte=0"`
		ClearDiscount   bool               `json:"clear_discount"`
		TypeID          *string            `json:"type_id" validate:"omitempty,uuid"`
		ClearType       bool               `json:"clear_type"`
		IsFeatured      *bool              `json:"is_featured"`
		IsWeekendOnly   *bool              `json:"is_weekend_only"`
		IsActive        *bool              `json:"is_active"`
		MadeWith        *[]MadeWithRequest `json:"made_with" validate:"omitempty,dive"`
		Images          *[]string          `json:"images" validate:"omitempty,dive,min=1"`
	}

	UpdateFoodStatusRequest struct {
		IsFeatured    *bool `json:"is_featured"`
		IsSoldOut     *bool `json:"is_sold_out"`
		IsWeekendOnly *bool `json:"is_weekend_only"`
		IsActive      *bool `json:"is_active"`
	}

	AddImageRequest struct {
		Path string `json:"path" validate:"required,url"`
	}

	FoodTypeResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	MadeWithResponse struct {
		ID           string `json:"id"`
		IngredientID string `json:"ingredient_id"`
		Name         string `json:"name"`
		Quantity     string `json:"quantity"`
	}

	ImageResponse struct {
		ID   string `json:"id"`
		Path string `json:"path"`
	}

	FoodResponse struct {
		ID              string             `json:"id"`
		Name            string             `json:"name"`
		Description     string             `json:"description,omitempty"`
		OriginalPrice   float64            `json:"original_price"`
		DiscountedPrice *float64           `json:"discounted_price,omitempty"`
		Type            *FoodTypeResponse  `json:"type,omitempty"`
		IsFeatured      bool               `json:"is_featured"`
		IsSoldOut       bool               `json:"is_sold_out"`
		IsWeekendOnly   bool               `json:"is_weekend_only"`
		IsActive        bool               `json:"is_active"`
		MadeWith        []MadeWithResponse `json:"made_with"`
		Images          []ImageResponse    `json:"images"`
		CreatedAt       time.Time          `json:"created_at"`
	}
)
