package domain

import (
	"errors"
)

var (
	MessageSuccessAddType    = "food type added successfully"
	MessageSuccessUpdateType = "food type updated successfully"
	MessageSuccessDeleteType = "food type deleted successfully"
	MessageSuccessGetTypes   = "food types retrieved successfully"

	MessageFailedAddType    = "failed to add food type"
	MessageFailedUpdateType = "failed to update food type"
	MessageFailedDeleteType = "failed to delete food type"
	MessageFailedGetTypes   = "failed to retrieve food types"

	ErrTypeInUse = errors.New("food type is still referenced by food items")
)

type (
	FoodTypeRequest struct {
		Name string `json:"name" validate:"required,min=1"`
	}
)
