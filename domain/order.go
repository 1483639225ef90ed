package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlaceOrder     = "order placed successfully"
	MessageSuccessGetOrders      = "orders retrieved successfully"
	MessageSuccessUpdateOrder    = "order updated successfully"
	MessageSuccessPendingSummary = "pending summary retrieved successfully"

	MessageFailedPlaceOrder     = "failed to place order"
	MessageFailedGetOrders      = "failed to retrieve orders"
	MessageFailedUpdateOrder    = "failed to update order"
	MessageFailedPendingSummary = "failed to retrieve pending summary"

	ErrOrderNotFound = errors.New("order not found")
	ErrFoodSoldOut   = errors.New("one or more items are sold out")
)

type (
	OrderCustomerRequest struct {
		Name   string `json:"name" validate:"required,min=1"`
		Mobile string `json:"mobile" validate:"required,min=6"`
		Email  string `json:"email" validate:"required,email"`
	}

	OrderItemRequest struct {
		FoodItemID string `json:"food_item_id" validate:"required,uuid"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
	}

	PlaceOrderRequest struct {
		Customer OrderCustomerRequest `json:"customer" validate:"required"`
		Items    []OrderItemRequest   `json:"items" validate:"required,min=1,dive"`
	}

	OrderItemResponse struct {
		ID         string  `json:"id"`
		FoodItemID string  `json:"food_item_id"`
		Name       string  `json:"name"`
		ImageURL   string  `json:"image_url,omitempty"`
		Quantity   int     `json:"quantity"`
		Price      float64 `json:"price"`
	}

	OrderResponse struct {
		ID             string              `json:"id"`
		CustomerName   string              `json:"customer_name"`
		CustomerMobile string              `json:"customer_mobile"`
		CustomerEmail  string              `json:"customer_email"`
		TotalPrice     float64             `json:"total_price"`
		IsComplete     bool                `json:"is_complete"`
		UserID         string              `json:"user_id"`
		Items          []OrderItemResponse `json:"items"`
		CreatedAt      time.Time           `json:"created_at"`
		ShareURL       string              `json:"share_url,omitempty"`
	}

	UpdateOrderRequest struct {
		IsComplete bool `json:"is_complete"`
	}

	PendingSummaryEntry struct {
		FoodItemID string `json:"food_item_id"`
		FoodName   string `json:"food_name"`
		Quantity   int    `json:"quantity"`
	}
)
