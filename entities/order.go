package entities

import (
	"time"

	"github.com/google/uuid"
)

// CustomerOrder snapshots the customer's contact details at order time so
// historical orders stay stable when the user profile later changes.
type CustomerOrder struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName   string    `json:"customer_name"`
	CustomerMobile string    `json:"customer_mobile"`
	CustomerEmail  string    `json:"customer_email"`
	TotalPrice     float64   `json:"total_price"`
	IsComplete     bool      `json:"is_complete"`
	UserID         uuid.UUID `gorm:"index" json:"user_id"`

	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Timestamp
}

// OrderItem captures the unit price at order time, immune to later
// catalog price changes.
type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID `gorm:"index" json:"order_id"`
	FoodItemID uuid.UUID `gorm:"index" json:"food_item_id"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
}
