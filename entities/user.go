package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name         string     `json:"name"`
	Mobile       string     `gorm:"index" json:"mobile"`
	Email        string     `gorm:"index" json:"email"`
	Provider     string     `json:"provider,omitempty"`
	ProviderID   string     `gorm:"index" json:"provider_id,omitempty"`
	LastLoggedIn *time.Time `gorm:"type:timestamp" json:"last_logged_in,omitempty"`

	Timestamp
}
