package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hospital represents a hospital/medical facility in the system
type Hospital struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Branch    string    `gorm:"size:100" json:"branch,omitempty"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	City      string    `gorm:"size:100" json:"city,omitempty"`
	State     string    `gorm:"size:100" json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
