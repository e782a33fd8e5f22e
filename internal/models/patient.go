package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient represents a registered patient
type Patient struct {
	ID              uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	PatientNumber   int       `gorm:"uniqueIndex;not null" json:"patient_number"`
	FirstName       string    `gorm:"size:100;not null" json:"first_name"`
	MiddleName      *string   `gorm:"size:100" json:"middle_name,omitempty"`
	LastName        string    `gorm:"size:100;not null" json:"last_name"`
	Address         string    `gorm:"type:text" json:"address,omitempty"`
	TelephoneNumber string    `gorm:"size:30" json:"telephone_number,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
