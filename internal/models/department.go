package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department represents a medical department within a hospital
type Department struct {
	ID             uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	DepartmentCode int        `gorm:"uniqueIndex;not null" json:"department_code"`
	DepartmentName string     `gorm:"size:255;not null" json:"department_name"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	NumberOfWards  int        `gorm:"default:0" json:"number_of_wards"`
	Building       string     `gorm:"size:100" json:"building,omitempty"`
	HospitalID     uuid.UUID  `gorm:"type:char(36);not null;index" json:"hospital_id"`
	DirectorID     *uuid.UUID `gorm:"type:char(36)" json:"director_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Director *Employee `gorm:"foreignKey:DirectorID" json:"director,omitempty"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
