package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ward represents a group of beds within a department, identified by a
// department-scoped ward number
type Ward struct {
	ID           uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	WardNumber   int        `gorm:"not null;uniqueIndex:uq_ward_number_department,priority:1" json:"ward_number"`
	NumberOfBeds int        `gorm:"not null" json:"number_of_beds"`
	DepartmentID uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uq_ward_number_department,priority:2" json:"department_id"`
	SupervisorID *uuid.UUID `gorm:"type:char(36)" json:"supervisor_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relationships
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Supervisor *Employee   `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`
}

// TableName specifies the table name for Ward model
func (Ward) TableName() string {
	return "wards"
}

func (w *Ward) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
