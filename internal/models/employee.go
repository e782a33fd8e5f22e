package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee types stored in the employee_type column.
const (
	EmployeeTypeDoctor = "doctor"
	EmployeeTypeNurse  = "nurse"
)

// Employee represents a staff member. Doctors and nurses share one table;
// the variant-specific fields are nullable and only set for the matching
// employee type.
type Employee struct {
	ID              uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeNumber  int       `gorm:"uniqueIndex;not null" json:"employee_number"`
	FirstName       string    `gorm:"size:100;not null" json:"first_name"`
	MiddleName      *string   `gorm:"size:100" json:"middle_name,omitempty"`
	LastName        string    `gorm:"size:100;not null" json:"last_name"`
	Address         string    `gorm:"type:text" json:"address,omitempty"`
	TelephoneNumber string    `gorm:"size:30" json:"telephone_number,omitempty"`
	EmployeeType    string    `gorm:"size:20;not null;index" json:"employee_type"`

	// Doctor fields
	Specialty *string `gorm:"size:100" json:"specialty,omitempty"`

	// Nurse fields
	Rotation     *string    `gorm:"size:50" json:"rotation,omitempty"`
	Salary       *float64   `json:"salary,omitempty"`
	DepartmentID *uuid.UUID `gorm:"type:char(36)" json:"department_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName specifies the table name for Employee model
func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsDoctor reports whether the employee can act as a treating doctor.
func (e *Employee) IsDoctor() bool {
	return e.EmployeeType == EmployeeTypeDoctor
}
