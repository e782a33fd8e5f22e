package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admission represents a patient's stay in a ward bed under a treating
// doctor. Admission rows are never hard-deleted; discharged stays keep
// their row with a discharge date.
//
// IsCurrent is a nullable flag: true while the stay is active, NULL once
// discharged. NULL rows are exempt from the composite unique indexes, so
// the indexes enforce at most one live stay per patient and per
// (ward, bed) without colliding on historical rows.
type Admission struct {
	ID               uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	PatientID        uuid.UUID  `gorm:"type:char(36);not null;index;uniqueIndex:uq_admission_patient_current,priority:1" json:"patient_id"`
	WardID           uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uq_admission_ward_bed_current,priority:1" json:"ward_id"`
	BedNumber        int        `gorm:"not null;uniqueIndex:uq_admission_ward_bed_current,priority:2" json:"bed_number"`
	Diagnosis        string     `gorm:"type:text" json:"diagnosis,omitempty"`
	TreatingDoctorID uuid.UUID  `gorm:"type:char(36);not null" json:"treating_doctor_id"`
	AdmissionDate    time.Time  `gorm:"type:date;not null" json:"admission_date"`
	DischargeDate    *time.Time `gorm:"type:date" json:"discharge_date,omitempty"`
	IsCurrent        *bool      `gorm:"uniqueIndex:uq_admission_patient_current,priority:2;uniqueIndex:uq_admission_ward_bed_current,priority:3" json:"is_current,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	Patient        *Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Ward           *Ward     `gorm:"foreignKey:WardID" json:"ward,omitempty"`
	TreatingDoctor *Employee `gorm:"foreignKey:TreatingDoctorID" json:"treating_doctor,omitempty"`
}

// TableName specifies the table name for Admission model
func (Admission) TableName() string {
	return "admissions"
}

func (a *Admission) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Current reports whether the admission is an active stay.
func (a *Admission) Current() bool {
	return a.IsCurrent != nil && *a.IsCurrent
}
