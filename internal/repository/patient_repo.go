package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create persists a new patient and fills in its generated id
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

// FindByID retrieves a patient by id
func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// FindByNumber retrieves a patient by the human-assigned patient number.
// Returns nil without error when no such patient exists.
func (r *PatientRepository) FindByNumber(ctx context.Context, patientNumber int) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("patient_number = ?", patientNumber).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// Search finds patients whose first or last name contains the query
func (r *PatientRepository) Search(ctx context.Context, nameQuery string) ([]models.Patient, error) {
	var patients []models.Patient
	pattern := "%" + nameQuery + "%"
	err := r.db.WithContext(ctx).
		Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern).
		Order("last_name ASC, first_name ASC").
		Find(&patients).Error
	return patients, err
}

// Update saves mutable patient fields
func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

// Delete hard-deletes a patient and reports the number of rows removed
func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Patient{})
	return result.RowsAffected, result.Error
}
