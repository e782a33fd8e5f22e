package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
)

type AdmissionRepository struct {
	db *gorm.DB
}

// NewAdmissionRepo wraps a database handle. Pass a transaction handle to
// scope the repository's writes to that transaction.
func NewAdmissionRepo(db *gorm.DB) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// Create persists a new admission and fills in its generated id
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	return r.db.WithContext(ctx).Create(admission).Error
}

// FindByPatient retrieves all admissions for a patient, most recent
// admission date first, id as the deterministic tie-break
func (r *AdmissionRepository) FindByPatient(ctx context.Context, patientID uuid.UUID) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("admission_date DESC, id ASC").
		Find(&admissions).Error
	return admissions, err
}

// FindCurrentByPatient retrieves the patient's active admission.
// Returns nil without error when the patient is not admitted.
func (r *AdmissionRepository) FindCurrentByPatient(ctx context.Context, patientID uuid.UUID) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND is_current = ?", patientID, true).
		First(&admission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admission, nil
}

// IsBedAvailable reports whether no active admission occupies the bed
func (r *AdmissionRepository) IsBedAvailable(ctx context.Context, wardID uuid.UUID, bedNumber int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Admission{}).
		Where("ward_id = ? AND bed_number = ? AND is_current = ?", wardID, bedNumber, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Discharge closes an active admission: sets the discharge date and clears
// the current flag (NULL, so the live-stay unique indexes release the bed)
func (r *AdmissionRepository) Discharge(ctx context.Context, admissionID uuid.UUID, dischargeDate time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Admission{}).
		Where("id = ?", admissionID).
		Updates(map[string]interface{}{
			"discharge_date": dischargeDate,
			"is_current":     nil,
		}).Error
}
