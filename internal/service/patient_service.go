package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
	"hospital-admission-service/internal/repository"
)

// PatientService manages the patient lifecycle, including the operations
// that compose with the admission workflow: registering and admitting in
// one transaction, and the deletion guard.
type PatientService struct {
	db        *gorm.DB
	auditRepo *repository.AuditRepository
	logger    *zap.Logger
}

func NewPatientService(db *gorm.DB, auditRepo *repository.AuditRepository, logger *zap.Logger) *PatientService {
	return &PatientService{
		db:        db,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// RegisterPatientInput carries the fields of a new patient record.
type RegisterPatientInput struct {
	PatientNumber   int
	FirstName       string
	MiddleName      *string
	LastName        string
	Address         string
	TelephoneNumber string
}

func (in RegisterPatientInput) toModel() *models.Patient {
	return &models.Patient{
		PatientNumber:   in.PatientNumber,
		FirstName:       in.FirstName,
		MiddleName:      in.MiddleName,
		LastName:        in.LastName,
		Address:         in.Address,
		TelephoneNumber: in.TelephoneNumber,
	}
}

// RegisterPatient creates a new patient record
func (s *PatientService) RegisterPatient(ctx context.Context, input RegisterPatientInput) (*models.Patient, error) {
	patient := input.toModel()
	if err := repository.NewPatientRepo(s.db).Create(ctx, patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("patient number %d already registered: %w", input.PatientNumber, ErrConflict)
		}
		return nil, fmt.Errorf("create patient: %w: %w", ErrStore, err)
	}

	s.logger.Info("patient registered",
		zap.String("patient_id", patient.ID.String()),
		zap.Int("patient_number", patient.PatientNumber),
	)
	return patient, nil
}

// AdmitNewPatient registers a patient and admits them to a bed in one
// transaction: either both records exist afterwards or neither does.
func (s *PatientService) AdmitNewPatient(ctx context.Context, input RegisterPatientInput, wardID uuid.UUID, bedNumber int, doctorID uuid.UUID, diagnosis string) (*models.Patient, *models.Admission, error) {
	if bedNumber < 1 {
		return nil, nil, fmt.Errorf("bed number must be positive, got %d: %w", bedNumber, ErrInvalidInput)
	}

	patient := input.toModel()
	var admission *models.Admission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewPatientRepo(tx).Create(ctx, patient); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("patient number %d already registered: %w", input.PatientNumber, ErrConflict)
			}
			return fmt.Errorf("create patient: %w: %w", ErrStore, err)
		}

		ward, err := repository.NewWardRepo(tx).FindByID(ctx, wardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("ward %s: %w", wardID, ErrNotFound)
			}
			return fmt.Errorf("load ward: %w: %w", ErrStore, err)
		}

		admission, err = admitToWard(ctx, tx, patient.ID, ward, bedNumber, doctorID, diagnosis)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("new patient admitted",
		zap.String("patient_id", patient.ID.String()),
		zap.String("admission_id", admission.ID.String()),
	)
	_ = s.auditRepo.CreateAuditLog(ctx, "patient_register_admit",
		fmt.Sprintf("Registered and admitted patient %s (admission %s)", patient.ID, admission.ID))

	return patient, admission, nil
}

// GetPatient retrieves a patient by id
func (s *PatientService) GetPatient(ctx context.Context, id uuid.UUID) (*models.Patient, error) {
	patient, err := repository.NewPatientRepo(s.db).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("find patient: %w: %w", ErrStore, err)
	}
	return patient, nil
}

// FindByPatientNumber retrieves a patient by the human-assigned number.
// Returns nil without error when no such patient exists.
func (s *PatientService) FindByPatientNumber(ctx context.Context, patientNumber int) (*models.Patient, error) {
	patient, err := repository.NewPatientRepo(s.db).FindByNumber(ctx, patientNumber)
	if err != nil {
		return nil, fmt.Errorf("find patient by number: %w: %w", ErrStore, err)
	}
	return patient, nil
}

// SearchPatients finds patients by a name fragment
func (s *PatientService) SearchPatients(ctx context.Context, nameQuery string) ([]models.Patient, error) {
	patients, err := repository.NewPatientRepo(s.db).Search(ctx, nameQuery)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w: %w", ErrStore, err)
	}
	return patients, nil
}

// UpdatePatient saves mutable fields of an existing patient
func (s *PatientService) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	patients := repository.NewPatientRepo(s.db)
	if _, err := patients.FindByID(ctx, patient.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("patient %s: %w", patient.ID, ErrNotFound)
		}
		return fmt.Errorf("find patient: %w: %w", ErrStore, err)
	}
	if err := patients.Update(ctx, patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("patient number %d already registered: %w", patient.PatientNumber, ErrConflict)
		}
		return fmt.Errorf("update patient: %w: %w", ErrStore, err)
	}
	return nil
}

// DeletePatient removes a patient record. A patient with a current
// admission cannot be deleted; the check and the delete share one
// transaction so a concurrent admit cannot slip between them.
func (s *PatientService) DeletePatient(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admissions, err := repository.NewAdmissionRepo(tx).FindByPatient(ctx, id)
		if err != nil {
			return fmt.Errorf("find admissions: %w: %w", ErrStore, err)
		}
		for _, admission := range admissions {
			if admission.Current() {
				return fmt.Errorf("patient %s has a current admission: %w", id, ErrConflict)
			}
		}

		affected, err := repository.NewPatientRepo(tx).Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete patient: %w: %w", ErrStore, err)
		}
		if affected == 0 {
			return fmt.Errorf("patient %s: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("patient deleted", zap.String("patient_id", id.String()))
	_ = s.auditRepo.CreateAuditLog(ctx, "patient_delete", fmt.Sprintf("Deleted patient %s", id))
	return nil
}
