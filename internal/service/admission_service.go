package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
	"hospital-admission-service/internal/repository"
)

// AdmissionService is the admission workflow engine. Every mutating
// operation runs its reads and writes inside exactly one transaction,
// which the operation owns from start to commit or rollback.
type AdmissionService struct {
	db        *gorm.DB
	auditRepo *repository.AuditRepository
	logger    *zap.Logger
}

func NewAdmissionService(db *gorm.DB, auditRepo *repository.AuditRepository, logger *zap.Logger) *AdmissionService {
	return &AdmissionService{
		db:        db,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// AdmitPatient admits a patient to a bed in the ward resolved by
// (wardNumber, departmentID) under the treating doctor, and returns the
// new admission id. Ward resolution, the invariant checks and the insert
// all run inside one transaction; any failure rolls the whole unit back.
func (s *AdmissionService) AdmitPatient(ctx context.Context, patientID uuid.UUID, wardNumber int, departmentID uuid.UUID, bedNumber int, doctorID uuid.UUID, diagnosis string) (uuid.UUID, error) {
	if bedNumber < 1 {
		return uuid.Nil, fmt.Errorf("bed number must be positive, got %d: %w", bedNumber, ErrInvalidInput)
	}

	var admission *models.Admission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patients := repository.NewPatientRepo(tx)
		if _, err := patients.FindByID(ctx, patientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("patient %s: %w", patientID, ErrNotFound)
			}
			return fmt.Errorf("find patient: %w: %w", ErrStore, err)
		}

		ward, err := resolveWard(ctx, tx, wardNumber, departmentID)
		if err != nil {
			return err
		}

		admission, err = admitToWard(ctx, tx, patientID, ward, bedNumber, doctorID, diagnosis)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("patient admitted",
		zap.String("admission_id", admission.ID.String()),
		zap.String("patient_id", patientID.String()),
		zap.String("ward_id", admission.WardID.String()),
		zap.Int("bed_number", bedNumber),
	)
	_ = s.auditRepo.CreateAuditLog(ctx, "patient_admit",
		fmt.Sprintf("Admitted patient %s to ward %d bed %d (admission %s)", patientID, wardNumber, bedNumber, admission.ID))

	return admission.ID, nil
}

// GetCurrentAdmission returns the patient's active admission, or nil
// without error when the patient is not admitted.
func (s *AdmissionService) GetCurrentAdmission(ctx context.Context, patientID uuid.UUID) (*models.Admission, error) {
	admission, err := repository.NewAdmissionRepo(s.db).FindCurrentByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("find current admission: %w: %w", ErrStore, err)
	}
	return admission, nil
}

// GetPatientAdmissions returns the patient's full admission history,
// most recent admission date first. An empty history is not an error.
func (s *AdmissionService) GetPatientAdmissions(ctx context.Context, patientID uuid.UUID) ([]models.Admission, error) {
	admissions, err := repository.NewAdmissionRepo(s.db).FindByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("find admissions: %w: %w", ErrStore, err)
	}
	return admissions, nil
}

// DischargePatient closes the patient's current admission: the discharge
// date is set and the stay stops counting against the live-stay indexes.
func (s *AdmissionService) DischargePatient(ctx context.Context, patientID uuid.UUID) (*models.Admission, error) {
	var admission *models.Admission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admissions := repository.NewAdmissionRepo(tx)
		current, err := admissions.FindCurrentByPatient(ctx, patientID)
		if err != nil {
			return fmt.Errorf("find current admission: %w: %w", ErrStore, err)
		}
		if current == nil {
			return fmt.Errorf("patient %s has no current admission: %w", patientID, ErrNotFound)
		}

		today := dateOnly(time.Now().UTC())
		if err := admissions.Discharge(ctx, current.ID, today); err != nil {
			return fmt.Errorf("discharge admission: %w: %w", ErrStore, err)
		}

		current.DischargeDate = &today
		current.IsCurrent = nil
		admission = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("patient discharged",
		zap.String("admission_id", admission.ID.String()),
		zap.String("patient_id", patientID.String()),
	)
	_ = s.auditRepo.CreateAuditLog(ctx, "patient_discharge",
		fmt.Sprintf("Discharged patient %s (admission %s)", patientID, admission.ID))

	return admission, nil
}

// resolveWard resolves the ward named by the department-scoped ward number
// and loads its full record. Runs on the caller's transaction handle.
func resolveWard(ctx context.Context, tx *gorm.DB, wardNumber int, departmentID uuid.UUID) (*models.Ward, error) {
	departments := repository.NewDepartmentRepo(tx)
	if _, err := departments.FindByID(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("department %s: %w", departmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("find department: %w: %w", ErrStore, err)
	}

	wards := repository.NewWardRepo(tx)
	wardID, err := wards.FindWardIDByNumber(ctx, wardNumber, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ward %d in department %s: %w", wardNumber, departmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("resolve ward: %w: %w", ErrStore, err)
	}

	ward, err := wards.FindByID(ctx, wardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ward %s: %w", wardID, ErrNotFound)
		}
		return nil, fmt.Errorf("load ward: %w: %w", ErrStore, err)
	}
	return ward, nil
}

// admitToWard performs the invariant checks and creates the admission row.
// Must run inside the caller's transaction: the checks and the insert have
// to commit or roll back together, with the unique live-stay indexes as
// the backstop against concurrent writers.
func admitToWard(ctx context.Context, tx *gorm.DB, patientID uuid.UUID, ward *models.Ward, bedNumber int, doctorID uuid.UUID, diagnosis string) (*models.Admission, error) {
	employees := repository.NewEmployeeRepo(tx)
	doctor, err := employees.FindByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %s: %w", doctorID, ErrNotFound)
		}
		return nil, fmt.Errorf("find doctor: %w: %w", ErrStore, err)
	}
	if !doctor.IsDoctor() {
		return nil, fmt.Errorf("employee %s is not a doctor: %w", doctorID, ErrNotFound)
	}

	if bedNumber > ward.NumberOfBeds {
		return nil, fmt.Errorf("ward %d has %d beds, no bed %d: %w", ward.WardNumber, ward.NumberOfBeds, bedNumber, ErrConflict)
	}

	admissions := repository.NewAdmissionRepo(tx)
	current, err := admissions.FindCurrentByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("find current admission: %w: %w", ErrStore, err)
	}
	if current != nil {
		return nil, fmt.Errorf("patient %s already has a current admission: %w", patientID, ErrConflict)
	}

	available, err := admissions.IsBedAvailable(ctx, ward.ID, bedNumber)
	if err != nil {
		return nil, fmt.Errorf("check bed availability: %w: %w", ErrStore, err)
	}
	if !available {
		return nil, fmt.Errorf("ward %d bed %d is occupied: %w", ward.WardNumber, bedNumber, ErrConflict)
	}

	isCurrent := true
	admission := &models.Admission{
		PatientID:        patientID,
		WardID:           ward.ID,
		BedNumber:        bedNumber,
		Diagnosis:        diagnosis,
		TreatingDoctorID: doctorID,
		AdmissionDate:    dateOnly(time.Now().UTC()),
		IsCurrent:        &isCurrent,
	}
	if err := admissions.Create(ctx, admission); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent admit won the race; same answer as the checks above.
			return nil, fmt.Errorf("admission conflicts with a current stay: %w", ErrConflict)
		}
		return nil, fmt.Errorf("create admission: %w: %w", ErrStore, err)
	}
	return admission, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
