package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admission-service/internal/models"
	"hospital-admission-service/internal/repository"
)

func TestAdmitPatient(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)
	ctx := context.Background()

	admissionID, err := svc.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "acute pericarditis")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, admissionID)

	current, err := svc.GetCurrentAdmission(ctx, f.patient.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, admissionID, current.ID)
	assert.Equal(t, f.ward.ID, current.WardID)
	assert.Equal(t, 1, current.BedNumber)
	assert.Equal(t, f.doctor.ID, current.TreatingDoctorID)
	assert.True(t, current.Current())
	assert.Nil(t, current.DischargeDate)

	today := time.Now().UTC()
	assert.Equal(t, today.Year(), current.AdmissionDate.Year())
	assert.Equal(t, today.YearDay(), current.AdmissionDate.YearDay())
}

func TestAdmitPatientBedOccupied(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)
	ctx := context.Background()

	_, err := svc.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "observation")
	require.NoError(t, err)

	other := &models.Patient{PatientNumber: 1002, FirstName: "Yaw", LastName: "Asante"}
	require.NoError(t, repository.NewPatientRepo(db).Create(ctx, other))

	_, err = svc.AdmitPatient(ctx, other.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "observation")
	require.ErrorIs(t, err, ErrConflict)

	// The losing request must not have left a row behind.
	assert.EqualValues(t, 1, countAdmissions(t, db))
}

func TestAdmitPatientAlreadyAdmitted(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 4)
	svc := newAdmissionService(db)
	ctx := context.Background()

	_, err := svc.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "pneumonia")
	require.NoError(t, err)

	// A second current admission is refused even on a different bed.
	_, err = svc.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 2, f.doctor.ID, "pneumonia")
	require.ErrorIs(t, err, ErrConflict)
	assert.EqualValues(t, 1, countAdmissions(t, db))
}

func TestAdmitPatientUnknownDepartment(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)

	_, err := svc.AdmitPatient(context.Background(), f.patient.ID, f.ward.WardNumber, uuid.New(), 1, f.doctor.ID, "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, countAdmissions(t, db))
}

func TestAdmitPatientUnknownWardNumber(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)

	_, err := svc.AdmitPatient(context.Background(), f.patient.ID, 99, f.department.ID, 1, f.doctor.ID, "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, countAdmissions(t, db))
}

func TestAdmitPatientUnknownPatient(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)

	_, err := svc.AdmitPatient(context.Background(), uuid.New(), f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdmitPatientBedOutOfRange(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 2)
	svc := newAdmissionService(db)

	_, err := svc.AdmitPatient(context.Background(), f.patient.ID, f.ward.WardNumber, f.department.ID, 3, f.doctor.ID, "")
	require.ErrorIs(t, err, ErrConflict)
	assert.EqualValues(t, 0, countAdmissions(t, db))
}

func TestAdmitPatientNonPositiveBed(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)

	_, err := svc.AdmitPatient(context.Background(), f.patient.ID, f.ward.WardNumber, f.department.ID, 0, f.doctor.ID, "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdmitPatientNurseAsTreatingDoctor(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)

	_, err := svc.AdmitPatient(context.Background(), f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.nurse.ID, "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, countAdmissions(t, db))
}

func TestGetCurrentAdmissionNone(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)

	current, err := svc.GetCurrentAdmission(context.Background(), f.patient.ID)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestGetPatientAdmissionsOrdering(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 3)
	svc := newAdmissionService(db)
	ctx := context.Background()

	admissions := repository.NewAdmissionRepo(db)
	day := func(offset int) time.Time {
		return time.Date(2026, time.August, 1+offset, 0, 0, 0, 0, time.UTC)
	}

	// Historical, discharged stays: two on the same date, one earlier.
	discharged := []models.Admission{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), PatientID: f.patient.ID, WardID: f.ward.ID, BedNumber: 1, TreatingDoctorID: f.doctor.ID, AdmissionDate: day(5)},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), PatientID: f.patient.ID, WardID: f.ward.ID, BedNumber: 2, TreatingDoctorID: f.doctor.ID, AdmissionDate: day(5)},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), PatientID: f.patient.ID, WardID: f.ward.ID, BedNumber: 3, TreatingDoctorID: f.doctor.ID, AdmissionDate: day(0)},
	}
	for i := range discharged {
		dischargeDate := discharged[i].AdmissionDate.AddDate(0, 0, 1)
		discharged[i].DischargeDate = &dischargeDate
		require.NoError(t, admissions.Create(ctx, &discharged[i]))
	}

	_, err := svc.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "readmission")
	require.NoError(t, err)

	history, err := svc.GetPatientAdmissions(ctx, f.patient.ID)
	require.NoError(t, err)
	require.Len(t, history, 4)

	// Most recent first; same-date rows ordered by id.
	assert.True(t, history[0].Current())
	assert.Equal(t, discharged[1].ID, history[1].ID)
	assert.Equal(t, discharged[0].ID, history[2].ID)
	assert.Equal(t, discharged[2].ID, history[3].ID)
}

func TestGetPatientAdmissionsEmpty(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)

	history, err := svc.GetPatientAdmissions(context.Background(), f.patient.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestDischargePatient(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)
	ctx := context.Background()

	admissionID, err := svc.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "fracture")
	require.NoError(t, err)

	discharged, err := svc.DischargePatient(ctx, f.patient.ID)
	require.NoError(t, err)
	assert.Equal(t, admissionID, discharged.ID)
	assert.NotNil(t, discharged.DischargeDate)
	assert.False(t, discharged.Current())

	current, err := svc.GetCurrentAdmission(ctx, f.patient.ID)
	require.NoError(t, err)
	assert.Nil(t, current)

	// Discharging again has nothing to close.
	_, err = svc.DischargePatient(ctx, f.patient.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReadmitAfterDischarge(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := newAdmissionService(db)
	ctx := context.Background()

	_, err := svc.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "first stay")
	require.NoError(t, err)
	_, err = svc.DischargePatient(ctx, f.patient.ID)
	require.NoError(t, err)

	// The discharged stay releases both the bed and the patient.
	admissionID, err := svc.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "second stay")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, admissionID)
	assert.EqualValues(t, 2, countAdmissions(t, db))
}
