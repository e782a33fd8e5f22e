package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admission-service/internal/models"
)

func TestRegisterPatient(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)
	ctx := context.Background()

	patient, err := svc.RegisterPatient(ctx, RegisterPatientInput{
		PatientNumber:   2001,
		FirstName:       "Esi",
		LastName:        "Appiah",
		Address:         "12 Harbour Rd",
		TelephoneNumber: "020-555-0101",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, patient.ID)

	found, err := svc.FindByPatientNumber(ctx, 2001)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, patient.ID, found.ID)
}

func TestRegisterPatientDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)
	ctx := context.Background()

	input := RegisterPatientInput{PatientNumber: 2002, FirstName: "Abena", LastName: "Owusu"}
	_, err := svc.RegisterPatient(ctx, input)
	require.NoError(t, err)

	_, err = svc.RegisterPatient(ctx, input)
	require.ErrorIs(t, err, ErrConflict)
}

func TestFindByPatientNumberMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)

	patient, err := svc.FindByPatientNumber(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, patient)
}

func TestDeletePatientGuard(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	admissions := newAdmissionService(db)
	patients := newPatientService(db)
	ctx := context.Background()

	_, err := admissions.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "sepsis")
	require.NoError(t, err)

	// An admitted patient cannot be deleted.
	err = patients.DeletePatient(ctx, f.patient.ID)
	require.ErrorIs(t, err, ErrConflict)

	still, err := patients.GetPatient(ctx, f.patient.ID)
	require.NoError(t, err)
	assert.Equal(t, f.patient.ID, still.ID)
}

func TestDeletePatientAfterDischarge(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	admissions := newAdmissionService(db)
	patients := newPatientService(db)
	ctx := context.Background()

	_, err := admissions.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "sepsis")
	require.NoError(t, err)
	_, err = admissions.DischargePatient(ctx, f.patient.ID)
	require.NoError(t, err)

	require.NoError(t, patients.DeletePatient(ctx, f.patient.ID))

	_, err = patients.GetPatient(ctx, f.patient.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePatientMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)

	err := svc.DeletePatient(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdmitNewPatient(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 2)
	svc := newPatientService(db)
	ctx := context.Background()

	patient, admission, err := svc.AdmitNewPatient(ctx, RegisterPatientInput{
		PatientNumber: 2003,
		FirstName:     "Kwame",
		LastName:      "Darko",
	}, f.ward.ID, 2, f.doctor.ID, "appendicitis")
	require.NoError(t, err)
	require.NotNil(t, patient)
	require.NotNil(t, admission)
	assert.Equal(t, patient.ID, admission.PatientID)
	assert.True(t, admission.Current())
}

func TestAdmitNewPatientRollsBackOnConflict(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	admissions := newAdmissionService(db)
	patients := newPatientService(db)
	ctx := context.Background()

	_, err := admissions.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "")
	require.NoError(t, err)

	// The only bed is taken, so neither the patient nor the admission
	// may survive the failed transaction.
	_, _, err = patients.AdmitNewPatient(ctx, RegisterPatientInput{
		PatientNumber: 2004,
		FirstName:     "Akosua",
		LastName:      "Frimpong",
	}, f.ward.ID, 1, f.doctor.ID, "")
	require.ErrorIs(t, err, ErrConflict)

	ghost, err := patients.FindByPatientNumber(ctx, 2004)
	require.NoError(t, err)
	assert.Nil(t, ghost)
	assert.EqualValues(t, 1, countAdmissions(t, db))
}

func TestSearchPatients(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)
	ctx := context.Background()

	for i, name := range []string{"Mensima", "Mensah", "Hagan"} {
		_, err := svc.RegisterPatient(ctx, RegisterPatientInput{
			PatientNumber: 3000 + i,
			FirstName:     "Test",
			LastName:      name,
		})
		require.NoError(t, err)
	}

	matches, err := svc.SearchPatients(ctx, "Mens")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	none, err := svc.SearchPatients(ctx, "Quartey")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdatePatient(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)
	ctx := context.Background()

	patient, err := svc.RegisterPatient(ctx, RegisterPatientInput{
		PatientNumber: 2005,
		FirstName:     "Adjoa",
		LastName:      "Badu",
	})
	require.NoError(t, err)

	patient.Address = "4 Ridge Lane"
	require.NoError(t, svc.UpdatePatient(ctx, patient))

	reloaded, err := svc.GetPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "4 Ridge Lane", reloaded.Address)
}

func TestUpdatePatientMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newPatientService(db)

	err := svc.UpdatePatient(context.Background(), &models.Patient{ID: uuid.New(), PatientNumber: 1, FirstName: "X", LastName: "Y"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePatientKeepsHistory(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	admissions := newAdmissionService(db)
	patients := newPatientService(db)
	ctx := context.Background()

	_, err := admissions.AdmitPatient(ctx, f.patient.ID, f.ward.WardNumber, f.department.ID, 1, f.doctor.ID, "")
	require.NoError(t, err)
	_, err = admissions.DischargePatient(ctx, f.patient.ID)
	require.NoError(t, err)
	require.NoError(t, patients.DeletePatient(ctx, f.patient.ID))

	// Admission rows are an audit trail and survive the patient record.
	var count int64
	require.NoError(t, db.Model(&models.Admission{}).Where("patient_id = ?", f.patient.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
