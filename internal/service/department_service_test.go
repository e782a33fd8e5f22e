package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hospital-admission-service/internal/models"
	"hospital-admission-service/internal/repository"
)

func TestCreateDepartment(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := NewDepartmentService(repository.NewDepartmentRepo(db), repository.NewHospitalRepo(db), zap.NewNop())
	ctx := context.Background()

	department := &models.Department{
		DepartmentCode: 200,
		DepartmentName: "Neurology",
		Building:       "B",
		HospitalID:     f.hospital.ID,
	}
	require.NoError(t, svc.CreateDepartment(ctx, department))
	require.NotEqual(t, uuid.Nil, department.ID)

	found, err := svc.FindByCode(ctx, 200)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Neurology", found.DepartmentName)

	departments, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, departments, 2)
}

func TestCreateDepartmentDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := NewDepartmentService(repository.NewDepartmentRepo(db), repository.NewHospitalRepo(db), zap.NewNop())

	err := svc.CreateDepartment(context.Background(), &models.Department{
		DepartmentCode: f.department.DepartmentCode,
		DepartmentName: "Cardiology Annex",
		HospitalID:     f.hospital.ID,
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestCreateDepartmentUnknownHospital(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db, 1)
	svc := NewDepartmentService(repository.NewDepartmentRepo(db), repository.NewHospitalRepo(db), zap.NewNop())

	err := svc.CreateDepartment(context.Background(), &models.Department{
		DepartmentCode: 300,
		DepartmentName: "Oncology",
		HospitalID:     uuid.New(),
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindDepartmentByCodeMissing(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db, 1)
	svc := NewDepartmentService(repository.NewDepartmentRepo(db), repository.NewHospitalRepo(db), zap.NewNop())

	department, err := svc.FindByCode(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, department)
}
