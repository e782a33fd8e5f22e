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

func TestCreateWard(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := NewWardService(repository.NewWardRepo(db), repository.NewDepartmentRepo(db), zap.NewNop())
	ctx := context.Background()

	ward := &models.Ward{WardNumber: 2, NumberOfBeds: 6, DepartmentID: f.department.ID}
	require.NoError(t, svc.CreateWard(ctx, ward))

	wards, err := svc.ListWardsByDepartment(ctx, f.department.ID)
	require.NoError(t, err)
	require.Len(t, wards, 2)
	assert.Equal(t, 1, wards[0].WardNumber)
	assert.Equal(t, 2, wards[1].WardNumber)
}

func TestCreateWardDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := NewWardService(repository.NewWardRepo(db), repository.NewDepartmentRepo(db), zap.NewNop())

	err := svc.CreateWard(context.Background(), &models.Ward{WardNumber: 1, NumberOfBeds: 3, DepartmentID: f.department.ID})
	require.ErrorIs(t, err, ErrConflict)
}

func TestCreateWardUnknownDepartment(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db, 1)
	svc := NewWardService(repository.NewWardRepo(db), repository.NewDepartmentRepo(db), zap.NewNop())

	err := svc.CreateWard(context.Background(), &models.Ward{WardNumber: 5, NumberOfBeds: 3, DepartmentID: uuid.New()})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateWardWithoutBeds(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db, 1)
	svc := NewWardService(repository.NewWardRepo(db), repository.NewDepartmentRepo(db), zap.NewNop())

	err := svc.CreateWard(context.Background(), &models.Ward{WardNumber: 5, NumberOfBeds: 0, DepartmentID: f.department.ID})
	require.ErrorIs(t, err, ErrInvalidInput)
}
