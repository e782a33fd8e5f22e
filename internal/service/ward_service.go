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

type WardService struct {
	wardRepo       *repository.WardRepository
	departmentRepo *repository.DepartmentRepository
	logger         *zap.Logger
}

func NewWardService(wardRepo *repository.WardRepository, departmentRepo *repository.DepartmentRepository, logger *zap.Logger) *WardService {
	return &WardService{
		wardRepo:       wardRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// CreateWard creates a new ward under an existing department
func (s *WardService) CreateWard(ctx context.Context, ward *models.Ward) error {
	if ward.NumberOfBeds < 1 {
		return fmt.Errorf("ward must have at least one bed: %w", ErrInvalidInput)
	}

	if _, err := s.departmentRepo.FindByID(ctx, ward.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("department %s: %w", ward.DepartmentID, ErrNotFound)
		}
		return fmt.Errorf("find department: %w: %w", ErrStore, err)
	}

	if err := s.wardRepo.Create(ctx, ward); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("ward %d already exists in department %s: %w", ward.WardNumber, ward.DepartmentID, ErrConflict)
		}
		return fmt.Errorf("create ward: %w: %w", ErrStore, err)
	}

	s.logger.Info("ward created",
		zap.String("ward_id", ward.ID.String()),
		zap.Int("ward_number", ward.WardNumber),
		zap.Int("number_of_beds", ward.NumberOfBeds),
	)
	return nil
}

// GetWard retrieves a ward by id
func (s *WardService) GetWard(ctx context.Context, id uuid.UUID) (*models.Ward, error) {
	ward, err := s.wardRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ward %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("find ward: %w: %w", ErrStore, err)
	}
	return ward, nil
}

// ListWardsByDepartment retrieves all wards of a department
func (s *WardService) ListWardsByDepartment(ctx context.Context, departmentID uuid.UUID) ([]models.Ward, error) {
	wards, err := s.wardRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list wards: %w: %w", ErrStore, err)
	}
	return wards, nil
}
