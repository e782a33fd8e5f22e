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

type DepartmentService struct {
	departmentRepo *repository.DepartmentRepository
	hospitalRepo   *repository.HospitalRepository
	logger         *zap.Logger
}

func NewDepartmentService(departmentRepo *repository.DepartmentRepository, hospitalRepo *repository.HospitalRepository, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		hospitalRepo:   hospitalRepo,
		logger:         logger,
	}
}

// CreateDepartment creates a new department under an existing hospital
func (s *DepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if _, err := s.hospitalRepo.FindByID(ctx, department.HospitalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("hospital %s: %w", department.HospitalID, ErrNotFound)
		}
		return fmt.Errorf("find hospital: %w: %w", ErrStore, err)
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("department code %d already in use: %w", department.DepartmentCode, ErrConflict)
		}
		return fmt.Errorf("create department: %w: %w", ErrStore, err)
	}

	s.logger.Info("department created",
		zap.String("department_id", department.ID.String()),
		zap.Int("department_code", department.DepartmentCode),
	)
	return nil
}

// GetDepartment retrieves a department by id
func (s *DepartmentService) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("department %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("find department: %w: %w", ErrStore, err)
	}
	return department, nil
}

// FindByCode retrieves a department by its numeric code.
// Returns nil without error when no such department exists.
func (s *DepartmentService) FindByCode(ctx context.Context, departmentCode int) (*models.Department, error) {
	department, err := s.departmentRepo.FindByCode(ctx, departmentCode)
	if err != nil {
		return nil, fmt.Errorf("find department by code: %w: %w", ErrStore, err)
	}
	return department, nil
}

// ListDepartments retrieves all departments
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w: %w", ErrStore, err)
	}
	return departments, nil
}
