package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create persists a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

// FindByID retrieves a department by id
func (r *DepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&department).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// FindByCode retrieves a department by its unique numeric code.
// Returns nil without error when no such department exists.
func (r *DepartmentRepository) FindByCode(ctx context.Context, departmentCode int) (*models.Department, error) {
	var department models.Department
	err := r.db.WithContext(ctx).Where("department_code = ?", departmentCode).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

// List retrieves all departments ordered by code
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.WithContext(ctx).Order("department_code ASC").Find(&departments).Error
	return departments, err
}
