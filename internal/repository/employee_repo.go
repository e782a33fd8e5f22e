package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create persists a new employee record
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// FindByID retrieves an employee by id
func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmployeeNumber retrieves an employee by the human-assigned number.
// Returns nil without error when no such employee exists.
func (r *EmployeeRepository) FindByEmployeeNumber(ctx context.Context, employeeNumber int) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("employee_number = ?", employeeNumber).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

// FindDoctorsBySpecialty retrieves all doctors with the given specialty
func (r *EmployeeRepository) FindDoctorsBySpecialty(ctx context.Context, specialty string) ([]models.Employee, error) {
	var doctors []models.Employee
	err := r.db.WithContext(ctx).
		Where("employee_type = ? AND specialty = ?", models.EmployeeTypeDoctor, specialty).
		Order("employee_number ASC").
		Find(&doctors).Error
	return doctors, err
}

// ListByType retrieves all employees of a kind ordered by employee number
func (r *EmployeeRepository) ListByType(ctx context.Context, employeeType string) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).
		Where("employee_type = ?", employeeType).
		Order("employee_number ASC").
		Find(&employees).Error
	return employees, err
}
