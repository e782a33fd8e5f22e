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

type EmployeeService struct {
	employeeRepo   *repository.EmployeeRepository
	departmentRepo *repository.DepartmentRepository
	logger         *zap.Logger
}

func NewEmployeeService(employeeRepo *repository.EmployeeRepository, departmentRepo *repository.DepartmentRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// AddDoctorInput carries the fields of a new doctor record.
type AddDoctorInput struct {
	EmployeeNumber  int
	FirstName       string
	MiddleName      *string
	LastName        string
	Address         string
	TelephoneNumber string
	Specialty       string
}

// AddDoctor creates a doctor employee record
func (s *EmployeeService) AddDoctor(ctx context.Context, input AddDoctorInput) (*models.Employee, error) {
	doctor := &models.Employee{
		EmployeeNumber:  input.EmployeeNumber,
		FirstName:       input.FirstName,
		MiddleName:      input.MiddleName,
		LastName:        input.LastName,
		Address:         input.Address,
		TelephoneNumber: input.TelephoneNumber,
		EmployeeType:    models.EmployeeTypeDoctor,
		Specialty:       &input.Specialty,
	}
	if err := s.createEmployee(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// AddNurseInput carries the fields of a new nurse record.
type AddNurseInput struct {
	EmployeeNumber  int
	FirstName       string
	MiddleName      *string
	LastName        string
	Address         string
	TelephoneNumber string
	Rotation        string
	Salary          float64
	DepartmentID    uuid.UUID
}

// AddNurse creates a nurse employee record assigned to a department
func (s *EmployeeService) AddNurse(ctx context.Context, input AddNurseInput) (*models.Employee, error) {
	if _, err := s.departmentRepo.FindByID(ctx, input.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("department %s: %w", input.DepartmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("find department: %w: %w", ErrStore, err)
	}

	departmentID := input.DepartmentID
	nurse := &models.Employee{
		EmployeeNumber:  input.EmployeeNumber,
		FirstName:       input.FirstName,
		MiddleName:      input.MiddleName,
		LastName:        input.LastName,
		Address:         input.Address,
		TelephoneNumber: input.TelephoneNumber,
		EmployeeType:    models.EmployeeTypeNurse,
		Rotation:        &input.Rotation,
		Salary:          &input.Salary,
		DepartmentID:    &departmentID,
	}
	if err := s.createEmployee(ctx, nurse); err != nil {
		return nil, err
	}
	return nurse, nil
}

func (s *EmployeeService) createEmployee(ctx context.Context, employee *models.Employee) error {
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("employee number %d already in use: %w", employee.EmployeeNumber, ErrConflict)
		}
		return fmt.Errorf("create employee: %w: %w", ErrStore, err)
	}

	s.logger.Info("employee created",
		zap.String("employee_id", employee.ID.String()),
		zap.String("employee_type", employee.EmployeeType),
		zap.Int("employee_number", employee.EmployeeNumber),
	)
	return nil
}

// GetEmployee retrieves an employee by id
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("find employee: %w: %w", ErrStore, err)
	}
	return employee, nil
}

// FindByEmployeeNumber retrieves an employee by the human-assigned number.
// Returns nil without error when no such employee exists.
func (s *EmployeeService) FindByEmployeeNumber(ctx context.Context, employeeNumber int) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("find employee by number: %w: %w", ErrStore, err)
	}
	return employee, nil
}

// FindDoctorsBySpecialty retrieves all doctors with the given specialty
func (s *EmployeeService) FindDoctorsBySpecialty(ctx context.Context, specialty string) ([]models.Employee, error) {
	doctors, err := s.employeeRepo.FindDoctorsBySpecialty(ctx, specialty)
	if err != nil {
		return nil, fmt.Errorf("find doctors by specialty: %w: %w", ErrStore, err)
	}
	return doctors, nil
}
