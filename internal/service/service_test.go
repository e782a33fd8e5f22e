package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hospital-admission-service/internal/models"
	"hospital-admission-service/internal/repository"
)

// newTestDB opens a throwaway sqlite database with the full hospital
// schema, including the live-stay unique indexes.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "hospital.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Hospital{},
		&models.Department{},
		&models.Employee{},
		&models.Ward{},
		&models.Patient{},
		&models.Admission{},
		&models.AuditLog{},
	)
	require.NoError(t, err)

	return db
}

// fixtures is a seeded hospital with one cardiology ward and staff.
type fixtures struct {
	hospital   *models.Hospital
	department *models.Department
	ward       *models.Ward
	doctor     *models.Employee
	nurse      *models.Employee
	patient    *models.Patient
}

func seedFixtures(t *testing.T, db *gorm.DB, numberOfBeds int) *fixtures {
	t.Helper()
	ctx := context.Background()

	f := &fixtures{}

	f.hospital = &models.Hospital{Name: "St. Mary General", City: "Springfield"}
	require.NoError(t, repository.NewHospitalRepo(db).Create(ctx, f.hospital))

	f.department = &models.Department{
		DepartmentCode: 100,
		DepartmentName: "Cardiology",
		Building:       "A",
		HospitalID:     f.hospital.ID,
	}
	require.NoError(t, repository.NewDepartmentRepo(db).Create(ctx, f.department))

	f.ward = &models.Ward{
		WardNumber:   1,
		NumberOfBeds: numberOfBeds,
		DepartmentID: f.department.ID,
	}
	require.NoError(t, repository.NewWardRepo(db).Create(ctx, f.ward))

	employees := repository.NewEmployeeRepo(db)
	specialty := "cardiology"
	f.doctor = &models.Employee{
		EmployeeNumber: 501,
		FirstName:      "Grace",
		LastName:       "Osei",
		EmployeeType:   models.EmployeeTypeDoctor,
		Specialty:      &specialty,
	}
	require.NoError(t, employees.Create(ctx, f.doctor))

	rotation := "night"
	salary := 52000.0
	departmentID := f.department.ID
	f.nurse = &models.Employee{
		EmployeeNumber: 502,
		FirstName:      "Kofi",
		LastName:       "Mensah",
		EmployeeType:   models.EmployeeTypeNurse,
		Rotation:       &rotation,
		Salary:         &salary,
		DepartmentID:   &departmentID,
	}
	require.NoError(t, employees.Create(ctx, f.nurse))

	f.patient = &models.Patient{
		PatientNumber: 1001,
		FirstName:     "Ama",
		LastName:      "Boateng",
	}
	require.NoError(t, repository.NewPatientRepo(db).Create(ctx, f.patient))

	return f
}

func newAdmissionService(db *gorm.DB) *AdmissionService {
	return NewAdmissionService(db, repository.NewAuditRepo(db), zap.NewNop())
}

func newPatientService(db *gorm.DB) *PatientService {
	return NewPatientService(db, repository.NewAuditRepo(db), zap.NewNop())
}

func countAdmissions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Admission{}).Count(&count).Error)
	return count
}
