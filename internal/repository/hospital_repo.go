package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// Create persists a new hospital
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

// FindByID retrieves a hospital by id
func (r *HospitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hospital).Error
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

// List retrieves all hospitals ordered by name
func (r *HospitalRepository) List(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.WithContext(ctx).Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}
