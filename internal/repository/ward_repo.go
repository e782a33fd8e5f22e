package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
)

type WardRepository struct {
	db *gorm.DB
}

func NewWardRepo(db *gorm.DB) *WardRepository {
	return &WardRepository{db: db}
}

// Create persists a new ward
func (r *WardRepository) Create(ctx context.Context, ward *models.Ward) error {
	return r.db.WithContext(ctx).Create(ward).Error
}

// FindWardIDByNumber resolves a ward by its department-scoped number
func (r *WardRepository) FindWardIDByNumber(ctx context.Context, wardNumber int, departmentID uuid.UUID) (uuid.UUID, error) {
	var ward models.Ward
	err := r.db.WithContext(ctx).
		Select("id").
		Where("ward_number = ? AND department_id = ?", wardNumber, departmentID).
		First(&ward).Error
	if err != nil {
		return uuid.Nil, err
	}
	return ward.ID, nil
}

// FindByID retrieves the full ward record
func (r *WardRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Ward, error) {
	var ward models.Ward
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ward).Error
	if err != nil {
		return nil, err
	}
	return &ward, nil
}

// ListByDepartment retrieves all wards of a department ordered by ward number
func (r *WardRepository) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]models.Ward, error) {
	var wards []models.Ward
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("ward_number ASC").
		Find(&wards).Error
	return wards, err
}
