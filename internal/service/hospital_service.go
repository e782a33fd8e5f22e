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

type HospitalService struct {
	hospitalRepo *repository.HospitalRepository
	logger       *zap.Logger
}

func NewHospitalService(hospitalRepo *repository.HospitalRepository, logger *zap.Logger) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		logger:       logger,
	}
}

// CreateHospital creates a new hospital
func (s *HospitalService) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	if err := s.hospitalRepo.Create(ctx, hospital); err != nil {
		return fmt.Errorf("create hospital: %w: %w", ErrStore, err)
	}
	s.logger.Info("hospital created", zap.String("hospital_id", hospital.ID.String()), zap.String("name", hospital.Name))
	return nil
}

// GetHospital retrieves a hospital by id
func (s *HospitalService) GetHospital(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hospital %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("find hospital: %w: %w", ErrStore, err)
	}
	return hospital, nil
}

// ListHospitals retrieves all hospitals
func (s *HospitalService) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	hospitals, err := s.hospitalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w: %w", ErrStore, err)
	}
	return hospitals, nil
}
