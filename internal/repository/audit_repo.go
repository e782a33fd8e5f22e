package repository

import (
	"context"

	"gorm.io/gorm"

	"hospital-admission-service/internal/models"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(ctx context.Context, action string, details string) error {
	log := &models.AuditLog{
		Action:  action,
		Details: details,
	}
	return r.db.WithContext(ctx).Create(log).Error
}
