package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/models"
)

type LeadGormRepository struct {
	db *gorm.DB
}

func NewLeadGormRepository(db *gorm.DB) *LeadGormRepository {
	return &LeadGormRepository{db: db}
}

func (r *LeadGormRepository) CreateLead(
	ctx context.Context,
	lead *models.Lead,
) error {
	return r.db.WithContext(ctx).Create(lead).Error
}
