package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/selamhomes/estate-api/internal/domain/catalog"
	"github.com/selamhomes/estate-api/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// Search builds one predicate per supplied filter and ANDs them together.
// The search term forms its own OR-group over title, location and
// description. LOWER(...) LIKE is used instead of ILIKE so the same query
// runs on every supported driver.
func (r *CatalogGormRepository) Search(
	ctx context.Context,
	f catalog.PropertyFilter,
) ([]models.Property, error) {

	q := r.db.WithContext(ctx).Model(&models.Property{})

	if f.Type != "" {
		q = q.Where("property_type = ?", f.Type)
	}
	if f.ListingType != "" {
		q = q.Where("listing_type = ?", f.ListingType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Featured {
		q = q.Where("featured = ?", true)
	}

	if f.Location != "" {
		like := "%" + strings.ToLower(f.Location) + "%"
		q = q.Where("LOWER(location) LIKE ?", like)
	}

	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like,
		)
	}

	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var properties []models.Property
	if err := q.Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *CatalogGormRepository) GetProperty(
	ctx context.Context,
	id string,
) (*models.Property, error) {

	var property models.Property
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}
