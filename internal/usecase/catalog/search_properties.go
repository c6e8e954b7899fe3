package catalog

import (
	"context"

	domain "github.com/selamhomes/estate-api/internal/domain/catalog"
	"github.com/selamhomes/estate-api/internal/models"
)

type SearchProperties struct {
	repo domain.Repository
}

func NewSearchProperties(repo domain.Repository) *SearchProperties {
	return &SearchProperties{repo: repo}
}

func (uc *SearchProperties) Execute(
	ctx context.Context,
	f domain.PropertyFilter,
) ([]models.Property, error) {

	properties, err := uc.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}

	// The public contract is an array, never null.
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}
