package catalog

import (
	"context"
	"strconv"

	"github.com/selamhomes/estate-api/internal/models"
)

// PropertyFilter is the parsed form of the public search parameters. Every
// field is optional; zero values impose no constraint. Supplied filters
// combine with AND, the Search term matching any of title, location or
// description.
type PropertyFilter struct {
	Type        string
	ListingType string
	Status      string

	// Case-insensitive substring matches.
	Location string
	Search   string

	// Only an explicit featured=true narrows the result set.
	Featured bool

	// Inclusive price bounds; nil means unbounded.
	MinPrice *float64
	MaxPrice *float64

	// Optional pagination; zero Limit returns the full result set.
	Limit  int
	Offset int
}

// IsZero reports whether the filter imposes no constraints at all.
func (f PropertyFilter) IsZero() bool {
	return f == PropertyFilter{}
}

// OnlyFeatured reports whether featured=true is the sole constraint, which
// is the homepage query and the one worth caching.
func (f PropertyFilter) OnlyFeatured() bool {
	return f == PropertyFilter{Featured: true}
}

// ParsePrice turns a raw query value into an optional bound. Non-numeric
// input is treated as absent, never as an error.
func ParsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseCount parses limit/offset values the same lenient way.
func ParseCount(raw string) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

type Repository interface {
	// Search returns matching properties ordered by createdAt descending.
	Search(ctx context.Context, f PropertyFilter) ([]models.Property, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
}
