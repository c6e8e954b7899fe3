package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/selamhomes/estate-api/internal/domain/catalog"
	"github.com/selamhomes/estate-api/internal/models"
)

func newTestRepo(t *testing.T) (*CatalogGormRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Property{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewCatalogGormRepository(db), db
}

func seed(t *testing.T, db *gorm.DB, props ...models.Property) {
	t.Helper()
	for i := range props {
		if err := db.Create(&props[i]).Error; err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
	}
}

func price(v float64) *float64 { return &v }

// Combined filters must return exactly the intersection of what each filter
// matches on its own.
func TestSearchIsIntersectionOfFilters(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	seed(t, db,
		models.Property{Title: "A", PropertyType: "villa", ListingType: "sale", Price: 100, Location: "Bole"},
		models.Property{Title: "B", PropertyType: "villa", ListingType: "rent", Price: 200, Location: "Bole"},
		models.Property{Title: "C", PropertyType: "office", ListingType: "sale", Price: 300, Location: "Kazanchis"},
	)

	byType, err := repo.Search(ctx, catalog.PropertyFilter{Type: "villa"})
	if err != nil {
		t.Fatal(err)
	}
	byListing, err := repo.Search(ctx, catalog.PropertyFilter{ListingType: "sale"})
	if err != nil {
		t.Fatal(err)
	}
	combined, err := repo.Search(ctx, catalog.PropertyFilter{Type: "villa", ListingType: "sale"})
	if err != nil {
		t.Fatal(err)
	}

	inBoth := map[string]bool{}
	for _, p := range byType {
		for _, q := range byListing {
			if p.ID == q.ID {
				inBoth[p.ID] = true
			}
		}
	}

	if len(combined) != len(inBoth) {
		t.Fatalf("combined filter returned %d, intersection has %d", len(combined), len(inBoth))
	}
	for _, p := range combined {
		if !inBoth[p.ID] {
			t.Errorf("%q is in the combined result but not in the intersection", p.Title)
		}
	}
}

func TestSearchPriceBoundsAreInclusive(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	seed(t, db,
		models.Property{Title: "AtMin", PropertyType: "villa", ListingType: "sale", Price: 1000, Location: "X"},
		models.Property{Title: "AtMax", PropertyType: "villa", ListingType: "sale", Price: 2000, Location: "X"},
		models.Property{Title: "Above", PropertyType: "villa", ListingType: "sale", Price: 2001, Location: "X"},
	)

	got, err := repo.Search(ctx, catalog.PropertyFilter{MinPrice: price(1000), MaxPrice: price(2000)})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both boundary listings, got %d", len(got))
	}
}

func TestSearchTermMatchesAnyTextField(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	seed(t, db,
		models.Property{Title: "Quiet Cottage", PropertyType: "villa", ListingType: "sale", Price: 1, Location: "Hilltop"},
		models.Property{Title: "Plain Flat", PropertyType: "apartment", ListingType: "rent", Price: 1, Location: "Center", Description: "A very quiet street"},
		models.Property{Title: "Warehouse", PropertyType: "commercial", ListingType: "rent", Price: 1, Location: "Quiet Zone Industrial Park"},
	)

	got, err := repo.Search(ctx, catalog.PropertyFilter{Search: "QUIET"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected the term to match title, description and location, got %d", len(got))
	}

	// The OR-group still ANDs with other filters.
	got, err = repo.Search(ctx, catalog.PropertyFilter{Search: "quiet", ListingType: "rent"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rented matches, got %d", len(got))
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetProperty(context.Background(), "missing")
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}
