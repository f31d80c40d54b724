package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"trip-server/catalog"
	redisdao "trip-server/dao/redis"
	"trip-server/db"
	"trip-server/models"
	"trip-server/recommend"
)

const catalogCSV = `都道府県,施設名,20代,NPS
石川県,兼六園,5,72
福井県,東尋坊,4,58
`

func TestCatalogRefresherService_RefreshCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facility_scores.csv")
	if err := os.WriteFile(path, []byte(catalogCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := recommend.NewEngine(nil, true)
	tripDao := redisdao.NewRedisTripDao(db.NewMockRedisClient())
	refresher := NewCatalogRefresherService(catalog.NewParser(), engine, tripDao, path)

	if err := refresher.RefreshCatalog(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := len(engine.Facilities()); got != 2 {
		t.Fatalf("Expected 2 facilities in the engine, got %d", got)
	}
	if _, ok := engine.Facility("石川県", "兼六園"); !ok {
		t.Error("Expected 兼六園 to be loaded into the engine")
	}

	// The geo index is seeded with prefecture centroids.
	nearby, err := tripDao.GetNearbyFacilities(context.Background(), models.LatLng{Lat: 36.5, Lng: 136.6}, 500)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(nearby) != 2 {
		t.Errorf("Expected 2 seeded facilities in the geo index, got %d", len(nearby))
	}
}

func TestCatalogRefresherService_RefreshCatalog_MissingFile(t *testing.T) {
	engine := recommend.NewEngine(nil, true)
	tripDao := redisdao.NewRedisTripDao(db.NewMockRedisClient())
	refresher := NewCatalogRefresherService(catalog.NewParser(), engine, tripDao, "/nonexistent/scores.csv")

	if err := refresher.RefreshCatalog(context.Background()); err == nil {
		t.Error("Expected an error for a missing catalog file")
	}
}
