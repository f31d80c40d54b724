package service

import (
	"context"
	"log"
	"time"

	"trip-server/catalog"
	"trip-server/dao/redis"
	"trip-server/geo"
	"trip-server/models"
	"trip-server/recommend"
)

// CatalogRefresherService reloads the facility catalog from disk and
// keeps the recommendation engine and the geo index in sync with it.
type CatalogRefresherService struct {
	parser      *catalog.Parser
	engine      *recommend.Engine
	tripDao     *redis.RedisTripDao
	catalogPath string
}

// NewCatalogRefresherService wires a refresher for the given catalog
// file.
func NewCatalogRefresherService(parser *catalog.Parser, engine *recommend.Engine,
	tripDao *redis.RedisTripDao, catalogPath string) *CatalogRefresherService {
	return &CatalogRefresherService{
		parser:      parser,
		engine:      engine,
		tripDao:     tripDao,
		catalogPath: catalogPath,
	}
}

// RefreshCatalog reloads the catalog file, swaps it into the engine and
// seeds the geo index with prefecture centroids for new facilities.
func (s *CatalogRefresherService) RefreshCatalog(ctx context.Context) error {
	facilities, err := s.parser.LoadFile(s.catalogPath)
	if err != nil {
		return err
	}
	s.engine.SetFacilities(facilities)
	log.Printf("[CatalogRefresherService] Loaded %d facilities from %s", len(facilities), s.catalogPath)

	// Coarse seed so nearby lookups work before any facility has been
	// resolved to an exact location.
	for _, facility := range facilities {
		location := models.Location{
			LatLng:  geo.PrefectureCenter(facility.Prefecture),
			Name:    facility.Name,
			Address: facility.Name + " " + facility.Prefecture,
		}
		if err := s.tripDao.UpsertFacilityLocation(ctx, facility, location); err != nil {
			log.Printf("[CatalogRefresherService] Failed to seed geo index for %s: %v", facility.Key(), err)
		}
	}
	return nil
}

// StartPeriodicJob refreshes the catalog on a fixed interval until the
// context is cancelled.
func (s *CatalogRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[CatalogRefresherService] Stopping periodic refresh")
				return
			case <-ticker.C:
				if err := s.RefreshCatalog(ctx); err != nil {
					log.Printf("[CatalogRefresherService] Refresh failed: %v", err)
				}
			}
		}
	}()
}
