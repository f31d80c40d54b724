package main

import (
	"context"
	"log"
	"time"

	"trip-server/config"
	"trip-server/di"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container := di.NewContainer(cfg)

	ctx := context.Background()
	if err := container.CatalogRefresherService.RefreshCatalog(ctx); err != nil {
		log.Fatalf("Failed to load facility catalog: %v", err)
	}
	container.CatalogRefresherService.StartPeriodicJob(ctx,
		time.Duration(cfg.CatalogRefreshMinutes)*time.Minute)

	container.TripPlannerHttpServer.Start()
}
