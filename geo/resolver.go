package geo

import (
	"context"
	"log"

	"github.com/maypok86/otter/v2"

	"trip-server/models"
)

const locationCacheSize = 4096

// PlaceFinder resolves a free-text query to a place. Implementations
// live in api/googlemaps.
type PlaceFinder interface {
	FindPlaceFromQuery(ctx context.Context, query string) (models.Location, error)
}

// Resolver turns (facility name, prefecture) into a Location. Results
// are memoized per identity key for the session, so a facility is never
// refetched once resolved. Lookup failure degrades to the prefecture
// centroid instead of aborting the caller's operation.
type Resolver struct {
	finder PlaceFinder
	cache  *otter.Cache[string, models.Location]
}

// NewResolver constructs a Resolver over the given finder. finder may
// be nil, in which case every resolution uses the centroid fallback.
func NewResolver(finder PlaceFinder) *Resolver {
	cache := otter.Must(&otter.Options[string, models.Location]{
		MaximumSize: locationCacheSize,
	})
	return &Resolver{finder: finder, cache: cache}
}

// Resolve returns the best-known location for a facility. It never
// fails: resolution errors are logged and replaced by the prefecture
// centroid with a synthesized address.
func (r *Resolver) Resolve(ctx context.Context, facilityName, prefecture string) models.Location {
	cacheKey := prefecture + "_" + facilityName
	if cached, ok := r.cache.GetIfPresent(cacheKey); ok {
		return cached
	}

	location, err := r.lookup(ctx, facilityName, prefecture)
	if err != nil {
		log.Printf("[GeoResolver] resolution failed for %s %s (%v), using prefecture centroid", prefecture, facilityName, err)
		location = r.fallback(facilityName, prefecture)
	}

	r.cache.Set(cacheKey, location)
	return location
}

func (r *Resolver) lookup(ctx context.Context, facilityName, prefecture string) (models.Location, error) {
	if r.finder == nil {
		return r.fallback(facilityName, prefecture), nil
	}
	location, err := r.finder.FindPlaceFromQuery(ctx, facilityName+" "+prefecture)
	if err != nil {
		return models.Location{}, err
	}
	if location.Address == "" {
		location.Address = facilityName + " " + prefecture
	}
	return location, nil
}

func (r *Resolver) fallback(facilityName, prefecture string) models.Location {
	return models.Location{
		LatLng:  PrefectureCenter(prefecture),
		Name:    facilityName,
		Address: facilityName + " " + prefecture,
	}
}
