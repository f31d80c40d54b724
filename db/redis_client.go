package db

import "context"

// RedisClient is the storage contract the DAOs depend on: plain
// key-value operations plus a geo index with JSON payloads per member.
type RedisClient interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lng, radiusKm float64) ([]string, error)
	Ping(ctx context.Context) error
}
