package db

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"trip-server/models"
	"trip-server/route"
)

// geoMember holds a mock geo index entry.
type geoMember struct {
	lat float64
	lng float64
}

// MockRedisClient is an in-memory RedisClient for tests and local runs
// without a Redis instance.
type MockRedisClient struct {
	mu      sync.RWMutex
	data    map[string]string
	geoData map[string]map[string]geoMember
}

// NewMockRedisClient initializes an empty mock client.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]geoMember),
	}
}

// Set stores a key-value pair.
func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value, ErrKeyNotFound when absent.
func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Del removes a key, absent keys are a no-op.
func (m *MockRedisClient) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns keys matching a glob pattern.
func (m *MockRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// AddLocationWithJSON records the geo member and its JSON payload.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON payload: %w", err)
	}
	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]geoMember)
	}
	m.geoData[geoKey][memberKey] = geoMember{lat: lat, lng: lng}
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns the payloads of members within
// radiusKm of the given point, mirroring GEORADIUS.
func (m *MockRedisClient) GetLocationsWithinRadius(ctx context.Context, geoKey string, lat, lng, radiusKm float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	members, exists := m.geoData[geoKey]
	if !exists {
		return nil, nil
	}
	center := models.LatLng{Lat: lat, Lng: lng}
	var payloads []string
	for memberKey, member := range members {
		distance := route.Haversine(center, models.LatLng{Lat: member.lat, Lng: member.lng})
		if distance.Meters > radiusKm*1000 {
			continue
		}
		if data, ok := m.data[memberKey]; ok {
			payloads = append(payloads, data)
		}
	}
	return payloads, nil
}

// Ping always succeeds.
func (m *MockRedisClient) Ping(ctx context.Context) error {
	return nil
}
