package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"trip-server/db"
	"trip-server/models"
)

const (
	TRIP_STATE_KEY_FORMAT        = "trip_state_v1:%s"
	FACILITIES_GEO_KEY_V1        = "facilities_geo_v1"
	FACILITIES_GEO_MEMBER_FORMAT = "facility_v1:%s"
)

// RedisTripDao persists trip state and the facility geo index in Redis.
type RedisTripDao struct {
	redisClient db.RedisClient
}

// NewRedisTripDao wires a trip DAO to the given Redis client.
func NewRedisTripDao(redisClient db.RedisClient) *RedisTripDao {
	return &RedisTripDao{redisClient: redisClient}
}

// SaveTripState serializes the trip state under the trip's key.
func (dao *RedisTripDao) SaveTripState(ctx context.Context, tripID string, state *models.TripState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal trip state: %w", err)
	}
	return dao.redisClient.Set(ctx, dao.tripStateKey(tripID), string(data))
}

// LoadTripState returns the stored state for a trip, or an empty state
// when nothing has been saved yet.
func (dao *RedisTripDao) LoadTripState(ctx context.Context, tripID string) (*models.TripState, error) {
	data, err := dao.redisClient.Get(ctx, dao.tripStateKey(tripID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return &models.TripState{}, nil
		}
		return nil, fmt.Errorf("failed to load trip state: %w", err)
	}

	var state models.TripState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		log.Printf("[RedisTripDao] Corrupt trip state for %s, resetting: %v", tripID, err)
		return &models.TripState{}, nil
	}
	return &state, nil
}

// DeleteTripState removes a trip's stored state.
func (dao *RedisTripDao) DeleteTripState(ctx context.Context, tripID string) error {
	return dao.redisClient.Del(ctx, dao.tripStateKey(tripID))
}

// UpsertFacilityLocation indexes a resolved facility location for
// nearby lookups.
func (dao *RedisTripDao) UpsertFacilityLocation(ctx context.Context, facility models.Facility, location models.Location) error {
	placed := models.PlacedFacility{Facility: facility, Location: location}
	memberKey := fmt.Sprintf(FACILITIES_GEO_MEMBER_FORMAT, facility.Key())
	return dao.redisClient.AddLocationWithJSON(ctx, FACILITIES_GEO_KEY_V1, memberKey,
		location.Lat, location.Lng, placed)
}

// GetNearbyFacilities returns indexed facilities within radiusKm of the
// given point. Payloads that fail to decode are skipped.
func (dao *RedisTripDao) GetNearbyFacilities(ctx context.Context, center models.LatLng, radiusKm float64) ([]models.PlacedFacility, error) {
	payloads, err := dao.redisClient.GetLocationsWithinRadius(ctx, FACILITIES_GEO_KEY_V1,
		center.Lat, center.Lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby facilities: %w", err)
	}

	facilities := make([]models.PlacedFacility, 0, len(payloads))
	for _, payload := range payloads {
		var placed models.PlacedFacility
		if err := json.Unmarshal([]byte(payload), &placed); err != nil {
			log.Printf("[RedisTripDao] Skipping undecodable geo payload: %v", err)
			continue
		}
		facilities = append(facilities, placed)
	}
	return facilities, nil
}

func (dao *RedisTripDao) tripStateKey(tripID string) string {
	return fmt.Sprintf(TRIP_STATE_KEY_FORMAT, tripID)
}
