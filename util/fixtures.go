package util

import (
	"encoding/json"
	"fmt"
	"os"

	"trip-server/models"
)

// ReadFacilityLocationsFromJSON loads a query→location fixture map, as
// used by the offline places client.
func ReadFacilityLocationsFromJSON(path string) (map[string]models.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facility locations file %s: %w", path, err)
	}
	var locations map[string]models.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal facility locations: %w", err)
	}
	return locations, nil
}

// ReadTripStateFromJSON loads a serialized trip state, used in tests.
func ReadTripStateFromJSON(path string) (*models.TripState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip state file %s: %w", path, err)
	}
	var state models.TripState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip state: %w", err)
	}
	return &state, nil
}
