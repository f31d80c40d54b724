package googlemaps

import (
	"context"
	"fmt"

	"trip-server/models"
	"trip-server/util"
)

// PlacesApiClientMock serves place lookups from a JSON fixture keyed by
// query text. Queries missing from the fixture fail the same way an
// empty Places result does, so callers exercise their fallback path.
type PlacesApiClientMock struct {
	locations map[string]models.Location
}

// NewPlacesApiClientMock loads the fixture at the given path. A missing
// fixture yields an empty mock rather than an error.
func NewPlacesApiClientMock(fixturePath string) *PlacesApiClientMock {
	locations, err := util.ReadFacilityLocationsFromJSON(fixturePath)
	if err != nil {
		fmt.Println("Could not read facility locations fixture:", err)
		locations = map[string]models.Location{}
	}
	return &PlacesApiClientMock{locations: locations}
}

// FindPlaceFromQuery returns the fixture entry for the query.
func (c *PlacesApiClientMock) FindPlaceFromQuery(ctx context.Context, query string) (models.Location, error) {
	if location, ok := c.locations[query]; ok {
		return location, nil
	}
	return models.Location{}, fmt.Errorf("place lookup failed with status ZERO_RESULTS")
}

// SetCredentials is a no-op for the mock.
func (c *PlacesApiClientMock) SetCredentials(apiKey string) {}
