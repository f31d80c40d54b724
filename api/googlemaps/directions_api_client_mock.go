package googlemaps

import (
	"context"

	"trip-server/models"
	"trip-server/route"
)

// DirectionsApiClientMock estimates legs locally instead of calling the
// web service. Used when no API key is configured.
type DirectionsApiClientMock struct{}

// NewDirectionsApiClientMock creates a new instance of DirectionsApiClientMock.
func NewDirectionsApiClientMock() *DirectionsApiClientMock {
	return &DirectionsApiClientMock{}
}

// GetRouteSegment returns a straight-line estimate for the segment.
func (c *DirectionsApiClientMock) GetRouteSegment(ctx context.Context, origin, destination models.LatLng, mode models.TravelMode) (models.Leg, error) {
	distance := route.Haversine(origin, destination)
	return models.Leg{
		StartLocation: origin,
		EndLocation:   destination,
		Distance:      distance,
		Duration:      route.EstimateDuration(distance, mode),
	}, nil
}

// SetCredentials is a no-op for the mock.
func (c *DirectionsApiClientMock) SetCredentials(apiKey string) {}
