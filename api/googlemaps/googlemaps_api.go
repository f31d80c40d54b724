package googlemaps

import (
	"context"

	"trip-server/models"
)

// DirectionsAPI is the narrow contract the route computer needs from
// the directions provider.
type DirectionsAPI interface {
	GetRouteSegment(ctx context.Context, origin, destination models.LatLng, mode models.TravelMode) (models.Leg, error)
	SetCredentials(apiKey string)
}

// PlacesAPI resolves free-text place queries.
type PlacesAPI interface {
	FindPlaceFromQuery(ctx context.Context, query string) (models.Location, error)
	SetCredentials(apiKey string)
}
