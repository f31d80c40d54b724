package googlemaps

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"trip-server/api"
	"trip-server/models"
)

// DirectionsApiClient calls the Google Directions web service, one
// request per route segment.
type DirectionsApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewDirectionsApiClient creates a new instance of DirectionsApiClient.
func NewDirectionsApiClient(httpClient *api.HTTPClient) *DirectionsApiClient {
	return &DirectionsApiClient{HTTPClient: httpClient}
}

// SetCredentials stores the API key sent with every request.
func (c *DirectionsApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

type directionsLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type directionsLeg struct {
	Distance struct {
		Value float64 `json:"value"`
		Text  string  `json:"text"`
	} `json:"distance"`
	Duration struct {
		Value int    `json:"value"`
		Text  string `json:"text"`
	} `json:"duration"`
	StartLocation directionsLatLng `json:"start_location"`
	EndLocation   directionsLatLng `json:"end_location"`
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []directionsLeg `json:"legs"`
	} `json:"routes"`
}

// GetRouteSegment requests directions for one adjacent waypoint pair
// and maps the first returned leg onto the internal Leg shape.
func (c *DirectionsApiClient) GetRouteSegment(ctx context.Context, origin, destination models.LatLng, mode models.TravelMode) (models.Leg, error) {
	query := url.Values{}
	query.Set("origin", formatLatLng(origin))
	query.Set("destination", formatLatLng(destination))
	query.Set("mode", strings.ToLower(string(mode)))
	query.Set("key", c.apiKey)

	var response directionsResponse
	err := retry.Do(
		func() error {
			return c.Request(ctx, "GET", "/directions/json", query, nil, &response)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
	)
	if err != nil {
		return models.Leg{}, err
	}

	if response.Status != "OK" {
		return models.Leg{}, fmt.Errorf("directions request failed with status %s", response.Status)
	}
	if len(response.Routes) == 0 || len(response.Routes[0].Legs) == 0 {
		return models.Leg{}, fmt.Errorf("directions response contains no legs")
	}

	leg := response.Routes[0].Legs[0]
	return models.Leg{
		StartLocation: models.LatLng{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
		EndLocation:   models.LatLng{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
		Distance: models.Distance{
			Meters: leg.Distance.Value,
			Text:   leg.Distance.Text,
		},
		Duration: models.Duration{
			Seconds: leg.Duration.Value,
			Text:    leg.Duration.Text,
		},
	}, nil
}

func formatLatLng(p models.LatLng) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}
