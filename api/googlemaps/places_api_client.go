package googlemaps

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"trip-server/api"
	"trip-server/models"
)

// Photo sizes requested for marker icons and cards.
const (
	photoWidthSmall = 100
	photoWidthLarge = 400
)

// PlacesApiClient calls the Google Places find-place web service.
type PlacesApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient.
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{HTTPClient: httpClient}
}

// SetCredentials stores the API key sent with every request.
func (c *PlacesApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

type placesResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"candidates"`
}

// FindPlaceFromQuery resolves a free-text query to the first candidate
// place, including photo URLs when the place has photos.
func (c *PlacesApiClient) FindPlaceFromQuery(ctx context.Context, queryText string) (models.Location, error) {
	query := url.Values{}
	query.Set("input", queryText)
	query.Set("inputtype", "textquery")
	query.Set("fields", "name,geometry,photos,formatted_address")
	query.Set("key", c.apiKey)

	var response placesResponse
	err := retry.Do(
		func() error {
			return c.Request(ctx, "GET", "/place/findplacefromtext/json", query, nil, &response)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
	)
	if err != nil {
		return models.Location{}, err
	}

	if response.Status != "OK" || len(response.Candidates) == 0 {
		return models.Location{}, fmt.Errorf("place lookup failed with status %s", response.Status)
	}

	candidate := response.Candidates[0]
	location := models.Location{
		LatLng: models.LatLng{
			Lat: candidate.Geometry.Location.Lat,
			Lng: candidate.Geometry.Location.Lng,
		},
		Name:    candidate.Name,
		Address: candidate.FormattedAddress,
	}
	if len(candidate.Photos) > 0 {
		ref := candidate.Photos[0].PhotoReference
		location.PhotoURL = c.photoURL(ref, photoWidthSmall)
		location.PhotoURLLarge = c.photoURL(ref, photoWidthLarge)
	}
	return location, nil
}

func (c *PlacesApiClient) photoURL(reference string, maxWidth int) string {
	query := url.Values{}
	query.Set("photo_reference", reference)
	query.Set("maxwidth", fmt.Sprintf("%d", maxWidth))
	query.Set("key", c.apiKey)
	return c.BaseURL + "/place/photo?" + query.Encode()
}
