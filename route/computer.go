package route

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"trip-server/models"
)

// ErrInsufficientWaypoints is returned when a route is requested for
// fewer than two stops.
var ErrInsufficientWaypoints = errors.New("route computation requires at least 2 waypoints")

// ErrRouteComputationFailed wraps an external directions provider
// failure when fallback is disabled.
var ErrRouteComputationFailed = errors.New("route computation failed")

// DirectionsProvider returns an authoritative leg for one segment.
// Implementations live in api/googlemaps.
type DirectionsProvider interface {
	GetRouteSegment(ctx context.Context, origin, destination models.LatLng, mode models.TravelMode) (models.Leg, error)
}

// Computer turns an ordered waypoint sequence plus per-segment travel
// modes into route legs. With a provider configured, each segment is
// requested concurrently and results are reassembled by segment index;
// without one (or on provider failure, when fallbackOnError is set) the
// haversine estimator is used.
type Computer struct {
	provider        DirectionsProvider
	fallbackOnError bool
}

// NewComputer constructs a Computer. provider may be nil to force the
// estimator strategy.
func NewComputer(provider DirectionsProvider, fallbackOnError bool) *Computer {
	return &Computer{provider: provider, fallbackOnError: fallbackOnError}
}

// Compute builds the legs for the given ordering. Legs align 1:1 with
// segment mode indices; a mode slice of the wrong length is padded or
// truncated with DRIVING rather than rejected.
func (c *Computer) Compute(ctx context.Context, waypoints []models.LatLng, modes []models.TravelMode) (*models.RouteInfo, error) {
	if len(waypoints) < 2 {
		return nil, ErrInsufficientWaypoints
	}
	modes = normalizeModes(modes, len(waypoints)-1)

	if c.provider == nil {
		return c.estimate(waypoints, modes), nil
	}

	legs, err := c.fetchSegments(ctx, waypoints, modes)
	if err != nil {
		if c.fallbackOnError {
			log.Printf("[RouteComputer] provider failed (%v), falling back to estimator", err)
			return c.estimate(waypoints, modes), nil
		}
		return nil, err
	}
	return &models.RouteInfo{Legs: legs}, nil
}

// fetchSegments issues one provider request per segment concurrently.
// The legs slice is indexed by segment so completion order never
// affects output order.
func (c *Computer) fetchSegments(ctx context.Context, waypoints []models.LatLng, modes []models.TravelMode) ([]models.Leg, error) {
	segmentCount := len(waypoints) - 1
	legs := make([]models.Leg, segmentCount)
	errs := make([]error, segmentCount)

	var wg sync.WaitGroup
	for i := 0; i < segmentCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			legs[i], errs[i] = c.provider.GetRouteSegment(ctx, waypoints[i], waypoints[i+1], modes[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", ErrRouteComputationFailed, i, err)
		}
	}
	return legs, nil
}

func (c *Computer) estimate(waypoints []models.LatLng, modes []models.TravelMode) *models.RouteInfo {
	legs := make([]models.Leg, len(waypoints)-1)
	for i := range legs {
		distance := Haversine(waypoints[i], waypoints[i+1])
		legs[i] = models.Leg{
			StartLocation: waypoints[i],
			EndLocation:   waypoints[i+1],
			Distance:      distance,
			Duration:      EstimateDuration(distance, modes[i]),
		}
	}
	return &models.RouteInfo{Legs: legs}
}

// normalizeModes pads or truncates the mode slice to the segment count,
// filling gaps and invalid values with DRIVING.
func normalizeModes(modes []models.TravelMode, segmentCount int) []models.TravelMode {
	out := make([]models.TravelMode, segmentCount)
	for i := range out {
		if i < len(modes) && modes[i].Valid() {
			out[i] = modes[i]
		} else {
			out[i] = models.DefaultTravelMode
		}
	}
	return out
}
