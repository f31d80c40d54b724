package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	redisdao "trip-server/dao/redis"
	"trip-server/geo"
	"trip-server/itinerary"
	"trip-server/models"
	"trip-server/recommend"
	"trip-server/route"
	"trip-server/wishlist"
)

// ErrFacilityNotFound signals a wishlist command naming a facility
// absent from the catalog.
var ErrFacilityNotFound = errors.New("facility not found in catalog")

// TripService orchestrates recommendations, the wishlist, segment
// modes, routing and the itinerary for a trip. Each mutation loads the
// persisted state, applies the command to in-memory models, reconciles
// segment modes with the new ordering and writes the state back.
type TripService struct {
	engine        *recommend.Engine
	resolver      *geo.Resolver
	routeComputer *route.Computer
	tripDao       *redisdao.RedisTripDao
}

// NewTripService wires the trip orchestration layer.
func NewTripService(engine *recommend.Engine, resolver *geo.Resolver,
	routeComputer *route.Computer, tripDao *redisdao.RedisTripDao) *TripService {
	return &TripService{
		engine:        engine,
		resolver:      resolver,
		routeComputer: routeComputer,
		tripDao:       tripDao,
	}
}

// Recommend ranks the catalog for the given profile.
func (s *TripService) Recommend(profile models.UserProfile, limit int) []models.ScoredFacility {
	return s.engine.Recommend(profile, limit)
}

// GetTripState returns the persisted state for a trip.
func (s *TripService) GetTripState(ctx context.Context, tripID string) (*models.TripState, error) {
	return s.tripDao.LoadTripState(ctx, tripID)
}

// AddToWishlist appends a catalog facility to the trip's wishlist.
func (s *TripService) AddToWishlist(ctx context.Context, tripID, prefecture, name string) (*models.TripState, error) {
	return s.insert(ctx, tripID, prefecture, name, 0, false)
}

// InsertIntoWishlist places a catalog facility at the given position.
// Out-of-range positions, negative included, are clamped to [0, length].
func (s *TripService) InsertIntoWishlist(ctx context.Context, tripID, prefecture, name string, index int) (*models.TripState, error) {
	return s.insert(ctx, tripID, prefecture, name, index, true)
}

func (s *TripService) insert(ctx context.Context, tripID, prefecture, name string, index int, positioned bool) (*models.TripState, error) {
	facility, ok := s.engine.Facility(prefecture, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrFacilityNotFound, prefecture, name)
	}

	list, modes, err := s.loadModels(ctx, tripID)
	if err != nil {
		return nil, err
	}

	location := s.resolver.Resolve(ctx, facility.Name, facility.Prefecture)
	if !positioned {
		index = list.Len()
	}
	if err := list.InsertAt(facility, location, index); err != nil {
		return nil, err
	}
	modes.Reconcile(list.Keys())

	if err := s.tripDao.UpsertFacilityLocation(ctx, facility, location); err != nil {
		log.Printf("[TripService] failed to index facility location for %s: %v", facility.Key(), err)
	}
	return s.persist(ctx, tripID, list, modes)
}

// RemoveFromWishlist deletes an entry by identity key. Removing an
// absent key is a no-op.
func (s *TripService) RemoveFromWishlist(ctx context.Context, tripID, key string) (*models.TripState, error) {
	list, modes, err := s.loadModels(ctx, tripID)
	if err != nil {
		return nil, err
	}
	list.Remove(key)
	modes.Reconcile(list.Keys())
	return s.persist(ctx, tripID, list, modes)
}

// ReorderWishlist replaces the ordering with the given key sequence.
func (s *TripService) ReorderWishlist(ctx context.Context, tripID string, keys []string) (*models.TripState, error) {
	list, modes, err := s.loadModels(ctx, tripID)
	if err != nil {
		return nil, err
	}
	list.Reorder(keys)
	modes.Reconcile(list.Keys())
	return s.persist(ctx, tripID, list, modes)
}

// SetSegmentMode overrides the travel mode of one segment.
func (s *TripService) SetSegmentMode(ctx context.Context, tripID string, index int, mode models.TravelMode) (*models.TripState, error) {
	list, modes, err := s.loadModels(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := modes.SetMode(index, mode); err != nil {
		return nil, err
	}
	return s.persist(ctx, tripID, list, modes)
}

// ClearWishlist empties the trip by deleting its persisted state.
func (s *TripService) ClearWishlist(ctx context.Context, tripID string) (*models.TripState, error) {
	if err := s.tripDao.DeleteTripState(ctx, tripID); err != nil {
		return nil, err
	}
	return &models.TripState{
		Wishlist:     []models.WishlistEntry{},
		SegmentModes: []models.TravelMode{},
	}, nil
}

// ComputeRoute builds the legs for the trip's current ordering.
func (s *TripService) ComputeRoute(ctx context.Context, tripID string) (*models.RouteInfo, error) {
	list, modes, err := s.loadModels(ctx, tripID)
	if err != nil {
		return nil, err
	}

	entries := list.Entries()
	waypoints := make([]models.LatLng, len(entries))
	for i, e := range entries {
		waypoints[i] = e.Location.LatLng
	}
	return s.routeComputer.Compute(ctx, waypoints, modes.Modes())
}

// BuildItinerary assembles the paginated itinerary view, with travel
// times when a route can be computed.
func (s *TripService) BuildItinerary(ctx context.Context, tripID string) (*itinerary.Itinerary, error) {
	list, _, err := s.loadModels(ctx, tripID)
	if err != nil {
		return nil, err
	}

	var legs []models.Leg
	routeInfo, err := s.ComputeRoute(ctx, tripID)
	if err == nil {
		legs = routeInfo.Legs
	} else if !errors.Is(err, route.ErrInsufficientWaypoints) {
		return nil, err
	}
	return itinerary.Assemble(list.Entries(), legs), nil
}

// GetNearbyFacilities returns indexed facilities around a point.
func (s *TripService) GetNearbyFacilities(ctx context.Context, center models.LatLng, radiusKm float64) ([]models.PlacedFacility, error) {
	return s.tripDao.GetNearbyFacilities(ctx, center, radiusKm)
}

// loadModels rebuilds the in-memory wishlist and mode store from the
// persisted state.
func (s *TripService) loadModels(ctx context.Context, tripID string) (*wishlist.Wishlist, *wishlist.ModeStore, error) {
	state, err := s.tripDao.LoadTripState(ctx, tripID)
	if err != nil {
		return nil, nil, err
	}
	list := wishlist.NewFromEntries(state.Wishlist)
	modes := wishlist.NewModeStoreFromState(list.Keys(), state.SegmentModes)
	return list, modes, nil
}

func (s *TripService) persist(ctx context.Context, tripID string, list *wishlist.Wishlist, modes *wishlist.ModeStore) (*models.TripState, error) {
	state := &models.TripState{
		Wishlist:     list.Entries(),
		SegmentModes: modes.Modes(),
	}
	if err := s.tripDao.SaveTripState(ctx, tripID, state); err != nil {
		return nil, err
	}
	return state, nil
}
