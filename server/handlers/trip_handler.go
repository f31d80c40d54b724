package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"trip-server/models"
	"trip-server/route"
	"trip-server/service"
	"trip-server/util"
	"trip-server/wishlist"
)

const (
	TRIP_ID_QUERY_ARG    = "tripId"
	PREFECTURE_QUERY_ARG = "prefecture"
	NAME_QUERY_ARG       = "name"
	INDEX_QUERY_ARG      = "index"
	KEY_QUERY_ARG        = "key"
	MODE_QUERY_ARG       = "mode"
	LIMIT_QUERY_ARG      = "limit"
	LAT_QUERY_ARG        = "lat"
	LNG_QUERY_ARG        = "lng"
	RADIUS_QUERY_ARG     = "radius"

	AGE_QUERY_ARG       = "age"
	GENDER_QUERY_ARG    = "gender"
	STAY_DAYS_QUERY_ARG = "stayDays"
	COMPANION_QUERY_ARG = "companion"
	PURPOSE_QUERY_ARG   = "purpose"
	REGION_QUERY_ARG    = "region"

	DEFAULT_TRIP_ID = "default"
)

// reorderRequest is the body of a wishlist reorder command.
type reorderRequest struct {
	Order []string `json:"order"`
}

type TripHandler struct {
	tripService  *service.TripService
	defaultLimit int
}

func NewTripHandler(tripService *service.TripService, defaultLimit int) *TripHandler {
	return &TripHandler{tripService: tripService, defaultLimit: defaultLimit}
}

// GetRecommendations handles GET /v1/recommendations.
func (h *TripHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	profile := models.UserProfile{
		Age:       vals.Get(AGE_QUERY_ARG),
		Gender:    vals.Get(GENDER_QUERY_ARG),
		StayDays:  vals.Get(STAY_DAYS_QUERY_ARG),
		Companion: vals.Get(COMPANION_QUERY_ARG),
		Purpose:   vals.Get(PURPOSE_QUERY_ARG),
		Region:    vals.Get(REGION_QUERY_ARG),
	}
	limit := h.defaultLimit
	if v := vals.Get(LIMIT_QUERY_ARG); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid argument "+LIMIT_QUERY_ARG, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	writeJSON(w, h.tripService.Recommend(profile, limit))
}

// GetTripState handles GET /v1/trip.
func (h *TripHandler) GetTripState(w http.ResponseWriter, r *http.Request) {
	state, err := h.tripService.GetTripState(r.Context(), tripID(r.URL.Query()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, state)
}

// AddWishlistItem handles POST /v1/trip/wishlist/items. An index query
// argument turns the append into a positioned insert.
func (h *TripHandler) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	prefecture := vals.Get(PREFECTURE_QUERY_ARG)
	name := vals.Get(NAME_QUERY_ARG)
	if prefecture == "" || name == "" {
		http.Error(w, "Missing argument "+PREFECTURE_QUERY_ARG+" or "+NAME_QUERY_ARG, http.StatusBadRequest)
		return
	}

	var state *models.TripState
	var err error
	if v := vals.Get(INDEX_QUERY_ARG); v != "" {
		index, parseErr := strconv.Atoi(v)
		if parseErr != nil {
			http.Error(w, "Invalid argument "+INDEX_QUERY_ARG, http.StatusBadRequest)
			return
		}
		state, err = h.tripService.InsertIntoWishlist(r.Context(), tripID(vals), prefecture, name, index)
	} else {
		state, err = h.tripService.AddToWishlist(r.Context(), tripID(vals), prefecture, name)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, state)
}

// RemoveWishlistItem handles DELETE /v1/trip/wishlist/items.
func (h *TripHandler) RemoveWishlistItem(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	key := vals.Get(KEY_QUERY_ARG)
	if key == "" {
		http.Error(w, "Missing argument "+KEY_QUERY_ARG, http.StatusBadRequest)
		return
	}
	state, err := h.tripService.RemoveFromWishlist(r.Context(), tripID(vals), key)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, state)
}

// ReorderWishlist handles PUT /v1/trip/wishlist/order.
func (h *TripHandler) ReorderWishlist(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid reorder body", http.StatusBadRequest)
		return
	}
	state, err := h.tripService.ReorderWishlist(r.Context(), tripID(r.URL.Query()), req.Order)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, state)
}

// SetSegmentMode handles PUT /v1/trip/segments/mode.
func (h *TripHandler) SetSegmentMode(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	index, err := strconv.Atoi(vals.Get(INDEX_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+INDEX_QUERY_ARG, http.StatusBadRequest)
		return
	}
	mode := models.ParseTravelMode(vals.Get(MODE_QUERY_ARG))

	state, err := h.tripService.SetSegmentMode(r.Context(), tripID(vals), index, mode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, state)
}

// ClearWishlist handles DELETE /v1/trip/wishlist.
func (h *TripHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	state, err := h.tripService.ClearWishlist(r.Context(), tripID(r.URL.Query()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, state)
}

// GetRoute handles GET /v1/route.
func (h *TripHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	routeInfo, err := h.tripService.ComputeRoute(r.Context(), tripID(r.URL.Query()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, routeInfo)
}

// GetRouteMap handles GET /v1/route/map, rendering the stops as an
// HTML chart.
func (h *TripHandler) GetRouteMap(w http.ResponseWriter, r *http.Request) {
	state, err := h.tripService.GetTripState(r.Context(), tripID(r.URL.Query()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotRoute(state.Wishlist, w); err != nil {
		log.Println("Error rendering route map:", err)
	}
}

// GetItinerary handles GET /v1/itinerary.
func (h *TripHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	it, err := h.tripService.BuildItinerary(r.Context(), tripID(r.URL.Query()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, it)
}

// GetFacilitiesNearby handles GET /v1/facilities/nearby.
func (h *TripHandler) GetFacilitiesNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err := parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err := parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}

	facilities, err := h.tripService.GetNearbyFacilities(r.Context(), models.LatLng{Lat: lat, Lng: lng}, radius)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, facilities)
}

// Ping handles GET /ping.
func (h *TripHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

// writeError maps domain errors to HTTP status codes.
func (h *TripHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrFacilityNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, wishlist.ErrDuplicateEntry):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, route.ErrInsufficientWaypoints),
		errors.Is(err, wishlist.ErrSegmentIndexOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("Error handling request:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func tripID(vals url.Values) string {
	if id := vals.Get(TRIP_ID_QUERY_ARG); id != "" {
		return id
	}
	return DEFAULT_TRIP_ID
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func parseArgFloat64(vals url.Values, arg string) (float64, error) {
	return strconv.ParseFloat(vals.Get(arg), 64)
}
