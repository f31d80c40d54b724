package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// TripHandlerAPI is the handler surface the router binds routes to.
// handlers.TripHandler implements it.
type TripHandlerAPI interface {
	GetRecommendations(w http.ResponseWriter, r *http.Request)
	GetTripState(w http.ResponseWriter, r *http.Request)
	AddWishlistItem(w http.ResponseWriter, r *http.Request)
	RemoveWishlistItem(w http.ResponseWriter, r *http.Request)
	ReorderWishlist(w http.ResponseWriter, r *http.Request)
	SetSegmentMode(w http.ResponseWriter, r *http.Request)
	ClearWishlist(w http.ResponseWriter, r *http.Request)
	GetRoute(w http.ResponseWriter, r *http.Request)
	GetRouteMap(w http.ResponseWriter, r *http.Request)
	GetItinerary(w http.ResponseWriter, r *http.Request)
	GetFacilitiesNearby(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	tripHandler TripHandlerAPI
	router      *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(tripHandler TripHandlerAPI, router *mux.Router) *Router {
	return &Router{
		tripHandler: tripHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects profile query args: ?age=&gender=&stayDays=&companion=&purpose=&region=&limit=
	r.router.HandleFunc("/v1/recommendations", r.tripHandler.GetRecommendations).Methods("GET")

	r.router.HandleFunc("/v1/trip", r.tripHandler.GetTripState).Methods("GET")
	r.router.HandleFunc("/v1/trip/wishlist", r.tripHandler.ClearWishlist).Methods("DELETE")
	r.router.HandleFunc("/v1/trip/wishlist/items", r.tripHandler.AddWishlistItem).Methods("POST")
	r.router.HandleFunc("/v1/trip/wishlist/items", r.tripHandler.RemoveWishlistItem).Methods("DELETE")
	r.router.HandleFunc("/v1/trip/wishlist/order", r.tripHandler.ReorderWishlist).Methods("PUT")
	r.router.HandleFunc("/v1/trip/segments/mode", r.tripHandler.SetSegmentMode).Methods("PUT")

	r.router.HandleFunc("/v1/route", r.tripHandler.GetRoute).Methods("GET")
	r.router.HandleFunc("/v1/route/map", r.tripHandler.GetRouteMap).Methods("GET")
	r.router.HandleFunc("/v1/itinerary", r.tripHandler.GetItinerary).Methods("GET")

	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={radius_km(float)}
	r.router.HandleFunc("/v1/facilities/nearby", r.tripHandler.GetFacilitiesNearby).Methods("GET")

	r.router.HandleFunc("/ping", r.tripHandler.Ping).Methods("GET")
}
