package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockTripHandler answers every route with a canned payload.
type MockTripHandler struct{}

func (h *MockTripHandler) respond(w http.ResponseWriter, body string) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (h *MockTripHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "recommendations"}`)
}
func (h *MockTripHandler) GetTripState(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "trip state"}`)
}
func (h *MockTripHandler) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "added"}`)
}
func (h *MockTripHandler) RemoveWishlistItem(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "removed"}`)
}
func (h *MockTripHandler) ReorderWishlist(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "reordered"}`)
}
func (h *MockTripHandler) SetSegmentMode(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "mode set"}`)
}
func (h *MockTripHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "cleared"}`)
}
func (h *MockTripHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "route"}`)
}
func (h *MockTripHandler) GetRouteMap(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `<html></html>`)
}
func (h *MockTripHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "itinerary"}`)
}
func (h *MockTripHandler) GetFacilitiesNearby(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "nearby"}`)
}
func (h *MockTripHandler) Ping(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"status": "ok"}`)
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockHandler := &MockTripHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockHandler, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Recommendations",
			method:     "GET",
			path:       "/v1/recommendations",
			statusCode: http.StatusOK,
			response:   `{"message": "recommendations"}`,
		},
		{
			name:       "Get Trip State",
			method:     "GET",
			path:       "/v1/trip",
			statusCode: http.StatusOK,
			response:   `{"message": "trip state"}`,
		},
		{
			name:       "Add Wishlist Item",
			method:     "POST",
			path:       "/v1/trip/wishlist/items",
			statusCode: http.StatusOK,
			response:   `{"message": "added"}`,
		},
		{
			name:       "Remove Wishlist Item",
			method:     "DELETE",
			path:       "/v1/trip/wishlist/items",
			statusCode: http.StatusOK,
			response:   `{"message": "removed"}`,
		},
		{
			name:       "Reorder Wishlist",
			method:     "PUT",
			path:       "/v1/trip/wishlist/order",
			statusCode: http.StatusOK,
			response:   `{"message": "reordered"}`,
		},
		{
			name:       "Set Segment Mode",
			method:     "PUT",
			path:       "/v1/trip/segments/mode",
			statusCode: http.StatusOK,
			response:   `{"message": "mode set"}`,
		},
		{
			name:       "Clear Wishlist",
			method:     "DELETE",
			path:       "/v1/trip/wishlist",
			statusCode: http.StatusOK,
			response:   `{"message": "cleared"}`,
		},
		{
			name:       "Get Route",
			method:     "GET",
			path:       "/v1/route",
			statusCode: http.StatusOK,
			response:   `{"message": "route"}`,
		},
		{
			name:       "Get Route Map",
			method:     "GET",
			path:       "/v1/route/map",
			statusCode: http.StatusOK,
			response:   `<html></html>`,
		},
		{
			name:       "Get Itinerary",
			method:     "GET",
			path:       "/v1/itinerary",
			statusCode: http.StatusOK,
			response:   `{"message": "itinerary"}`,
		},
		{
			name:       "Get Facilities Nearby",
			method:     "GET",
			path:       "/v1/facilities/nearby",
			statusCode: http.StatusOK,
			response:   `{"message": "nearby"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "ok"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/route",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
