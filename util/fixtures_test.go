package util

import (
	"os"
	"path/filepath"
	"testing"

	"trip-server/models"
)

func TestReadFacilityLocationsFromJSON(t *testing.T) {
	fixture := `{
	  "兼六園 石川県": {"lat": 36.5613, "lng": 136.6562, "name": "兼六園", "address": "石川県金沢市兼六町1"}
	}`
	path := filepath.Join(t.TempDir(), "facility_locations.json")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	locations, err := ReadFacilityLocationsFromJSON(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	loc, ok := locations["兼六園 石川県"]
	if !ok {
		t.Fatal("Expected fixture entry for 兼六園")
	}
	if loc.Lat != 36.5613 || loc.Name != "兼六園" {
		t.Errorf("Unexpected location: %+v", loc)
	}

	if _, err := ReadFacilityLocationsFromJSON("/nonexistent.json"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestReadTripStateFromJSON(t *testing.T) {
	fixture := `{
	  "wishlist": [
	    {"facility": {"prefecture": "石川県", "name": "兼六園"}, "location": {"lat": 36.5613, "lng": 136.6562}},
	    {"facility": {"prefecture": "福井県", "name": "東尋坊"}, "location": {"lat": 36.2378, "lng": 136.1254}}
	  ],
	  "segmentModes": ["WALKING"]
	}`
	path := filepath.Join(t.TempDir(), "trip_state.json")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := ReadTripStateFromJSON(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(state.Wishlist) != 2 {
		t.Fatalf("Expected 2 wishlist entries, got %d", len(state.Wishlist))
	}
	if state.Wishlist[0].Facility.Key() != "石川県/兼六園" {
		t.Errorf("Unexpected first entry: %+v", state.Wishlist[0])
	}
	if len(state.SegmentModes) != 1 || state.SegmentModes[0] != models.ModeWalking {
		t.Errorf("Unexpected segment modes: %v", state.SegmentModes)
	}
}
