package geo

import (
	"context"
	"errors"
	"testing"

	"trip-server/models"
)

// countingFinder records calls and can be told to fail.
type countingFinder struct {
	calls int
	fail  bool
}

func (f *countingFinder) FindPlaceFromQuery(ctx context.Context, query string) (models.Location, error) {
	f.calls++
	if f.fail {
		return models.Location{}, errors.New("ZERO_RESULTS")
	}
	return models.Location{
		LatLng: models.LatLng{Lat: 36.5613, Lng: 136.6562},
		Name:   query,
	}, nil
}

func TestResolver_Resolve_CachesPerIdentityKey(t *testing.T) {
	finder := &countingFinder{}
	resolver := NewResolver(finder)

	first := resolver.Resolve(context.Background(), "兼六園", "石川県")
	second := resolver.Resolve(context.Background(), "兼六園", "石川県")

	if finder.calls != 1 {
		t.Errorf("Expected exactly one provider call, got %d", finder.calls)
	}
	if first != second {
		t.Errorf("Expected cached location to be returned verbatim")
	}
}

func TestResolver_Resolve_FallsBackToPrefectureCentroid(t *testing.T) {
	resolver := NewResolver(&countingFinder{fail: true})

	location := resolver.Resolve(context.Background(), "謎の施設", "福井県")

	expected := PrefectureCenter("福井県")
	if location.LatLng != expected {
		t.Errorf("Expected prefecture centroid %+v, got %+v", expected, location.LatLng)
	}
	if location.Address != "謎の施設 福井県" {
		t.Errorf("Expected synthesized address, got %q", location.Address)
	}
	if location.PhotoURL != "" {
		t.Errorf("Fallback location should have no photo, got %q", location.PhotoURL)
	}
}

func TestResolver_Resolve_NilFinderUsesFallback(t *testing.T) {
	resolver := NewResolver(nil)
	location := resolver.Resolve(context.Background(), "兼六園", "石川県")
	if location.LatLng != PrefectureCenter("石川県") {
		t.Errorf("Expected centroid for nil finder, got %+v", location.LatLng)
	}
}

func TestPrefectureCenter_UnknownPrefecture(t *testing.T) {
	if got := PrefectureCenter("架空県"); got != japanCenter {
		t.Errorf("Expected Japan center for unknown prefecture, got %+v", got)
	}
}
