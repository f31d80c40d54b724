package wishlist

import (
	"errors"
	"testing"

	"trip-server/models"
)

func facility(prefecture, name string) models.Facility {
	return models.Facility{Prefecture: prefecture, Name: name}
}

func location(lat, lng float64) models.Location {
	return models.Location{LatLng: models.LatLng{Lat: lat, Lng: lng}}
}

func TestWishlist_Add_RejectsDuplicate(t *testing.T) {
	w := New()
	if err := w.Add(facility("石川県", "兼六園"), location(36.56, 136.66)); err != nil {
		t.Fatalf("Expected no error on first add, got %v", err)
	}

	err := w.Add(facility("石川県", "兼六園"), location(36.56, 136.66))
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("Expected ErrDuplicateEntry, got %v", err)
	}
	if w.Len() != 1 {
		t.Errorf("Expected length unchanged at 1, got %d", w.Len())
	}
}

func TestWishlist_Add_SameNameDifferentPrefecture(t *testing.T) {
	w := New()
	_ = w.Add(facility("石川県", "城址公園"), location(36.56, 136.66))
	if err := w.Add(facility("富山県", "城址公園"), location(36.70, 137.21)); err != nil {
		t.Fatalf("Identity is (prefecture, name); expected no error, got %v", err)
	}
	if w.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", w.Len())
	}
}

func TestWishlist_InsertAt_ClampsIndex(t *testing.T) {
	w := New()
	_ = w.Add(facility("石川県", "A"), location(0, 0))
	_ = w.Add(facility("富山県", "B"), location(0, 0))

	if err := w.InsertAt(facility("福井県", "C"), location(0, 0), 99); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := w.InsertAt(facility("新潟県", "D"), location(0, 0), -5); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	keys := w.Keys()
	expected := []string{"新潟県/D", "石川県/A", "富山県/B", "福井県/C"}
	for i, k := range expected {
		if keys[i] != k {
			t.Fatalf("Expected order %v, got %v", expected, keys)
		}
	}
}

func TestWishlist_Remove(t *testing.T) {
	w := New()
	_ = w.Add(facility("石川県", "A"), location(0, 0))
	_ = w.Add(facility("富山県", "B"), location(0, 0))

	if !w.Remove("石川県/A") {
		t.Error("Expected removal of present key to report true")
	}
	if w.Remove("石川県/A") {
		t.Error("Expected removal of absent key to be a no-op")
	}
	if w.Len() != 1 || w.Keys()[0] != "富山県/B" {
		t.Errorf("Unexpected remaining entries: %v", w.Keys())
	}
}

func TestWishlist_Reorder_DropsMissingIgnoresUnknown(t *testing.T) {
	w := New()
	_ = w.Add(facility("石川県", "A"), location(0, 0))
	_ = w.Add(facility("富山県", "B"), location(0, 0))
	_ = w.Add(facility("福井県", "C"), location(0, 0))

	// B omitted (dropped), bogus key ignored, order reversed.
	w.Reorder([]string{"福井県/C", "存在しない/キー", "石川県/A"})

	keys := w.Keys()
	if len(keys) != 2 || keys[0] != "福井県/C" || keys[1] != "石川県/A" {
		t.Errorf("Unexpected order after reorder: %v", keys)
	}
}

func TestWishlist_Clear(t *testing.T) {
	w := New()
	_ = w.Add(facility("石川県", "A"), location(0, 0))
	w.Clear()
	if w.Len() != 0 || w.LegCount() != 0 {
		t.Errorf("Expected empty list after clear, got %d entries", w.Len())
	}
}

func TestWishlist_LegCount(t *testing.T) {
	w := New()
	if w.LegCount() != 0 {
		t.Errorf("Empty list should have 0 legs")
	}
	_ = w.Add(facility("石川県", "A"), location(0, 0))
	if w.LegCount() != 0 {
		t.Errorf("Single entry should have 0 legs")
	}
	_ = w.Add(facility("富山県", "B"), location(0, 0))
	if w.LegCount() != 1 {
		t.Errorf("Two entries should have 1 leg, got %d", w.LegCount())
	}
}

func TestIndexToLabel_BijectiveBase26(t *testing.T) {
	tests := []struct {
		index int
		label string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{217180147157, "ZZZZZZZZ"},  // largest 8-character label
		{217180147158, "AAAAAAAAA"}, // first 9-character label
		{-1, ""},
	}
	for _, test := range tests {
		if got := IndexToLabel(test.index); got != test.label {
			t.Errorf("IndexToLabel(%d) = %q, expected %q", test.index, got, test.label)
		}
	}
}
