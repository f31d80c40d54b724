package models

// WishlistEntry is one chosen stop: a facility plus its resolved
// location. Position is implicit in slice order.
type WishlistEntry struct {
	Facility Facility `json:"facility"`
	Location Location `json:"location"`
}

// PlacedFacility is the payload stored in the facility geo index.
type PlacedFacility struct {
	Facility Facility `json:"facility"`
	Location Location `json:"location"`
}

// TripState is the per-session serialized shape: the ordered wishlist
// and the segment travel modes. It round-trips losslessly through the
// persistence layer.
type TripState struct {
	Wishlist     []WishlistEntry `json:"wishlist"`
	SegmentModes []TravelMode    `json:"segmentModes"`
}
