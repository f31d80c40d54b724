package models

// LatLng is a bare coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a resolved facility position with optional place metadata.
// PhotoURL is sized for marker icons, PhotoURLLarge for cards.
type Location struct {
	LatLng
	Name          string `json:"name,omitempty"`
	PhotoURL      string `json:"photoUrl,omitempty"`
	PhotoURLLarge string `json:"photoUrlLarge,omitempty"`
	Address       string `json:"address,omitempty"`
}
