package models

// Distance pairs a metric value with its display text ("850m", "12.4km").
type Distance struct {
	Meters float64 `json:"value"`
	Text   string  `json:"text"`
}

// Duration pairs seconds with display text ("45分", "8時間9分").
type Duration struct {
	Seconds int    `json:"value"`
	Text    string `json:"text"`
}

// Leg is the directed hop between two consecutive wishlist entries.
type Leg struct {
	StartLocation LatLng   `json:"startLocation"`
	EndLocation   LatLng   `json:"endLocation"`
	Distance      Distance `json:"distance"`
	Duration      Duration `json:"duration"`
}

// RouteInfo is the computed route over the current wishlist ordering.
// Legs align 1:1 with segment indices.
type RouteInfo struct {
	Legs []Leg `json:"legs"`
}
