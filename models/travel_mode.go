package models

// TravelMode is the per-segment transport selection.
type TravelMode string

const (
	ModeDriving   TravelMode = "DRIVING"
	ModeTransit   TravelMode = "TRANSIT"
	ModeWalking   TravelMode = "WALKING"
	ModeBicycling TravelMode = "BICYCLING"
)

// DefaultTravelMode is assigned to new or ambiguous segments.
const DefaultTravelMode = ModeDriving

// Valid reports whether m is one of the four known modes.
func (m TravelMode) Valid() bool {
	switch m {
	case ModeDriving, ModeTransit, ModeWalking, ModeBicycling:
		return true
	}
	return false
}

// ParseTravelMode normalizes a wire value, falling back to DRIVING for
// anything unknown.
func ParseTravelMode(s string) TravelMode {
	m := TravelMode(s)
	if !m.Valid() {
		return DefaultTravelMode
	}
	return m
}
