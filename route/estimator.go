package route

import (
	"fmt"
	"math"

	"trip-server/models"
)

// earthRadiusMeters is the mean Earth radius used by the haversine
// great-circle distance.
const earthRadiusMeters = 6371000

// Assumed travel speeds (km/h) for the offline duration estimate.
var modeSpeeds = map[models.TravelMode]float64{
	models.ModeDriving:   50,
	models.ModeTransit:   30,
	models.ModeWalking:   4,
	models.ModeBicycling: 15,
}

const defaultSpeedKmh = 50

// Haversine computes the great-circle distance between two points.
func Haversine(p1, p2 models.LatLng) models.Distance {
	lat1 := p1.Lat * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	deltaLat := (p2.Lat - p1.Lat) * math.Pi / 180
	deltaLng := (p2.Lng - p1.Lng) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	meters := earthRadiusMeters * c

	return models.Distance{Meters: meters, Text: FormatDistance(meters)}
}

// EstimateDuration converts a distance into an estimated travel time
// for the given mode. Unknown modes use the driving speed.
func EstimateDuration(distance models.Distance, mode models.TravelMode) models.Duration {
	speed, ok := modeSpeeds[mode]
	if !ok {
		speed = defaultSpeedKmh
	}
	hours := distance.Meters / 1000 / speed
	minutes := int(math.Round(hours * 60))

	return models.Duration{
		Seconds: minutes * 60,
		Text:    FormatDurationMinutes(minutes),
	}
}

// FormatDistance renders meters below 1km, kilometers to one decimal
// above it.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1fkm", meters/1000)
}

// FormatDurationMinutes renders plain minutes below an hour, otherwise
// hours plus remainder minutes.
func FormatDurationMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d分", minutes)
	}
	return fmt.Sprintf("%d時間%d分", minutes/60, minutes%60)
}
