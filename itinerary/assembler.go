package itinerary

import (
	"strings"

	"trip-server/models"
	"trip-server/route"
	"trip-server/wishlist"
)

const facilitiesPerPage = 4

// TravelTime is the time to reach a stop from the previous one.
type TravelTime struct {
	Minutes int    `json:"minutes"`
	Text    string `json:"text"`
}

// ItineraryFacility is one stop of the rendered itinerary.
type ItineraryFacility struct {
	Index      int           `json:"index"`
	Label      string        `json:"label"`
	Name       string        `json:"name"`
	Prefecture string        `json:"prefecture"`
	Category   string        `json:"category"`
	PhotoURL   string        `json:"photoUrl,omitempty"`
	Address    string        `json:"address,omitempty"`
	Location   models.LatLng `json:"location"`
	TravelTime *TravelTime   `json:"travelTime,omitempty"`
}

// Itinerary is the full assembled view of a trip.
type Itinerary struct {
	Facilities []ItineraryFacility   `json:"facilities"`
	Pages      [][]ItineraryFacility `json:"pages"`
	Route      *models.RouteInfo     `json:"route,omitempty"`
}

type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"寺", "神社", "宮"}, "寺院・神社"},
	{[]string{"公園", "庭園", "園"}, "公園・庭園"},
	{[]string{"博物館", "美術館"}, "博物館・美術館"},
	{[]string{"温泉", "湯"}, "温泉"},
	{[]string{"市場", "商店街"}, "市場・商店街"},
}

// guessCategory buckets a facility by name keywords.
func guessCategory(name string) string {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}
	return "観光スポット"
}

// Assemble builds the itinerary view from wishlist entries and the
// computed route legs. legs may be nil when no route was computed; the
// first stop never carries a travel time.
func Assemble(entries []models.WishlistEntry, legs []models.Leg) *Itinerary {
	facilities := make([]ItineraryFacility, 0, len(entries))
	for i, entry := range entries {
		facility := ItineraryFacility{
			Index:      i,
			Label:      wishlist.IndexToLabel(i),
			Name:       entry.Facility.Name,
			Prefecture: entry.Facility.Prefecture,
			Category:   guessCategory(entry.Facility.Name),
			PhotoURL:   entry.Location.PhotoURL,
			Address:    entry.Location.Address,
			Location:   entry.Location.LatLng,
		}
		if i > 0 && i-1 < len(legs) {
			minutes := int(legs[i-1].Duration.Seconds) / 60
			facility.TravelTime = &TravelTime{
				Minutes: minutes,
				Text:    route.FormatDurationMinutes(minutes),
			}
		}
		facilities = append(facilities, facility)
	}

	it := &Itinerary{
		Facilities: facilities,
		Pages:      paginate(facilities),
	}
	if len(legs) > 0 {
		it.Route = &models.RouteInfo{Legs: legs}
	}
	return it
}

func paginate(facilities []ItineraryFacility) [][]ItineraryFacility {
	pages := make([][]ItineraryFacility, 0)
	for start := 0; start < len(facilities); start += facilitiesPerPage {
		end := start + facilitiesPerPage
		if end > len(facilities) {
			end = len(facilities)
		}
		pages = append(pages, facilities[start:end])
	}
	return pages
}
