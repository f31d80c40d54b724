package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"trip-server/models"
	"trip-server/wishlist"
)

// PlotRoute renders the ordered trip stops as a geo scatter chart and
// writes the HTML page to w. Point labels carry the itinerary letter of
// each stop.
func PlotRoute(entries []models.WishlistEntry, w io.Writer) error {
	points := make([]opts.GeoData, 0, len(entries))
	for i, entry := range entries {
		points = append(points, opts.GeoData{
			Name:  wishlist.IndexToLabel(i) + ": " + entry.Facility.Name,
			Value: []float64{entry.Location.Lng, entry.Location.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Trip Route Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Route", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return geo.Render(w)
}
