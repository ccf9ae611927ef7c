package dto

import (
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/yukikurage/timeclock-api/internal/models"
)

// ToLocationFeatureCollection renders locations as GeoJSON points. GeoJSON
// coordinates are [longitude, latitude].
func ToLocationFeatureCollection(locations []models.Location) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(locations)),
	}
	for _, location := range locations {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.FormatUint(location.ID, 10),
			Geometry: geom.NewPointFlat(geom.XY, []float64{location.Longitude, location.Latitude}),
			Properties: map[string]interface{}{
				"name":   location.Name,
				"radius": location.Radius,
			},
		})
	}
	return fc
}
