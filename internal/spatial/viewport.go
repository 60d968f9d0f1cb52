// Package spatial computes map-framing metadata for pickup selections.
package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/bdanielcs/dashboard-backend-go/internal/models"
)

// Chicago midpoint used when a selection is empty, matching the fixed
// frame of the original dashboard.
const (
	DefaultCenterLat = 41.9
	DefaultCenterLon = -87.2
	DefaultZoom      = 9
)

// PickupViewport returns the bounding rectangle and center of a pickup
// point set. An empty selection falls back to the Chicago midpoint so
// the map still renders a sensible (empty) frame.
func PickupViewport(points []models.PickupPoint) models.MapViewport {
	if len(points) == 0 {
		return models.MapViewport{
			CenterLat: DefaultCenterLat,
			CenterLon: DefaultCenterLon,
			MinLat:    DefaultCenterLat,
			MaxLat:    DefaultCenterLat,
			MinLon:    DefaultCenterLon,
			MaxLon:    DefaultCenterLon,
			Zoom:      DefaultZoom,
		}
	}

	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(points[0].Lat, points[0].Lon))
	for _, p := range points[1:] {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Lat, p.Lon))
	}

	center := rect.Center()
	return models.MapViewport{
		CenterLat: center.Lat.Degrees(),
		CenterLon: center.Lng.Degrees(),
		MinLat:    degrees(rect.Lat.Lo),
		MaxLat:    degrees(rect.Lat.Hi),
		MinLon:    degrees(rect.Lng.Lo),
		MaxLon:    degrees(rect.Lng.Hi),
		Zoom:      DefaultZoom,
	}
}

func degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
