// Package transform contains the pure data transformations behind the
// four dashboard views. Every function computes a fresh result from its
// inputs; the shared loaded tables are never mutated.
package transform

import (
	"github.com/bdanielcs/dashboard-backend-go/internal/models"
)

// FilterTripsByDistance selects trips whose distance lies in the
// inclusive window [targetMiles-1, targetMiles]. The result is a new
// slice. No bounds validation happens here: an out-of-contract target
// simply matches no rows.
func FilterTripsByDistance(trips []models.TripRecord, targetMiles float64) []models.TripRecord {
	selected := make([]models.TripRecord, 0)
	for _, t := range trips {
		if t.TripMiles >= targetMiles-1 && t.TripMiles <= targetMiles {
			selected = append(selected, t)
		}
	}
	return selected
}

// PickupPoints projects trips onto their (lat, lon) pickup coordinates
// for map rendering.
func PickupPoints(trips []models.TripRecord) []models.PickupPoint {
	points := make([]models.PickupPoint, 0, len(trips))
	for _, t := range trips {
		points = append(points, models.PickupPoint{
			Lat: t.PickupLatitude,
			Lon: t.PickupLongitude,
		})
	}
	return points
}
