package service

import (
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/bdanielcs/dashboard-backend-go/internal/models"
	"github.com/bdanielcs/dashboard-backend-go/internal/repository"
	"github.com/bdanielcs/dashboard-backend-go/internal/spatial"
	"github.com/bdanielcs/dashboard-backend-go/internal/transform"
)

// TripService serves the pickup map view. It loads the trip table once
// from the store at construction and treats it as read-only afterwards;
// per-parameter results are memoized because identical inputs always
// produce identical outputs.
type TripService struct {
	trips []models.TripRecord
	memo  *cache.Cache
}

// NewTripService creates a trip service backed by the ingested store.
func NewTripService(repo *repository.TripRepository, memo *cache.Cache) (*TripService, error) {
	trips, err := repo.All()
	if err != nil {
		return nil, fmt.Errorf("load trip table: %w", err)
	}
	return &TripService{trips: trips, memo: memo}, nil
}

// Pickups returns the pickup points for trips in the inclusive distance
// window [miles-1, miles], along with the viewport framing them.
func (s *TripService) Pickups(miles int) *models.PickupsResponse {
	key := fmt.Sprintf("pickups:%d", miles)
	if cached, ok := s.memo.Get(key); ok {
		return cached.(*models.PickupsResponse)
	}

	selected := transform.FilterTripsByDistance(s.trips, float64(miles))
	points := transform.PickupPoints(selected)

	resp := &models.PickupsResponse{
		Points:   points,
		Count:    len(points),
		Miles:    miles,
		Viewport: spatial.PickupViewport(points),
	}

	s.memo.Set(key, resp, cache.DefaultExpiration)
	return resp
}

// TripCount reports the size of the loaded trip table.
func (s *TripService) TripCount() int {
	return len(s.trips)
}
