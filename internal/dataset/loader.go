// Package dataset reads the two flat CSV sources into in-memory tables.
// Loading happens once per process; every later consumer shares the same
// immutable tables.
package dataset

import (
	"fmt"
	"log"
	"sync"

	"github.com/bdanielcs/dashboard-backend-go/internal/models"
)

// Tables holds both loaded datasets. After Load returns, nothing writes
// to these slices again.
type Tables struct {
	Trips  []models.TripRecord
	Survey []models.SurveyRecord
}

var (
	tables  *Tables
	loadErr error
	once    sync.Once
)

// Load reads the taxi-trip and diabetes-survey CSVs. The first call does
// the actual reading; subsequent calls return the cached tables without
// touching storage.
func Load(taxiPath, surveyPath string) (*Tables, error) {
	once.Do(func() {
		trips, err := ReadTrips(taxiPath)
		if err != nil {
			loadErr = fmt.Errorf("load taxi trips: %w", err)
			return
		}

		survey, err := ReadSurvey(surveyPath)
		if err != nil {
			loadErr = fmt.Errorf("load diabetes survey: %w", err)
			return
		}

		tables = &Tables{Trips: trips, Survey: survey}
		log.Printf("Datasets loaded: %d trips, %d survey respondents", len(trips), len(survey))
	})

	return tables, loadErr
}
