package repository

import (
	"database/sql"
	"fmt"

	"github.com/bdanielcs/dashboard-backend-go/internal/database"
	"github.com/bdanielcs/dashboard-backend-go/internal/models"
)

// TripRepository handles database operations for taxi trips.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// BulkInsert ingests the loaded trip table in a single transaction.
func (r *TripRepository) BulkInsert(trips []models.TripRecord) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO taxi_trips
			(pickup_latitude, pickup_longitude, trip_miles) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare trip insert: %w", err)
		}
		defer stmt.Close()

		for _, t := range trips {
			if _, err := stmt.Exec(t.PickupLatitude, t.PickupLongitude, t.TripMiles); err != nil {
				return fmt.Errorf("insert trip: %w", err)
			}
		}
		return nil
	})
}

// All retrieves every trip in insertion order.
func (r *TripRepository) All() ([]models.TripRecord, error) {
	rows, err := r.db.Query(`SELECT pickup_latitude, pickup_longitude, trip_miles
		FROM taxi_trips ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.TripRecord
	for rows.Next() {
		var t models.TripRecord
		if err := rows.Scan(&t.PickupLatitude, &t.PickupLongitude, &t.TripMiles); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

// Count returns the number of ingested trips.
func (r *TripRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM taxi_trips`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count trips: %w", err)
	}
	return total, nil
}
