// Package database manages the in-memory SQLite store the loaded
// datasets are mirrored into. The store lives for the process lifetime
// and has no writers after the initial ingest.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

// Config holds database configuration.
type Config struct {
	DSN string // ":memory:" in normal operation
}

// Open opens a SQLite database at dsn and creates the dashboard schema.
// Exposed separately from Init so tests can use their own instance.
func Open(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}

	// An in-memory database exists per connection, so the pool must not
	// grow beyond the connection that holds the data.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", dsn, err)
	}

	if err := createSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// Init initializes the shared database instance.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		db, err = Open(cfg.DSN)
		if err != nil {
			return
		}
		log.Printf("Database initialized: %s", cfg.DSN)
	})
	return err
}

// GetDB returns the shared database instance.
func GetDB() *sql.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the shared database instance.
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// Transaction executes fn within a transaction, used for bulk ingest.
func Transaction(conn *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func createSchema(conn *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS taxi_trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pickup_latitude REAL NOT NULL,
			pickup_longitude REAL NOT NULL,
			trip_miles REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS diabetes_survey (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			diabetes INTEGER NOT NULL,
			income_code INTEGER NOT NULL,
			gen_health_code INTEGER NOT NULL,
			bmi REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_miles ON taxi_trips(trip_miles)`,
		`CREATE INDEX IF NOT EXISTS idx_survey_diabetes ON diabetes_survey(diabetes)`,
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
