package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port            string
	TaxiCSVPath     string
	DiabetesCSVPath string
	DBDSN           string
	CacheTTL        time.Duration
}

// Load reads configuration from the environment, consulting a local
// .env file when present.
func Load() *Config {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", ":8080"),
		TaxiCSVPath:     getEnv("TAXI_CSV_PATH", "./data/taxi_sample.csv"),
		DiabetesCSVPath: getEnv("DIABETES_CSV_PATH", "./data/diabetes_binary_health_indicators_BRFSS2015.csv"),
		DBDSN:           getEnv("DB_DSN", ":memory:"),
		CacheTTL:        getDuration("CACHE_TTL", 10*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
