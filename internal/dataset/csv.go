package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bdanielcs/dashboard-backend-go/internal/models"
)

// Column names are an external contract with the data providers (Chicago
// taxi export, CDC BRFSS 2015 export) and are not re-derived here.
const (
	colPickupLat = "Pickup_Centroid_Latitude"
	colPickupLon = "Pickup_Centroid_Longitude"
	colTripMiles = "Trip Miles"

	colDiabetes  = "Diabetes_binary"
	colIncome    = "Income"
	colGenHealth = "GenHlth"
	colBMI       = "BMI"
)

// ReadTrips parses the taxi-trip CSV. Rows lacking a parseable pickup
// latitude or longitude are dropped, not reported; a missing file or
// missing required column is an error.
func ReadTrips(path string) ([]models.TripRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	cols, err := columnIndexes(header, colPickupLat, colPickupLon, colTripMiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var trips []models.TripRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		lat, latErr := parseFloat(row, cols[colPickupLat])
		lon, lonErr := parseFloat(row, cols[colPickupLon])
		if latErr != nil || lonErr != nil {
			continue // missing geolocation, drop permanently
		}

		miles, err := parseFloat(row, cols[colTripMiles])
		if err != nil {
			continue
		}

		trips = append(trips, models.TripRecord{
			PickupLatitude:  lat,
			PickupLongitude: lon,
			TripMiles:       miles,
		})
	}

	return trips, nil
}

// ReadSurvey parses the diabetes-survey CSV. No row filtering is applied
// beyond skipping rows whose required fields do not parse.
func ReadSurvey(path string) ([]models.SurveyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	cols, err := columnIndexes(header, colDiabetes, colIncome, colGenHealth, colBMI)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var survey []models.SurveyRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		diabetes, dErr := parseFloat(row, cols[colDiabetes])
		income, iErr := parseFloat(row, cols[colIncome])
		genHealth, gErr := parseFloat(row, cols[colGenHealth])
		bmi, bErr := parseFloat(row, cols[colBMI])
		if dErr != nil || iErr != nil || gErr != nil || bErr != nil {
			continue
		}

		survey = append(survey, models.SurveyRecord{
			Diabetes:      diabetes != 0,
			IncomeCode:    int(income),
			GenHealthCode: int(genHealth),
			BMI:           bmi,
		})
	}

	return survey, nil
}

// columnIndexes resolves each required column name to its position in the
// header, reporting the first missing column by name.
func columnIndexes(header []string, required ...string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	cols := make(map[string]int, len(required))
	for _, name := range required {
		idx, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
		cols[name] = idx
	}
	return cols, nil
}

// parseFloat reads one numeric cell. The BRFSS export stores integer
// codes as floats ("4.0"), so everything goes through ParseFloat.
func parseFloat(row []string, idx int) (float64, error) {
	if idx >= len(row) {
		return 0, fmt.Errorf("row too short for column %d", idx)
	}
	value := strings.TrimSpace(row[idx])
	if value == "" {
		return 0, fmt.Errorf("empty value in column %d", idx)
	}
	return strconv.ParseFloat(value, 64)
}
