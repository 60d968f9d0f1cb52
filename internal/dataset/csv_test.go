package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadTripsDropsMissingGeolocation(t *testing.T) {
	path := writeCSV(t, "trips.csv", `Trip ID,Pickup_Centroid_Latitude,Pickup_Centroid_Longitude,Trip Miles
a,41.88,-87.63,3.2
b,,-87.62,5.0
c,41.90,,6.1
d,41.91,-87.66,12.4
`)

	trips, err := ReadTrips(path)
	if err != nil {
		t.Fatalf("ReadTrips returned error: %v", err)
	}

	if len(trips) != 2 {
		t.Fatalf("got %d trips, want 2 (rows without coordinates dropped)", len(trips))
	}
	if trips[0].TripMiles != 3.2 || trips[1].TripMiles != 12.4 {
		t.Errorf("unexpected surviving trips: %+v", trips)
	}
}

func TestReadTripsMissingColumn(t *testing.T) {
	path := writeCSV(t, "trips.csv", `Pickup_Centroid_Latitude,Pickup_Centroid_Longitude
41.88,-87.63
`)

	_, err := ReadTrips(path)
	if err == nil {
		t.Fatal("ReadTrips accepted a file without the Trip Miles column")
	}
	if !strings.Contains(err.Error(), "Trip Miles") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestReadTripsMissingFile(t *testing.T) {
	if _, err := ReadTrips(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("ReadTrips accepted a missing file")
	}
}

func TestReadSurvey(t *testing.T) {
	// BRFSS exports store the numeric codes as floats
	path := writeCSV(t, "survey.csv", `Diabetes_binary,HighBP,BMI,GenHlth,Income
1.0,1.0,31.0,2.0,3.0
0.0,0.0,24.0,4.0,3.0
1.0,1.0,40.0,2.0,3.0
`)

	survey, err := ReadSurvey(path)
	if err != nil {
		t.Fatalf("ReadSurvey returned error: %v", err)
	}

	if len(survey) != 3 {
		t.Fatalf("got %d records, want 3 (no row filtering)", len(survey))
	}

	first := survey[0]
	if !first.Diabetes || first.IncomeCode != 3 || first.GenHealthCode != 2 || first.BMI != 31.0 {
		t.Errorf("first record = %+v", first)
	}
	if survey[1].Diabetes {
		t.Error("second record parsed as diabetic, want non-diabetic")
	}
}

func TestReadSurveyMissingColumn(t *testing.T) {
	path := writeCSV(t, "survey.csv", `Diabetes_binary,BMI,GenHlth
1.0,31.0,2.0
`)

	_, err := ReadSurvey(path)
	if err == nil {
		t.Fatal("ReadSurvey accepted a file without the Income column")
	}
	if !strings.Contains(err.Error(), "Income") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestLoadCachesTables(t *testing.T) {
	trips := writeCSV(t, "trips.csv", `Pickup_Centroid_Latitude,Pickup_Centroid_Longitude,Trip Miles
41.88,-87.63,3.2
`)
	survey := writeCSV(t, "survey.csv", `Diabetes_binary,BMI,GenHlth,Income
1.0,31.0,2.0,3.0
`)

	first, err := Load(trips, survey)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// A second call must return the cached instance without re-reading
	// storage, even when pointed at paths that no longer exist
	second, err := Load(filepath.Join(t.TempDir(), "gone.csv"), survey)
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}
	if first != second {
		t.Error("second Load returned a different instance")
	}
}
