package transform

import (
	"errors"
	"testing"

	"github.com/bdanielcs/dashboard-backend-go/internal/codemap"
	"github.com/bdanielcs/dashboard-backend-go/internal/models"
)

func surveyFixture() []models.SurveyRecord {
	return []models.SurveyRecord{
		{Diabetes: true, IncomeCode: 3, GenHealthCode: 2, BMI: 31.5},
		{Diabetes: false, IncomeCode: 3, GenHealthCode: 4, BMI: 24.0},
		{Diabetes: true, IncomeCode: 3, GenHealthCode: 2, BMI: 40.0},
	}
}

func TestAggregateIncomeScenario(t *testing.T) {
	survey := surveyFixture()

	diabetic, err := AggregateIncome(survey, true)
	if err != nil {
		t.Fatalf("AggregateIncome(true) returned error: %v", err)
	}
	if len(diabetic) != 1 {
		t.Fatalf("AggregateIncome(true) returned %d rows, want 1", len(diabetic))
	}
	if diabetic[0].IncomeBracket != "$15,000 - $20,000" || diabetic[0].Count != 2 {
		t.Errorf("diabetic row = (%q, %d), want (%q, 2)",
			diabetic[0].IncomeBracket, diabetic[0].Count, "$15,000 - $20,000")
	}
	if !diabetic[0].Diabetic {
		t.Error("diabetic row carries Diabetic=false")
	}

	nonDiabetic, err := AggregateIncome(survey, false)
	if err != nil {
		t.Fatalf("AggregateIncome(false) returned error: %v", err)
	}
	if len(nonDiabetic) != 1 {
		t.Fatalf("AggregateIncome(false) returned %d rows, want 1", len(nonDiabetic))
	}
	if nonDiabetic[0].IncomeBracket != "$15,000 - $20,000" || nonDiabetic[0].Count != 1 {
		t.Errorf("non-diabetic row = (%q, %d), want (%q, 1)",
			nonDiabetic[0].IncomeBracket, nonDiabetic[0].Count, "$15,000 - $20,000")
	}
}

func TestAggregateIncomePartitionExhaustive(t *testing.T) {
	survey := []models.SurveyRecord{
		{Diabetes: true, IncomeCode: 1},
		{Diabetes: true, IncomeCode: 5},
		{Diabetes: false, IncomeCode: 5},
		{Diabetes: false, IncomeCode: 8},
		{Diabetes: false, IncomeCode: 77},
		{Diabetes: true, IncomeCode: 99},
	}

	var total int
	for _, diabetic := range []bool{true, false} {
		rows, err := AggregateIncome(survey, diabetic)
		if err != nil {
			t.Fatalf("AggregateIncome(%t) returned error: %v", diabetic, err)
		}
		for _, row := range rows {
			total += row.Count
		}
	}

	// The two partitions are disjoint and together account for every
	// record
	if total != len(survey) {
		t.Errorf("partition counts sum to %d, want %d", total, len(survey))
	}
}

func TestAggregateIncomeNoZeroSynthesis(t *testing.T) {
	survey := []models.SurveyRecord{
		{Diabetes: true, IncomeCode: 2},
	}

	rows, err := AggregateIncome(survey, true)
	if err != nil {
		t.Fatalf("AggregateIncome returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1 (absent codes must not produce rows)", len(rows))
	}
}

func TestAggregateIncomeUnknownCode(t *testing.T) {
	survey := []models.SurveyRecord{
		{Diabetes: true, IncomeCode: 98},
		{Diabetes: true, IncomeCode: 1},
	}

	_, err := AggregateIncome(survey, true)
	if err == nil {
		t.Fatal("AggregateIncome accepted income code 98, want hard failure")
	}
	if !errors.Is(err, codemap.ErrUnknownCode) {
		t.Errorf("error = %v, want ErrUnknownCode", err)
	}

	// The unknown code sits in the non-selected partition, so grouping
	// never touches it
	if _, err := AggregateIncome(survey, false); err != nil {
		t.Errorf("AggregateIncome(false) returned error for code outside selection: %v", err)
	}
}

func TestPrepareBMI(t *testing.T) {
	rows := PrepareBMI(surveyFixture())

	if len(rows) != 3 {
		t.Fatalf("PrepareBMI returned %d rows, want 3 (no filtering)", len(rows))
	}
	want := []string{"Diabetic", "Non-Diabetic", "Diabetic"}
	for i, status := range want {
		if rows[i].Status != status {
			t.Errorf("rows[%d].Status = %q, want %q", i, rows[i].Status, status)
		}
	}
}

func TestFilterBMIInclusiveCeiling(t *testing.T) {
	rows := []models.BMIRow{
		{BMI: 29, Status: "Diabetic"},
		{BMI: 30, Status: "Diabetic"},
		{BMI: 31, Status: "Non-Diabetic"},
	}

	kept := FilterBMI(rows, 30)
	if len(kept) != 2 {
		t.Fatalf("FilterBMI(30) kept %d rows, want 2", len(kept))
	}
	for _, row := range kept {
		if row.BMI > 30 {
			t.Errorf("row with BMI %.0f above the ceiling was retained", row.BMI)
		}
	}
}

func TestRecodeGeneralHealth(t *testing.T) {
	records, err := RecodeGeneralHealth(surveyFixture(), true)
	if err != nil {
		t.Fatalf("RecodeGeneralHealth returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Status != "Diabetic" {
			t.Errorf("record status = %q, want Diabetic", rec.Status)
		}
		if rec.GeneralHealth != "Very Good" {
			t.Errorf("record health = %q, want Very Good", rec.GeneralHealth)
		}
	}
}

func TestRecodeGeneralHealthUnknownCode(t *testing.T) {
	survey := []models.SurveyRecord{
		{Diabetes: false, GenHealthCode: 8},
		{Diabetes: true, GenHealthCode: 1},
	}

	// Recoding runs before partitioning, so the bad code fails both
	// selections
	for _, diabetic := range []bool{true, false} {
		_, err := RecodeGeneralHealth(survey, diabetic)
		if err == nil {
			t.Fatalf("RecodeGeneralHealth(%t) accepted health code 8", diabetic)
		}
		if !errors.Is(err, codemap.ErrUnknownCode) {
			t.Errorf("error = %v, want ErrUnknownCode", err)
		}
	}
}

func TestBuildHealthTree(t *testing.T) {
	records := []models.HealthRecord{
		{Status: "Diabetic", GeneralHealth: "Good"},
		{Status: "Diabetic", GeneralHealth: "Good"},
		{Status: "Diabetic", GeneralHealth: "Poor"},
		{Status: "Non-Diabetic", GeneralHealth: "Excellent"},
	}

	root := BuildHealthTree(records)

	if root.Name != "all" || root.Count != 4 {
		t.Fatalf("root = (%q, %d), want (all, 4)", root.Name, root.Count)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}

	diabetic := root.Children[0]
	if diabetic.Name != "Diabetic" || diabetic.Count != 3 {
		t.Fatalf("first child = (%q, %d), want (Diabetic, 3)", diabetic.Name, diabetic.Count)
	}
	// Rating children ordered by descending count
	if diabetic.Children[0].Name != "Good" || diabetic.Children[0].Count != 2 {
		t.Errorf("top rating = (%q, %d), want (Good, 2)",
			diabetic.Children[0].Name, diabetic.Children[0].Count)
	}
}

func TestBuildHealthTreeEmpty(t *testing.T) {
	root := BuildHealthTree(nil)
	if root.Count != 0 || len(root.Children) != 0 {
		t.Errorf("empty tree = %+v, want bare root", root)
	}
}
