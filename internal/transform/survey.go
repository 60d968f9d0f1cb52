package transform

import (
	"fmt"
	"sort"

	"github.com/bdanielcs/dashboard-backend-go/internal/codemap"
	"github.com/bdanielcs/dashboard-backend-go/internal/models"
)

// AggregateIncome partitions the survey by the diabetes indicator,
// selects the partition matching diabetic, groups it by income code and
// counts members, then recodes each code to its income bracket. Income
// codes absent from the partition produce no row; zero counts are never
// synthesized. Row order is unspecified, callers sort as needed.
//
// An income code outside the CodeMap's domain fails the whole
// aggregation: the map is expected to be exhaustive over the data.
func AggregateIncome(survey []models.SurveyRecord, diabetic bool) ([]models.AggregateRow, error) {
	counts := make(map[int]int)
	for _, rec := range survey {
		if rec.Diabetes == diabetic {
			counts[rec.IncomeCode]++
		}
	}

	rows := make([]models.AggregateRow, 0, len(counts))
	for code, n := range counts {
		bracket, err := codemap.Income.Lookup(code)
		if err != nil {
			return nil, fmt.Errorf("aggregate income: %w", err)
		}
		rows = append(rows, models.AggregateRow{
			IncomeCode:    code,
			IncomeBracket: bracket,
			Diabetic:      diabetic,
			Count:         n,
		})
	}

	return rows, nil
}

// PrepareBMI is a pure relabeling pass: every respondent gets a
// diabetic-status label next to their BMI. No filtering happens here.
func PrepareBMI(survey []models.SurveyRecord) []models.BMIRow {
	rows := make([]models.BMIRow, 0, len(survey))
	for _, rec := range survey {
		rows = append(rows, models.BMIRow{
			BMI:    rec.BMI,
			Status: codemap.DiabeticStatus(rec.Diabetes),
		})
	}
	return rows
}

// FilterBMI keeps rows with bmi <= ceiling. The bound is inclusive: a
// row at exactly the ceiling is retained.
func FilterBMI(rows []models.BMIRow, ceiling float64) []models.BMIRow {
	kept := make([]models.BMIRow, 0, len(rows))
	for _, row := range rows {
		if row.BMI <= ceiling {
			kept = append(kept, row)
		}
	}
	return kept
}

// RecodeGeneralHealth relabels every respondent with a general-health
// display string and a diabetic-status string, then returns only the
// partition matching diabetic. Recoding runs over the full table before
// partitioning, so an out-of-domain health code anywhere in the data is
// a hard failure even when the offending row falls outside the selected
// partition.
func RecodeGeneralHealth(survey []models.SurveyRecord, diabetic bool) ([]models.HealthRecord, error) {
	selected := make([]models.HealthRecord, 0)
	for _, rec := range survey {
		health, err := codemap.GeneralHealth.Lookup(rec.GenHealthCode)
		if err != nil {
			return nil, fmt.Errorf("recode general health: %w", err)
		}
		if rec.Diabetes != diabetic {
			continue
		}
		selected = append(selected, models.HealthRecord{
			Status:        codemap.DiabeticStatus(rec.Diabetes),
			GeneralHealth: health,
		})
	}
	return selected, nil
}

// BuildHealthTree folds labeled health records into the treemap
// hierarchy: root → diabetic status → general-health rating. Status
// children are ordered by name, rating children by descending count.
func BuildHealthTree(records []models.HealthRecord) models.HealthNode {
	byStatus := make(map[string]map[string]int)
	for _, rec := range records {
		if byStatus[rec.Status] == nil {
			byStatus[rec.Status] = make(map[string]int)
		}
		byStatus[rec.Status][rec.GeneralHealth]++
	}

	root := models.HealthNode{Name: "all", Count: len(records)}

	statuses := make([]string, 0, len(byStatus))
	for status := range byStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	for _, status := range statuses {
		ratings := byStatus[status]
		node := models.HealthNode{Name: status}
		for rating, n := range ratings {
			node.Count += n
			node.Children = append(node.Children, models.HealthNode{Name: rating, Count: n})
		}
		sort.Slice(node.Children, func(i, j int) bool {
			if node.Children[i].Count != node.Children[j].Count {
				return node.Children[i].Count > node.Children[j].Count
			}
			return node.Children[i].Name < node.Children[j].Name
		})
		root.Children = append(root.Children, node)
	}

	return root
}
