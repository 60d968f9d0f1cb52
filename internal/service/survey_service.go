package service

import (
	"fmt"
	"sort"

	"github.com/patrickmn/go-cache"

	"github.com/bdanielcs/dashboard-backend-go/internal/models"
	"github.com/bdanielcs/dashboard-backend-go/internal/repository"
	"github.com/bdanielcs/dashboard-backend-go/internal/stats"
	"github.com/bdanielcs/dashboard-backend-go/internal/transform"
)

// SurveyService serves the three survey views: income bar chart, BMI
// density plot and general-health treemap. The survey table is loaded
// once at construction and shared read-only across requests.
type SurveyService struct {
	survey []models.SurveyRecord
	memo   *cache.Cache
}

// NewSurveyService creates a survey service backed by the ingested store.
func NewSurveyService(repo *repository.SurveyRepository, memo *cache.Cache) (*SurveyService, error) {
	survey, err := repo.All()
	if err != nil {
		return nil, fmt.Errorf("load survey table: %w", err)
	}
	return &SurveyService{survey: survey, memo: memo}, nil
}

// IncomeDistribution returns the grouped income-bracket counts for the
// selected diabetes partition, ordered by income code for display.
func (s *SurveyService) IncomeDistribution(diabetic bool) ([]models.AggregateRow, error) {
	key := fmt.Sprintf("income:%t", diabetic)
	if cached, ok := s.memo.Get(key); ok {
		return cached.([]models.AggregateRow), nil
	}

	rows, err := transform.AggregateIncome(s.survey, diabetic)
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].IncomeCode < rows[j].IncomeCode })

	s.memo.Set(key, rows, cache.DefaultExpiration)
	return rows, nil
}

// BMIDistribution returns the status-labeled BMI rows at or below the
// ceiling, plus descriptive statistics per diabetic-status group.
func (s *SurveyService) BMIDistribution(maxBMI int) *models.BMIResponse {
	key := fmt.Sprintf("bmi:%d", maxBMI)
	if cached, ok := s.memo.Get(key); ok {
		return cached.(*models.BMIResponse)
	}

	rows := transform.FilterBMI(transform.PrepareBMI(s.survey), float64(maxBMI))

	byStatus := make(map[string][]float64)
	for _, row := range rows {
		byStatus[row.Status] = append(byStatus[row.Status], row.BMI)
	}

	statuses := make([]string, 0, len(byStatus))
	for status := range byStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	summaries := make([]models.BMISummary, 0, len(statuses))
	for _, status := range statuses {
		values := byStatus[status]
		summaries = append(summaries, models.BMISummary{
			Status: status,
			Count:  len(values),
			Mean:   stats.Mean(values),
			Median: stats.Median(values),
			P25:    stats.Quantile(values, 0.25),
			P75:    stats.Quantile(values, 0.75),
			Min:    stats.Min(values),
			Max:    stats.Max(values),
		})
	}

	resp := &models.BMIResponse{Rows: rows, Summaries: summaries, MaxBMI: maxBMI}
	s.memo.Set(key, resp, cache.DefaultExpiration)
	return resp
}

// GeneralHealthTree returns the treemap hierarchy of general-health
// ratings for the selected diabetes partition.
func (s *SurveyService) GeneralHealthTree(diabetic bool) (models.HealthNode, error) {
	key := fmt.Sprintf("health:%t", diabetic)
	if cached, ok := s.memo.Get(key); ok {
		return cached.(models.HealthNode), nil
	}

	records, err := transform.RecodeGeneralHealth(s.survey, diabetic)
	if err != nil {
		return models.HealthNode{}, err
	}

	tree := transform.BuildHealthTree(records)
	s.memo.Set(key, tree, cache.DefaultExpiration)
	return tree, nil
}

// RespondentCount reports the size of the loaded survey table.
func (s *SurveyService) RespondentCount() int {
	return len(s.survey)
}
