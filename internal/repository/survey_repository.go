package repository

import (
	"database/sql"
	"fmt"

	"github.com/bdanielcs/dashboard-backend-go/internal/database"
	"github.com/bdanielcs/dashboard-backend-go/internal/models"
)

// SurveyRepository handles database operations for survey respondents.
type SurveyRepository struct {
	db *sql.DB
}

// NewSurveyRepository creates a new survey repository.
func NewSurveyRepository(db *sql.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// BulkInsert ingests the loaded survey table in a single transaction.
func (r *SurveyRepository) BulkInsert(survey []models.SurveyRecord) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO diabetes_survey
			(diabetes, income_code, gen_health_code, bmi) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare survey insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range survey {
			diabetes := 0
			if rec.Diabetes {
				diabetes = 1
			}
			if _, err := stmt.Exec(diabetes, rec.IncomeCode, rec.GenHealthCode, rec.BMI); err != nil {
				return fmt.Errorf("insert survey record: %w", err)
			}
		}
		return nil
	})
}

// All retrieves every survey respondent in insertion order.
func (r *SurveyRepository) All() ([]models.SurveyRecord, error) {
	rows, err := r.db.Query(`SELECT diabetes, income_code, gen_health_code, bmi
		FROM diabetes_survey ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query survey: %w", err)
	}
	defer rows.Close()

	var survey []models.SurveyRecord
	for rows.Next() {
		var rec models.SurveyRecord
		var diabetes int
		if err := rows.Scan(&diabetes, &rec.IncomeCode, &rec.GenHealthCode, &rec.BMI); err != nil {
			return nil, fmt.Errorf("scan survey record: %w", err)
		}
		rec.Diabetes = diabetes != 0
		survey = append(survey, rec)
	}

	return survey, rows.Err()
}

// CountByDiabetes returns respondent counts per diabetes indicator,
// used to sanity-log the ingest and by the liveness payload.
func (r *SurveyRepository) CountByDiabetes() (map[bool]int64, error) {
	rows, err := r.db.Query(`SELECT diabetes, COUNT(*)
		FROM diabetes_survey GROUP BY diabetes`)
	if err != nil {
		return nil, fmt.Errorf("count survey by diabetes: %w", err)
	}
	defer rows.Close()

	counts := make(map[bool]int64, 2)
	for rows.Next() {
		var diabetes int
		var n int64
		if err := rows.Scan(&diabetes, &n); err != nil {
			return nil, fmt.Errorf("scan survey count: %w", err)
		}
		counts[diabetes != 0] = n
	}

	return counts, rows.Err()
}
