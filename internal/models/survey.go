package models

// SurveyRecord represents one respondent of the CDC BRFSS 2015 diabetes
// health-indicators survey. Categorical fields keep their raw numeric
// codes; recoding to display labels happens in the transform layer.
type SurveyRecord struct {
	Diabetes      bool    `json:"diabetes" db:"diabetes"`
	IncomeCode    int     `json:"incomeCode" db:"income_code"`
	GenHealthCode int     `json:"genHealthCode" db:"gen_health_code"`
	BMI           float64 `json:"bmi" db:"bmi"`
}

// AggregateRow is one grouped count of survey respondents by income
// bracket and diabetes status. Recomputed per interaction, never stored.
type AggregateRow struct {
	IncomeCode    int    `json:"incomeCode"`
	IncomeBracket string `json:"incomeBracket"`
	Diabetic      bool   `json:"diabetic"`
	Count         int    `json:"count"`
}

// BMIRow pairs a BMI measurement with its diabetic-status label for
// density-plot rendering.
type BMIRow struct {
	BMI    float64 `json:"bmi"`
	Status string  `json:"status"`
}

// BMISummary holds descriptive statistics for one diabetic-status group
// of the BMI view.
type BMISummary struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// BMIResponse is the payload for the BMI density view.
type BMIResponse struct {
	Rows      []BMIRow     `json:"rows"`
	Summaries []BMISummary `json:"summaries"`
	MaxBMI    int          `json:"maxBmi"`
}

// HealthRecord is one survey respondent with both qualitative labels
// applied: general-health rating and diabetic status.
type HealthRecord struct {
	Status        string `json:"status"`
	GeneralHealth string `json:"generalHealth"`
}

// HealthNode is one node of the general-health treemap hierarchy:
// root → diabetic status → health rating, each carrying a count.
type HealthNode struct {
	Name     string       `json:"name"`
	Count    int          `json:"count"`
	Children []HealthNode `json:"children,omitempty"`
}
