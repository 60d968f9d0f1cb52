package models

// TripFilter represents query parameters for the pickup map view.
// The widget range is enforced at the binding boundary; the transform
// layer itself does not re-validate.
type TripFilter struct {
	Miles int `form:"miles" binding:"omitempty,min=1,max=25"` // Trip length target, miles
}

// IncomeFilter represents query parameters for the income bar chart.
type IncomeFilter struct {
	Diabetic string `form:"diabetic"` // "true"/"false", also accepts "True"/"False"
}

// BMIFilter represents query parameters for the BMI density view.
type BMIFilter struct {
	MaxBMI int `form:"maxBmi" binding:"omitempty,min=1,max=100"` // Inclusive ceiling
}

// HealthFilter represents query parameters for the general-health treemap.
type HealthFilter struct {
	Diabetic string `form:"diabetic"` // "true"/"false", also accepts "True"/"False"
}
