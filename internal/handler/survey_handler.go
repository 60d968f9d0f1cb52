package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bdanielcs/dashboard-backend-go/internal/models"
	"github.com/bdanielcs/dashboard-backend-go/internal/service"
	"github.com/bdanielcs/dashboard-backend-go/pkg/response"
)

// SurveyHandler handles HTTP requests for the three survey views.
type SurveyHandler struct {
	service *service.SurveyService
}

// NewSurveyHandler creates a new survey handler.
func NewSurveyHandler(service *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{service: service}
}

// GetIncomeDistribution handles GET /api/v1/survey/income
func (h *SurveyHandler) GetIncomeDistribution(c *gin.Context) {
	diabetic, err := parseDiabetic(c.DefaultQuery("diabetic", "true"))
	if err != nil {
		response.BadRequest(c, "diabetic must be true or false")
		return
	}

	rows, err := h.service.IncomeDistribution(diabetic)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"rows":     rows,
		"diabetic": diabetic,
	})
}

// GetBMIDistribution handles GET /api/v1/survey/bmi
func (h *SurveyHandler) GetBMIDistribution(c *gin.Context) {
	var filter models.BMIFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "maxBmi must be an integer between 1 and 100")
		return
	}

	// Number-input default from the original dashboard
	if filter.MaxBMI == 0 {
		filter.MaxBMI = 100
	}

	response.Success(c, h.service.BMIDistribution(filter.MaxBMI))
}

// GetGeneralHealthTree handles GET /api/v1/survey/general-health
func (h *SurveyHandler) GetGeneralHealthTree(c *gin.Context) {
	diabetic, err := parseDiabetic(c.DefaultQuery("diabetic", "true"))
	if err != nil {
		response.BadRequest(c, "diabetic must be true or false")
		return
	}

	tree, err := h.service.GeneralHealthTree(diabetic)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, tree)
}

// parseDiabetic interprets the two-valued selector. The original UI
// offered the capitalized strings "True"/"False", so those are accepted
// alongside the usual boolean spellings.
func parseDiabetic(value string) (bool, error) {
	return strconv.ParseBool(strings.ToLower(value))
}
