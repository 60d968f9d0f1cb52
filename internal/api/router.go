package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bdanielcs/dashboard-backend-go/internal/handler"
	"github.com/bdanielcs/dashboard-backend-go/internal/middleware"
)

// SetupRouter wires the dashboard endpoints.
func SetupRouter(tripHandler *handler.TripHandler, surveyHandler *handler.SurveyHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS: the dashboard frontend is served from a different origin
	// during development
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Dashboard API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		trips := api.Group("/trips")
		{
			trips.GET("/pickups", tripHandler.GetPickups)
		}

		survey := api.Group("/survey")
		{
			survey.GET("/income", surveyHandler.GetIncomeDistribution)
			survey.GET("/bmi", surveyHandler.GetBMIDistribution)
			survey.GET("/general-health", surveyHandler.GetGeneralHealthTree)
		}
	}

	return r
}
