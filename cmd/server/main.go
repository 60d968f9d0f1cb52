package main

import (
	"log"

	"github.com/patrickmn/go-cache"

	"github.com/bdanielcs/dashboard-backend-go/internal/api"
	"github.com/bdanielcs/dashboard-backend-go/internal/config"
	"github.com/bdanielcs/dashboard-backend-go/internal/database"
	"github.com/bdanielcs/dashboard-backend-go/internal/dataset"
	"github.com/bdanielcs/dashboard-backend-go/internal/handler"
	"github.com/bdanielcs/dashboard-backend-go/internal/repository"
	"github.com/bdanielcs/dashboard-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	// Load the two source tables. The dashboard cannot render without
	// them, so any failure here is fatal.
	tables, err := dataset.Load(cfg.TaxiCSVPath, cfg.DiabetesCSVPath)
	if err != nil {
		log.Fatal("Failed to load datasets: ", err)
	}

	if err := database.Init(database.Config{DSN: cfg.DBDSN}); err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close()

	tripRepo := repository.NewTripRepository(database.GetDB())
	surveyRepo := repository.NewSurveyRepository(database.GetDB())

	if err := tripRepo.BulkInsert(tables.Trips); err != nil {
		log.Fatal("Failed to ingest trips: ", err)
	}
	if err := surveyRepo.BulkInsert(tables.Survey); err != nil {
		log.Fatal("Failed to ingest survey: ", err)
	}

	if counts, err := surveyRepo.CountByDiabetes(); err == nil {
		log.Printf("Survey ingested: %d diabetic, %d non-diabetic", counts[true], counts[false])
	}

	memo := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)

	tripService, err := service.NewTripService(tripRepo, memo)
	if err != nil {
		log.Fatal("Failed to build trip service: ", err)
	}
	surveyService, err := service.NewSurveyService(surveyRepo, memo)
	if err != nil {
		log.Fatal("Failed to build survey service: ", err)
	}

	router := api.SetupRouter(
		handler.NewTripHandler(tripService),
		handler.NewSurveyHandler(surveyService),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
