package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Madiyar4565/Travel_Scheduler/internal/config"
	"github.com/Madiyar4565/Travel_Scheduler/internal/database"
	"github.com/Madiyar4565/Travel_Scheduler/internal/filestore"
	"github.com/Madiyar4565/Travel_Scheduler/internal/handlers"
	"github.com/Madiyar4565/Travel_Scheduler/internal/repository"
	"github.com/Madiyar4565/Travel_Scheduler/internal/services"
	"github.com/Madiyar4565/Travel_Scheduler/pkg/logger"
	"github.com/Madiyar4565/Travel_Scheduler/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	destinationRepo := repository.NewDestinationRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// --- Services ---
	destinationService := services.NewDestinationService(destinationRepo)
	scheduleService := services.NewScheduleService(scheduleRepo)

	// Seed the destination catalog on first start against an empty database
	if err := destinationService.SeedDestinations(context.Background()); err != nil {
		log.Fatalf("Destination seeding error: %v", err)
	}

	// --- File store & Handlers ---
	files := filestore.NewStore(cfg.UploadDir, filestore.MaxUploadSize)
	destinationHandler := handlers.NewDestinationHandler(destinationService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, files)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// API routes
	router.HandleFunc("/api/destinations", destinationHandler.GetDestinationsHandler).Methods("GET")
	router.HandleFunc("/api/schedule", scheduleHandler.GetSchedulesHandler).Methods("GET")
	router.HandleFunc("/api/schedule", scheduleHandler.CreateScheduleHandler).Methods("POST")
	router.HandleFunc("/api/schedule/{id}", scheduleHandler.UpdateScheduleHandler).Methods("PUT")
	router.HandleFunc("/api/schedule/{id}", scheduleHandler.DeleteScheduleHandler).Methods("DELETE")

	// Uploaded images and the static instructional page
	router.PathPrefix("/images/").Handler(http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.UploadDir))))
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("./public")))

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Allow the browser frontend from any origin
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
