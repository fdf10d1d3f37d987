package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gokul-G-G/Travel-Planner/internal/api"
	"github.com/Gokul-G-G/Travel-Planner/internal/config"
	"github.com/Gokul-G-G/Travel-Planner/internal/repository"
	"github.com/Gokul-G-G/Travel-Planner/internal/repository/mongo"
	"github.com/Gokul-G-G/Travel-Planner/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Travel Planner API
// @version 1.0
// @description CRUD API for travel plans.
// @host localhost:3001
// @BasePath /
func main() {
	log.Println("Starting Travel Planner Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")
	gin.SetMode(cfg.Server.Mode)

	// --- Database Connection ---
	// A failed connection is logged, not fatal: requests fail at the persistence layer instead.
	var planRepo repository.PlanRepository
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Printf("DB connection error: %v", err)
	} else {
		log.Println("DB connected")
	}

	if dbClient != nil {
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)

		// --- Ensure Indexes ---
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongo.EnsurePlanIndexes(ctx, appDB.Collection(mongo.PlanCollectionName))
		}()

		planRepo = mongo.NewMongoPlanRepository(appDB)
	} else {
		planRepo = repository.NewUnavailablePlanRepository(err)
	}

	// --- Initialize Services ---
	planService := service.NewPlanService(planRepo)

	// --- Setup Routes ---
	router := api.NewRouter(planService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      api.WithCORS(router, cfg.Server.CORSOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server started on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
