package main

import (
	"context"
	"devdosthub/internal/api"
	"devdosthub/internal/api/middleware"
	"devdosthub/internal/app/service"
	"devdosthub/internal/common/security"
	"devdosthub/internal/domain/repository"
	"devdosthub/internal/platform/ai"
	"devdosthub/internal/platform/config"
	"devdosthub/internal/platform/database"
	"devdosthub/internal/platform/metrics"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	if err := database.RunMigrations(config.AppConfig.DBURL); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}
	fmt.Println("Migrations applied.")

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	eventRepo := repository.NewPgEventRepository(database.DB)
	rsvpRepo := repository.NewPgRSVPRepository(database.DB)

	// 5. Initialize the AI client once. An empty key is allowed: the server
	// starts and the ask endpoint reports the unconfigured state on use.
	aiClient := ai.NewClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel, config.AppConfig.GeminiBaseURL)
	if !aiClient.Configured() {
		log.Println("GEMINI_API_KEY not set; AI endpoint will report service unavailable")
	}

	// 6. Initialize Services
	txRunner := service.NewTxRunner(database.DB)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, rsvpRepo, txRunner)
	eventService := service.NewEventService(eventRepo, rsvpRepo, txRunner)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo)
	aiService := service.NewAIService(aiClient)

	// 7. Metrics & rate limiting
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	aiLimiter := middleware.NewRateLimiter(config.AppConfig.AIAskPerMinute)
	defer aiLimiter.Stop()

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, userService, eventService, rsvpService, aiService, collector, registry, aiLimiter)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
