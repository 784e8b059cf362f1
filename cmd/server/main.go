package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"promptlens/internal/cache"
	"promptlens/internal/config"
	"promptlens/internal/repository"
	"promptlens/internal/service"
	"promptlens/internal/transport/rest"
)

// @title PromptLens API
// @version 1.0
// @description Prompt quality analysis with AI scoring and rule-based fallback
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Model:    %s", aiConfig.Model)
	log.Printf("  Timeout:  %dms", aiConfig.TimeoutMS)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:  configured")
	} else {
		log.Println("  API Key:  NOT SET (every analysis uses the rule-based fallback)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("promptlens")

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize collaborators
	analysisRepo := repository.NewAnalysisRepo(db)
	analysisCache := cache.NewAnalysisCache(rdb, time.Duration(cfg.CacheTTLHours)*time.Hour)
	generator := service.NewGeminiClient(aiConfig)

	analysisSvc, err := service.NewAnalysisService(generator, analysisCache, analysisRepo)
	if err != nil {
		log.Fatal("Failed to initialize analysis service:", err)
	}

	// Create router with container
	container := &rest.Container{
		AnalysisService: analysisSvc,
		PromptValidator: service.NewPromptValidator(),
	}
	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/analyses")
		log.Println("  GET  /v1/analyses")
		log.Println("  GET  /v1/analyses/{id}")
		log.Println("  POST /v1/prompts/validate")
		log.Println("  GET  /v1/cache/stats")
		log.Println("  DELETE /v1/cache")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
