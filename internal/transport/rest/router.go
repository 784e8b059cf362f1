package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"promptlens/internal/service"
	"promptlens/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	AnalysisService *service.AnalysisService
	PromptValidator *service.PromptValidator
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	analysisHandler := handler.NewAnalysisHandler(c.AnalysisService, c.PromptValidator)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/analyses", analysisHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/analyses", analysisHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/analyses/{id}", analysisHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/prompts/validate", analysisHandler.ValidatePrompt).Methods("POST", "OPTIONS")
	v1.HandleFunc("/cache/stats", analysisHandler.CacheStats).Methods("GET", "OPTIONS")
	v1.HandleFunc("/cache", analysisHandler.ClearCache).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
