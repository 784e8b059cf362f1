package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"promptlens/internal/model"
	"promptlens/internal/service"
)

// AnalysisHandler handles analysis endpoints
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
	validator   *service.PromptValidator
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisSvc *service.AnalysisService, validator *service.PromptValidator) *AnalysisHandler {
	return &AnalysisHandler{
		analysisSvc: analysisSvc,
		validator:   validator,
	}
}

// Create handles POST /v1/analyses
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(req.Prompt); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.validator.Sensitive(req.Prompt) {
		log.Printf("warning: prompt matched sensitive pattern")
	}

	result, err := h.analysisSvc.Analyze(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

const maxListLimit = 100

// List handles GET /v1/analyses
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		limit = n
	}

	results, err := h.analysisSvc.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if results == nil {
		results = []*model.AnalysisResult{}
	}

	writeJSON(w, http.StatusOK, results)
}

// Get handles GET /v1/analyses/{id}
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.analysisSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ValidatePrompt handles POST /v1/prompts/validate
func (h *AnalysisHandler) ValidatePrompt(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := map[string]interface{}{
		"valid":     true,
		"score":     h.validator.QualityScore(req.Prompt),
		"sensitive": h.validator.Sensitive(req.Prompt),
	}
	if err := h.validator.Validate(req.Prompt); err != nil {
		resp["valid"] = false
		resp["error"] = err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}

// CacheStats handles GET /v1/cache/stats
func (h *AnalysisHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analysisSvc.CacheStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ClearCache handles DELETE /v1/cache
func (h *AnalysisHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.analysisSvc.ClearCache(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
