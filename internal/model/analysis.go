package model

import "time"

// Complexity buckets derived from word count
const (
	ComplexitySimple   = "Simple"
	ComplexityModerate = "Moderate"
	ComplexityComplex  = "Complex"
	ComplexityAdvanced = "Advanced"
)

// Analysis sources
const (
	SourceModel     = "model"     // scores came from the AI backend
	SourceHeuristic = "heuristic" // scores came from the rule-based fallback
)

// AnalysisMetrics holds the per-dimension scores plus basic text statistics
type AnalysisMetrics struct {
	ClarityScore         float64 `json:"clarityScore" bson:"clarityScore"`
	SpecificityScore     float64 `json:"specificityScore" bson:"specificityScore"`
	ContextScore         float64 `json:"contextScore" bson:"contextScore"`
	ConstraintScore      float64 `json:"constraintScore" bson:"constraintScore"`
	GoalOrientationScore float64 `json:"goalOrientationScore" bson:"goalOrientationScore"`
	OverallScore         float64 `json:"overallScore" bson:"overallScore"`
	WordCount            int     `json:"wordCount" bson:"wordCount"`
	SentenceCount        int     `json:"sentenceCount" bson:"sentenceCount"`
	ComplexityLevel      string  `json:"complexityLevel" bson:"complexityLevel"`
}

// AnalysisResult is the complete outcome of one analysis call.
// It is built once and never mutated afterwards.
type AnalysisResult struct {
	ID              string          `json:"id,omitempty" bson:"_id,omitempty"`
	Prompt          string          `json:"prompt" bson:"prompt"`
	Metrics         AnalysisMetrics `json:"metrics" bson:"metrics"`
	Strengths       []string        `json:"strengths" bson:"strengths"`
	Weaknesses      []string        `json:"weaknesses" bson:"weaknesses"`
	Suggestions     []string        `json:"suggestions" bson:"suggestions"`
	ImprovedPrompt  string          `json:"improvedPrompt" bson:"improvedPrompt"`
	ConfidenceLevel float64         `json:"confidenceLevel" bson:"confidenceLevel"`
	Source          string          `json:"source" bson:"source"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
}

// AnalyzeRequest is the body of POST /v1/analyses
type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
}

// CacheStats reports result-cache occupancy
type CacheStats struct {
	Entries int64 `json:"entries"`
}
