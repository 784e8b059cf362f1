package service

import (
	"context"
	"errors"
	"log"

	"promptlens/internal/analyzer"
	"promptlens/internal/cache"
	"promptlens/internal/model"
	"promptlens/internal/repository"
)

// analysisInstruction is the fixed template sent to the AI backend.
// The prompt under analysis is appended to it verbatim.
const analysisInstruction = `You are an expert prompt engineering consultant. Analyze the following prompt and provide scores from 1-10 for each dimension.

IMPORTANT: Return scores as NUMBERS, not arrays. Example: "clarity": 7, NOT "clarity": [7]

Respond ONLY with valid JSON in this exact format:
{
    "scores": {
        "clarity": 7,
        "specificity": 5,
        "context": 4,
        "constraints": 3,
        "goal_orientation": 8,
        "overall": 6
    },
    "analysis": {
        "strengths": ["strength1", "strength2", "strength3"],
        "weaknesses": ["weakness1", "weakness2", "weakness3"],
        "suggestions": ["suggestion1", "suggestion2", "suggestion3"]
    },
    "improved_prompt": "Your improved version of the prompt here",
    "confidence": 0.8
}

PROMPT TO ANALYZE:
`

// AnalysisService arbitrates between the AI backend and the rule-based
// analyzer. Every call produces a complete result: backend failures of
// any kind degrade to the fallback path, they never surface as errors.
type AnalysisService struct {
	generator Generator
	cache     cache.AnalysisCache
	history   repository.AnalysisRepo
}

// NewAnalysisService creates an analysis service. The generator is
// mandatory; cache and history may be nil and are then skipped.
func NewAnalysisService(generator Generator, analysisCache cache.AnalysisCache, history repository.AnalysisRepo) (*AnalysisService, error) {
	if generator == nil {
		return nil, errors.New("analysis service requires a generator")
	}
	return &AnalysisService{
		generator: generator,
		cache:     analysisCache,
		history:   history,
	}, nil
}

// Analyze scores one prompt. The returned result always carries locally
// computed word/sentence counts and complexity; the dimension scores
// come from the backend when its response survives validation, and from
// the rule-based analyzer otherwise.
func (s *AnalysisService) Analyze(ctx context.Context, prompt string) (*model.AnalysisResult, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, prompt)
		if err != nil {
			log.Printf("cache read failed: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	result := s.analyzeOnce(ctx, prompt)

	if s.history != nil {
		if err := s.history.Create(ctx, result); err != nil {
			log.Printf("history write failed: %v", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, prompt, result); err != nil {
			log.Printf("cache write failed: %v", err)
		}
	}

	return result, nil
}

func (s *AnalysisService) analyzeOnce(ctx context.Context, prompt string) *model.AnalysisResult {
	raw, err := s.generator.Generate(ctx, analysisInstruction+prompt)
	if err != nil {
		log.Printf("fallback triggered: reason=generate: %v", err)
		return analyzer.Analyze(prompt)
	}

	external, err := analyzer.ParseExternal(raw)
	if err != nil {
		log.Printf("fallback triggered: reason=%v", err)
		return analyzer.Analyze(prompt)
	}

	return fromExternal(prompt, external)
}

// fromExternal merges an accepted backend analysis with locally
// computed text statistics. Scores are taken as delivered: validation
// already guaranteed their ranges, and re-deriving them here would
// defeat the point of asking the backend.
func fromExternal(prompt string, external *analyzer.ExternalAnalysis) *model.AnalysisResult {
	wordCount := analyzer.WordCount(prompt)

	return &model.AnalysisResult{
		Prompt: prompt,
		Metrics: model.AnalysisMetrics{
			ClarityScore:         external.Clarity,
			SpecificityScore:     external.Specificity,
			ContextScore:         external.Context,
			ConstraintScore:      external.Constraints,
			GoalOrientationScore: external.GoalOrientation,
			OverallScore:         external.Overall,
			WordCount:            wordCount,
			SentenceCount:        analyzer.SentenceCount(prompt),
			ComplexityLevel:      analyzer.ComplexityLevel(wordCount),
		},
		Strengths:       external.Strengths,
		Weaknesses:      external.Weaknesses,
		Suggestions:     external.Suggestions,
		ImprovedPrompt:  external.ImprovedPrompt,
		ConfidenceLevel: external.Confidence,
		Source:          model.SourceModel,
	}
}

// Recent returns the latest stored analyses
func (s *AnalysisService) Recent(ctx context.Context, limit int) ([]*model.AnalysisResult, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListRecent(ctx, limit)
}

// Get returns one stored analysis by id, or nil when absent
func (s *AnalysisService) Get(ctx context.Context, id string) (*model.AnalysisResult, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.GetByID(ctx, id)
}

// CacheStats reports result-cache occupancy
func (s *AnalysisService) CacheStats(ctx context.Context) (*model.CacheStats, error) {
	if s.cache == nil {
		return &model.CacheStats{}, nil
	}
	return s.cache.Stats(ctx)
}

// ClearCache drops all cached analyses
func (s *AnalysisService) ClearCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Clear(ctx)
}
