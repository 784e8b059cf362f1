// Package analyzer scores prompt quality along five dimensions and
// produces strengths, weaknesses, suggestions and a rewritten prompt.
//
// Everything in this package is deterministic and total: every input
// string, including the empty one, yields a complete result. It is the
// fallback engine when the AI backend is unavailable, and the validation
// authority when the backend does answer.
package analyzer

import (
	"regexp"
	"strings"

	"promptlens/internal/model"
)

// FallbackConfidence marks results produced by the rule-based path.
// The exact value matters: the plausibility check uses it to spot AI
// responses that look like a disguised fallback.
const FallbackConfidence = 0.7

var sentenceBreaks = regexp.MustCompile(`[.!?]+`)

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SentenceCount counts segments split on runs of sentence punctuation.
// Always at least 1, even for empty input.
func SentenceCount(text string) int {
	n := len(sentenceBreaks.Split(strings.TrimSpace(text), -1))
	if n < 1 {
		return 1
	}
	return n
}

// ComplexityLevel buckets a prompt purely by word count.
func ComplexityLevel(wordCount int) string {
	switch {
	case wordCount < 20:
		return model.ComplexitySimple
	case wordCount < 50:
		return model.ComplexityModerate
	case wordCount < 100:
		return model.ComplexityComplex
	default:
		return model.ComplexityAdvanced
	}
}

// Analyze runs the full rule-based analysis. It never fails.
func Analyze(prompt string) *model.AnalysisResult {
	clarity := ClarityScore(prompt)
	specificity := SpecificityScore(prompt)
	contextScore := ContextScore(prompt)
	constraints := ConstraintScore(prompt)
	goal := GoalScore(prompt)
	overall := (clarity + specificity + contextScore + constraints + goal) / 5

	wordCount := WordCount(prompt)
	weaknesses := identifyWeaknesses(prompt, clarity, specificity, contextScore, constraints, goal)

	return &model.AnalysisResult{
		Prompt: prompt,
		Metrics: model.AnalysisMetrics{
			ClarityScore:         round1(clarity),
			SpecificityScore:     round1(specificity),
			ContextScore:         round1(contextScore),
			ConstraintScore:      round1(constraints),
			GoalOrientationScore: round1(goal),
			OverallScore:         round1(overall),
			WordCount:            wordCount,
			SentenceCount:        SentenceCount(prompt),
			ComplexityLevel:      ComplexityLevel(wordCount),
		},
		Strengths:       identifyStrengths(prompt, clarity, specificity, contextScore, constraints, goal),
		Weaknesses:      weaknesses,
		Suggestions:     generateSuggestions(weaknesses),
		ImprovedPrompt:  ImprovePrompt(prompt),
		ConfidenceLevel: FallbackConfidence,
		Source:          model.SourceHeuristic,
	}
}
