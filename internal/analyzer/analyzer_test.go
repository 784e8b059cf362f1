package analyzer

import (
	"reflect"
	"testing"

	"promptlens/internal/model"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"fix this", 2},
		{"one  two\tthree\nfour", 4},
	}
	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"no terminator", 1},
		{"First. Second! Third?", 4}, // trailing split segment is counted
		{"Wait... what", 2},
	}
	for _, tt := range tests {
		if got := SentenceCount(tt.text); got != tt.want {
			t.Errorf("SentenceCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestComplexityLevel(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{0, model.ComplexitySimple},
		{19, model.ComplexitySimple},
		{20, model.ComplexityModerate},
		{49, model.ComplexityModerate},
		{50, model.ComplexityComplex},
		{99, model.ComplexityComplex},
		{100, model.ComplexityAdvanced},
		{500, model.ComplexityAdvanced},
	}
	for _, tt := range tests {
		if got := ComplexityLevel(tt.words); got != tt.want {
			t.Errorf("ComplexityLevel(%d) = %s, want %s", tt.words, got, tt.want)
		}
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	first := Analyze(blogPrompt)
	second := Analyze(blogPrompt)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two analyses of the same prompt differ:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeOverallIsMeanOfDimensions(t *testing.T) {
	prompts := []string{"", "fix this", blogPrompt, "Explain how DNS resolution works, step by step, for a beginner audience."}

	for _, prompt := range prompts {
		result := Analyze(prompt)
		mean := (ClarityScore(prompt) + SpecificityScore(prompt) + ContextScore(prompt) + ConstraintScore(prompt) + GoalScore(prompt)) / 5
		if !closeTo(result.Metrics.OverallScore, round1(mean)) {
			t.Errorf("Analyze(%q) overall = %f, want %f", prompt, result.Metrics.OverallScore, round1(mean))
		}
		if result.Metrics.OverallScore < 1.0 || result.Metrics.OverallScore > 10.0 {
			t.Errorf("Analyze(%q) overall = %f, out of range", prompt, result.Metrics.OverallScore)
		}
	}
}

func TestAnalyzeBlogPrompt(t *testing.T) {
	result := Analyze(blogPrompt)

	if result.Metrics.ClarityScore < 7 {
		t.Errorf("clarity = %f, want >= 7", result.Metrics.ClarityScore)
	}
	if result.Metrics.SpecificityScore < 7 {
		t.Errorf("specificity = %f, want elevated", result.Metrics.SpecificityScore)
	}
	if result.Metrics.ConstraintScore < 7 {
		t.Errorf("constraints = %f, want elevated", result.Metrics.ConstraintScore)
	}
	if result.ConfidenceLevel != FallbackConfidence {
		t.Errorf("confidence = %f, want %f", result.ConfidenceLevel, FallbackConfidence)
	}
	if result.Source != model.SourceHeuristic {
		t.Errorf("source = %s, want %s", result.Source, model.SourceHeuristic)
	}
	if result.Metrics.WordCount != 21 {
		t.Errorf("word count = %d, want 21", result.Metrics.WordCount)
	}
	if result.Metrics.ComplexityLevel != model.ComplexityModerate {
		t.Errorf("complexity = %s, want Moderate", result.Metrics.ComplexityLevel)
	}
}

func TestAnalyzeNeverReturnsEmptyFeedback(t *testing.T) {
	for _, prompt := range []string{"", "x", blogPrompt} {
		result := Analyze(prompt)
		if len(result.Strengths) == 0 || len(result.Strengths) > 5 {
			t.Errorf("Analyze(%q): %d strengths", prompt, len(result.Strengths))
		}
		if len(result.Weaknesses) == 0 || len(result.Weaknesses) > 5 {
			t.Errorf("Analyze(%q): %d weaknesses", prompt, len(result.Weaknesses))
		}
		if len(result.Suggestions) == 0 || len(result.Suggestions) > 5 {
			t.Errorf("Analyze(%q): %d suggestions", prompt, len(result.Suggestions))
		}
		if result.ImprovedPrompt == "" {
			t.Errorf("Analyze(%q): empty improved prompt", prompt)
		}
	}
}
