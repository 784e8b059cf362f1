package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptlens/internal/analyzer"
	"promptlens/internal/model"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

const testPrompt = "Write a 300-word blog post about remote work productivity, formatted with bullet points and a professional tone for a business audience."

const goodResponse = "```json\n" +
	`{"scores":{"clarity":8,"specificity":[7],"context":6,"constraints":7,"goal_orientation":8,"overall":7.2},` +
	`"analysis":{"strengths":["x"],"weaknesses":["y"],"suggestions":["z"]},"improved_prompt":"improved","confidence":0.9}` +
	"\n```"

func newTestService(t *testing.T, g Generator) *AnalysisService {
	t.Helper()
	svc, err := NewAnalysisService(g, nil, nil)
	require.NoError(t, err)
	return svc
}

func TestNewAnalysisServiceRequiresGenerator(t *testing.T) {
	_, err := NewAnalysisService(nil, nil, nil)
	require.Error(t, err)
}

func TestAnalyzeAcceptsBackendResponse(t *testing.T) {
	gen := &stubGenerator{response: goodResponse}
	svc := newTestService(t, gen)

	result, err := svc.Analyze(context.Background(), testPrompt)
	require.NoError(t, err)

	assert.Equal(t, model.SourceModel, result.Source)
	assert.Equal(t, 0.9, result.ConfidenceLevel)
	assert.Equal(t, 7.2, result.Metrics.OverallScore)
	assert.Equal(t, 7.0, result.Metrics.SpecificityScore, "single-element array should be unwrapped")
	assert.Equal(t, "improved", result.ImprovedPrompt)

	// text statistics always come from the local text, never the backend
	assert.Equal(t, 21, result.Metrics.WordCount)
	assert.Equal(t, model.ComplexityModerate, result.Metrics.ComplexityLevel)

	// the backend receives the instruction template with the prompt appended
	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasSuffix(gen.prompts[0], testPrompt))
	assert.Contains(t, gen.prompts[0], "Respond ONLY with valid JSON")
}

func TestAnalyzeFallsBack(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{"generation error", &stubGenerator{err: &ServiceError{Op: "call gemini", Err: errors.New("quota exceeded")}}},
		{"unparseable output", &stubGenerator{response: "I'd be happy to help you improve this prompt!"}},
		{"schema violation", &stubGenerator{response: `{"scores":{"clarity":8},"analysis":{},"improved_prompt":"p","confidence":0.9}`}},
		{"out-of-range score", &stubGenerator{response: `{"scores":{"clarity":11,"specificity":7,"context":6,"constraints":7,"goal_orientation":8,"overall":7.2},"analysis":{"strengths":[],"weaknesses":[],"suggestions":[]},"improved_prompt":"p","confidence":0.9}`}},
		{"fallback signature", &stubGenerator{response: `{"scores":{"clarity":6,"specificity":5,"context":5,"constraints":6,"goal_orientation":6,"overall":5.6},"analysis":{"strengths":["s"],"weaknesses":["w"],"suggestions":["g"]},"improved_prompt":"p","confidence":0.7}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.gen)

			result, err := svc.Analyze(context.Background(), testPrompt)
			require.NoError(t, err, "backend failures must not surface")

			assert.Equal(t, model.SourceHeuristic, result.Source)
			assert.Equal(t, analyzer.FallbackConfidence, result.ConfidenceLevel)

			// fallback result must match the rule-based analyzer exactly
			want := analyzer.Analyze(testPrompt)
			assert.Equal(t, want.Metrics, result.Metrics)
			assert.Equal(t, want.Weaknesses, result.Weaknesses)
		})
	}
}

func TestAnalyzeWithoutCacheAndHistory(t *testing.T) {
	svc := newTestService(t, &stubGenerator{response: goodResponse})

	recent, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, recent)

	stats, err := svc.CacheStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Entries)

	require.NoError(t, svc.ClearCache(context.Background()))
}
