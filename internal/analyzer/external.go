package analyzer

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// Rejection reasons for an external analysis response. The service
// logs these when it falls back.
var (
	ErrMalformedResponse = errors.New("response is not a JSON object")
	ErrInvalidSchema     = errors.New("response failed schema validation")
	ErrImplausible       = errors.New("response matches fallback signature")
)

// RawAnalysis is the untrusted, untyped JSON object returned by the AI
// backend. It never crosses the validation boundary: it is either
// decoded into ExternalAnalysis or rejected.
type RawAnalysis map[string]interface{}

// ExternalAnalysis is the validated, typed form of a backend response.
type ExternalAnalysis struct {
	Clarity         float64
	Specificity     float64
	Context         float64
	Constraints     float64
	GoalOrientation float64
	Overall         float64
	Strengths       []string
	Weaknesses      []string
	Suggestions     []string
	ImprovedPrompt  string
	Confidence      float64
}

var (
	requiredKeys = []string{"scores", "analysis", "improved_prompt", "confidence"}
	scoreKeys    = []string{"clarity", "specificity", "context", "constraints", "goal_orientation", "overall"}
	analysisKeys = []string{"strengths", "weaknesses", "suggestions"}
)

var codeFences = regexp.MustCompile("```json\\s*|\\s*```")

// ExtractJSON strips Markdown code fences and pulls the outermost
// {...} span out of free-form model output.
func ExtractJSON(text string) (RawAnalysis, error) {
	clean := strings.TrimSpace(codeFences.ReplaceAllString(text, ""))

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end <= start {
		return nil, ErrMalformedResponse
	}

	var raw RawAnalysis
	if err := json.Unmarshal([]byte(clean[start:end+1]), &raw); err != nil {
		return nil, ErrMalformedResponse
	}
	return raw, nil
}

// Validate checks the structure of a raw backend response: required
// keys at every level, numeric scores in [1,10], confidence in [0,1].
// Single-element arrays around a score are unwrapped in place first,
// a known backend quirk.
func Validate(raw RawAnalysis) bool {
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return false
		}
	}

	scores, ok := raw["scores"].(map[string]interface{})
	if !ok {
		return false
	}
	for _, key := range scoreKeys {
		if _, ok := scores[key]; !ok {
			return false
		}
	}

	analysis, ok := raw["analysis"].(map[string]interface{})
	if !ok {
		return false
	}
	for _, key := range analysisKeys {
		if _, ok := analysis[key]; !ok {
			return false
		}
	}

	for key, value := range scores {
		if arr, ok := value.([]interface{}); ok && len(arr) == 1 {
			value = arr[0]
			scores[key] = value
		}
		n, ok := asNumber(value)
		if !ok || n < 1 || n > 10 {
			return false
		}
	}

	confidence, ok := asNumber(raw["confidence"])
	if !ok || confidence < 0 || confidence > 1 {
		return false
	}

	return true
}

// Plausible reports whether a validated response looks like a genuine
// AI analysis rather than a disguised copy of the rule-based fallback.
// An overall score of exactly 5.0, or in [5.5, 5.7], combined with the
// fallback's fixed 0.7 confidence is indistinguishable from the
// fallback's signature and gets rejected. Deliberately narrow and
// brittle: a real analysis landing on exactly these values is lost.
func Plausible(raw RawAnalysis) bool {
	scores, _ := raw["scores"].(map[string]interface{})
	overall, _ := asNumber(scores["overall"])

	if overall == 5.0 || (overall >= 5.5 && overall <= 5.7) {
		if confidence, _ := asNumber(raw["confidence"]); confidence == FallbackConfidence {
			return false
		}
	}
	return true
}

// ParseExternal runs the full acceptance pipeline on raw model output.
// The returned error names the rejection reason; a nil error means the
// analysis can be trusted as delivered.
func ParseExternal(text string) (*ExternalAnalysis, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	if !Validate(raw) {
		return nil, ErrInvalidSchema
	}
	if !Plausible(raw) {
		return nil, ErrImplausible
	}
	return decode(raw), nil
}

// decode converts a validated RawAnalysis. Must only be called after
// Validate has passed (and unwrapped any single-element score arrays).
func decode(raw RawAnalysis) *ExternalAnalysis {
	scores := raw["scores"].(map[string]interface{})
	analysis := raw["analysis"].(map[string]interface{})

	score := func(key string) float64 {
		n, _ := asNumber(scores[key])
		return n
	}
	confidence, _ := asNumber(raw["confidence"])
	improved, _ := raw["improved_prompt"].(string)

	return &ExternalAnalysis{
		Clarity:         score("clarity"),
		Specificity:     score("specificity"),
		Context:         score("context"),
		Constraints:     score("constraints"),
		GoalOrientation: score("goal_orientation"),
		Overall:         score("overall"),
		Strengths:       toStrings(analysis["strengths"]),
		Weaknesses:      toStrings(analysis["weaknesses"]),
		Suggestions:     toStrings(analysis["suggestions"]),
		ImprovedPrompt:  improved,
		Confidence:      confidence,
	}
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func toStrings(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
