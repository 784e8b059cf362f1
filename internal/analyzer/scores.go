package analyzer

import (
	"math"
	"regexp"
	"strings"
)

var digitRuns = regexp.MustCompile(`\d+`)

// ClarityScore rates how unambiguous the prompt reads.
func ClarityScore(prompt string) float64 {
	lower := strings.ToLower(prompt)

	var score float64
	switch wc := WordCount(prompt); {
	case wc < 5:
		score = 3.0
	case wc < 15:
		score = 5.0
	case wc < 50:
		score = 7.0
	default:
		score = 8.0
	}

	score -= float64(countHits(lower, vagueWords)) * 1.0
	score += float64(countHits(lower, clearActionWords)) * 0.5

	// Questions tend to be clearer than open-ended demands
	if strings.Contains(prompt, "?") {
		score += 0.5
	}

	return clampScore(score)
}

// SpecificityScore rates how concrete the requirements are.
func SpecificityScore(prompt string) float64 {
	lower := strings.ToLower(prompt)

	var score float64
	switch wc := WordCount(prompt); {
	case wc < 10:
		score = 3.0
	case wc < 30:
		score = 5.0
	default:
		score = 7.0
	}

	numbers := digitRuns.FindAllString(prompt, -1)
	score += math.Min(float64(len(numbers))*0.8, 2.0)
	score += math.Min(float64(countHits(lower, formatWords))*1.0, 2.0)
	score += math.Min(float64(countHits(lower, domainWords))*0.5, 1.5)
	score -= float64(countHits(lower, vagueRequests)) * 1.5

	return clampScore(score)
}

// ContextScore rates how much background the prompt supplies.
func ContextScore(prompt string) float64 {
	lower := strings.ToLower(prompt)

	var score float64
	switch wc := WordCount(prompt); {
	case wc < 8:
		score = 2.0
	case wc < 20:
		score = 4.0
	case wc < 50:
		score = 6.0
	default:
		score = 8.0
	}

	score += math.Min(float64(countHits(lower, contextWords))*0.8, 2.0)
	score += math.Min(float64(countHits(lower, personalWords))*0.3, 1.0)

	return clampScore(score)
}

// ConstraintScore rates how well the output is pinned down
// (format, length, tone, audience).
func ConstraintScore(prompt string) float64 {
	lower := strings.ToLower(prompt)

	score := 4.0
	score += math.Min(float64(countHits(lower, formatInstructions))*1.0, 3.0)
	score += math.Min(float64(countHits(lower, lengthSpecs))*0.8, 2.0)
	score += math.Min(float64(countHits(lower, styleSpecs))*0.6, 2.0)
	score += math.Min(float64(countHits(lower, audienceSpecs))*0.5, 1.0)

	return clampScore(score)
}

// GoalScore rates how clearly the prompt states what success looks like.
func GoalScore(prompt string) float64 {
	lower := strings.ToLower(prompt)

	score := 4.0
	score += math.Min(float64(countHits(lower, actionWords))*1.0, 3.0)
	score += math.Min(float64(countHits(lower, outcomeWords))*0.8, 2.0)
	score += math.Min(float64(countHits(lower, intentWords))*0.6, 1.5)
	score -= float64(countHits(lower, unclearWords)) * 0.8

	return clampScore(score)
}

// countHits returns how many lexicon entries occur in the text.
// Each entry counts once no matter how often it appears.
func countHits(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

func clampScore(score float64) float64 {
	return math.Max(1.0, math.Min(10.0, score))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
