package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// ValidationError rejects a prompt before analysis starts. The core
// analyzer itself accepts any string; this gate keeps junk out of the
// cache and the history.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PromptValidator checks prompts at the transport boundary
type PromptValidator struct {
	MinLength int
	MaxLength int
	MinWords  int

	sensitivePatterns []*regexp.Regexp
}

// NewPromptValidator creates a validator with default limits
func NewPromptValidator() *PromptValidator {
	return &PromptValidator{
		MinLength: 10,
		MaxLength: 5000,
		MinWords:  3,
		sensitivePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(hack|exploit|bypass|jailbreak)`),
			regexp.MustCompile(`(?i)(illegal|harmful|dangerous)`),
		},
	}
}

// Validate returns a *ValidationError describing the first failed check
func (v *PromptValidator) Validate(prompt string) error {
	trimmed := strings.TrimSpace(prompt)

	if trimmed == "" {
		return &ValidationError{Reason: "empty prompt not allowed"}
	}
	if len(trimmed) < v.MinLength {
		return &ValidationError{Reason: fmt.Sprintf("prompt too short, minimum %d characters required", v.MinLength)}
	}
	if len(prompt) > v.MaxLength {
		return &ValidationError{Reason: fmt.Sprintf("prompt too long, maximum %d characters allowed", v.MaxLength)}
	}
	if len(strings.Fields(prompt)) < v.MinWords {
		return &ValidationError{Reason: fmt.Sprintf("prompt should contain at least %d words", v.MinWords)}
	}
	if !utf8.ValidString(prompt) {
		return &ValidationError{Reason: "invalid character encoding detected"}
	}
	if hasCharRun(prompt, 11) {
		return &ValidationError{Reason: "excessive character repetition detected"}
	}

	return nil
}

// Sensitive reports whether the prompt matches any flagged pattern.
// Matches are surfaced as a warning, not a rejection.
func (v *PromptValidator) Sensitive(prompt string) bool {
	for _, p := range v.sensitivePatterns {
		if p.MatchString(prompt) {
			return true
		}
	}
	return false
}

// QualityScore rates the prompt's surface quality in [0,1]: length,
// word diversity and sentence structure. Informational only.
func (v *PromptValidator) QualityScore(prompt string) float64 {
	score := 1.0

	if len(prompt) < 50 {
		score -= 0.2
	}

	words := strings.Fields(prompt)
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		diversity := float64(len(unique)) / float64(len(words))
		score -= (1 - diversity) * 0.3
	} else {
		score -= 0.3
	}

	if len(sentenceSplit.Split(prompt, -1)) < 2 {
		score -= 0.2
	}

	if score < 0 {
		return 0
	}
	return score
}

// hasCharRun reports whether any rune repeats at least n times in a row
func hasCharRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
