package analyzer

import "strings"

const maxFeedbackItems = 5

// identifyStrengths lists what the prompt already does well, driven by
// which dimensions cleared the high bar.
func identifyStrengths(prompt string, clarity, specificity, contextScore, constraints, goal float64) []string {
	lower := strings.ToLower(prompt)
	var strengths []string

	if clarity >= 7 {
		strengths = append(strengths, "Clear and unambiguous language")
	}
	if specificity >= 7 {
		strengths = append(strengths, "Specific requirements and details provided")
	}
	if contextScore >= 7 {
		strengths = append(strengths, "Sufficient background context")
	}
	if constraints >= 7 {
		strengths = append(strengths, "Well-defined formatting and style constraints")
	}
	if goal >= 7 {
		strengths = append(strengths, "Clear goal and desired outcome")
	}

	if WordCount(prompt) > 50 {
		strengths = append(strengths, "Comprehensive and detailed prompt")
	}
	if containsAny(lower, "include", "format", "structure") {
		strengths = append(strengths, "Good structural guidance provided")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Basic prompt structure in place")
	}
	return truncate(strengths)
}

// identifyWeaknesses mirrors identifyStrengths with a lower bar.
func identifyWeaknesses(prompt string, clarity, specificity, contextScore, constraints, goal float64) []string {
	lower := strings.ToLower(prompt)
	var weaknesses []string

	if clarity < 6 {
		weaknesses = append(weaknesses, "Language could be clearer and less ambiguous")
	}
	if specificity < 6 {
		weaknesses = append(weaknesses, "Needs more specific requirements and details")
	}
	if contextScore < 6 {
		weaknesses = append(weaknesses, "Lacks sufficient background context")
	}
	if constraints < 6 {
		weaknesses = append(weaknesses, "Missing clear formatting and style guidelines")
	}
	if goal < 6 {
		weaknesses = append(weaknesses, "Desired outcome could be more clearly defined")
	}

	if WordCount(prompt) < 15 {
		weaknesses = append(weaknesses, "Prompt is too brief and lacks detail")
	}
	if containsAny(lower, "thing", "stuff", "good", "nice", "help") {
		weaknesses = append(weaknesses, "Contains vague language that could be more specific")
	}

	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "Minor improvements possible in overall clarity")
	}
	return truncate(weaknesses)
}

// generateSuggestions maps each weakness to a concrete fix. Order
// follows the weaknesses; repeated suggestion types are kept as-is.
func generateSuggestions(weaknesses []string) []string {
	var suggestions []string

	for _, w := range weaknesses {
		switch {
		case strings.Contains(w, "clearer") || strings.Contains(w, "ambiguous"):
			suggestions = append(suggestions, "Replace vague terms with specific, concrete language")
		case strings.Contains(w, "specific") || strings.Contains(w, "details"):
			suggestions = append(suggestions, "Add specific numbers, formats, or measurable criteria")
		case strings.Contains(w, "context"):
			suggestions = append(suggestions, "Provide background information about your situation or goals")
		case strings.Contains(w, "formatting") || strings.Contains(w, "guidelines"):
			suggestions = append(suggestions, "Specify desired output format (length, style, structure)")
		case strings.Contains(w, "outcome") || strings.Contains(w, "goal"):
			suggestions = append(suggestions, "Clearly state what success looks like for this task")
		case strings.Contains(w, "brief") || strings.Contains(w, "detail"):
			suggestions = append(suggestions, "Expand the prompt with more context and requirements")
		case strings.Contains(w, "vague"):
			suggestions = append(suggestions, "Replace general terms with specific, actionable language")
		}
	}

	if len(suggestions) == 0 {
		suggestions = []string{
			"Consider adding more specific details about your requirements",
			"Include context about your intended audience or use case",
			"Specify the desired format and length of the output",
		}
	}
	return truncate(suggestions)
}

const shortPromptAdditions = `

Please provide a comprehensive response that includes:
- Clear explanations with specific examples
- Structured format with headings or bullet points
- Relevant context and background information
- Actionable insights or recommendations
- Sources or references where applicable

Target length: 200-500 words
Tone: Professional and informative`

const formatRequest = "\n\nPlease format your response with clear headings and structure."

const lengthRequest = " Aim for a comprehensive response of 300-500 words."

// ImprovePrompt rewrites a prompt to address the usual gaps. Very short
// prompts get wrapped in a detailed request template; longer ones only
// gain a formatting and a length clause when those are absent.
//
// Idempotent: the injected text itself satisfies the absence checks
// ("format", "words"), so re-running on already-improved text changes
// nothing.
func ImprovePrompt(prompt string) string {
	lower := strings.ToLower(prompt)

	if WordCount(prompt) < 15 {
		return strings.TrimSpace(prompt) + shortPromptAdditions
	}

	improved := prompt
	if !strings.Contains(lower, "format") {
		improved += formatRequest
	}
	if !containsAny(lower, "words", "length", "brief", "detailed") {
		improved += lengthRequest
	}
	return improved
}

func containsAny(lower string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func truncate(items []string) []string {
	if len(items) > maxFeedbackItems {
		return items[:maxFeedbackItems]
	}
	return items
}
