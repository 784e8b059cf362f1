package config

import "os"

// AIConfig holds all AI-backend configuration
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`

	// MinIntervalMS is the minimum gap between two requests to the
	// backend. The free tier throttles aggressively, so the client
	// self-paces instead of burning quota on 429s.
	MinIntervalMS int `json:"minIntervalMs"`

	// Generation parameters. Low temperature keeps scoring consistent
	// across repeated runs of the same prompt.
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		BaseURL:         "https://generativelanguage.googleapis.com/v1beta/models",
		Model:           getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		TimeoutMS:       10000,
		MinIntervalMS:   2000,
		Temperature:     0.1,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 1500,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full generateContent endpoint for the configured model
func (c *AIConfig) ModelEndpoint() string {
	return c.BaseURL + "/" + c.Model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
