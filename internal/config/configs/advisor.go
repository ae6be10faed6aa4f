package configs

import (
	"fmt"
	"strings"
	"time"
)

const (
	AdvisorNone    = "none"
	AdvisorOpenAI  = "openai"
	AdvisorBedrock = "bedrock"
)

// Advisor configures the external text-completion service used for the
// advisory issue. Provider selects the backend: "none" (default) disables
// the advisory step, "openai" talks to any OpenAI-compatible chat
// completions endpoint and "bedrock" invokes an Anthropic model on AWS
// Bedrock.
type Advisor struct {
	Provider string `env:"PROVIDER" envDefault:"none"`

	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model   string `env:"MODEL" envDefault:"gpt-4"`

	BedrockModelID string `env:"BEDROCK_MODEL_ID" envDefault:"anthropic.claude-3-sonnet-20240229-v1:0"`
	Region         string `env:"REGION" envDefault:"us-east-1"`

	Temperature float64       `env:"TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int           `env:"MAX_TOKENS" envDefault:"500"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"15s"`
	// MaxAttempts bounds OpenAI calls, including the first one.
	MaxAttempts uint `env:"MAX_ATTEMPTS" envDefault:"1"`

	// CacheTTL keeps advisory answers in Redis for identical prompts. Zero
	// disables caching.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"0s"`
}

// NormalizedProvider lower-cases and trims Provider. An empty value means
// "none".
func (c Advisor) NormalizedProvider() string {
	p := strings.ToLower(strings.TrimSpace(c.Provider))
	if p == "" {
		return AdvisorNone
	}
	return p
}

// Validate rejects providers other than none, openai and bedrock.
func (c Advisor) Validate() error {
	switch c.NormalizedProvider() {
	case AdvisorNone, AdvisorOpenAI, AdvisorBedrock:
		return nil
	}
	return fmt.Errorf("advisor: unknown provider %q", c.Provider)
}
