package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v5"

	"campaign-health/internal/config/configs"
	"campaign-health/internal/core/port"
)

// StatusError is returned when the completion endpoint answers with a
// non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion endpoint returned %d: %s", e.Code, e.Body)
}

// retryable reports whether a retry may succeed: rate limiting and server
// errors.
func (e *StatusError) retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// OpenAIAdvisor implements port.Advisor against an OpenAI-compatible chat
// completions API.
type OpenAIAdvisor struct {
	apiKey      string
	model       string
	endpoint    string
	httpClient  *http.Client
	maxAttempts uint
	newBackOff  func() backoff.BackOff
}

// NewOpenAIAdvisor builds an advisor from cfg. A nil client gets a default
// one; per-call deadlines come from the caller's context.
func NewOpenAIAdvisor(cfg configs.Advisor, client *http.Client) *OpenAIAdvisor {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	attempts := cfg.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &OpenAIAdvisor{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		endpoint:    strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		httpClient:  client,
		maxAttempts: attempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
	}
}

// Advise sends one chat completion and returns the first choice's content.
// Transport errors, 429 and 5xx answers are retried up to maxAttempts.
func (o *OpenAIAdvisor) Advise(ctx context.Context, req port.AdvisoryRequest) (string, error) {
	if o.apiKey == "" {
		return "", errors.New("openai: API key not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: encode request: %w", err)
	}

	return backoff.Retry(ctx, func() (string, error) {
		text, err := o.complete(ctx, body)
		if err == nil {
			return text, nil
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.retryable() {
			return "", backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return "", backoff.Permanent(err)
		}
		return "", err
	},
		backoff.WithBackOff(o.newBackOff()),
		backoff.WithMaxTries(o.maxAttempts),
	)
}

func (o *OpenAIAdvisor) complete(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Body: truncate(string(raw), 512)}
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", backoff.Permanent(fmt.Errorf("openai: parse response: %w", err))
	}
	if out.Error != nil {
		return "", backoff.Permanent(fmt.Errorf("openai: API error: %s", out.Error.Message))
	}
	if len(out.Choices) == 0 {
		return "", backoff.Permanent(errors.New("openai: no choices in response"))
	}
	return out.Choices[0].Message.Content, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
