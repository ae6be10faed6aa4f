package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"campaign-health/internal/config/configs"
	"campaign-health/internal/core/port"
)

const anthropicBedrockVersion = "bedrock-2023-05-31"

// modelInvoker is the subset of *bedrockruntime.Client used here.
type modelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type bedrockContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type bedrockMessage struct {
	Role    string                `json:"role"`
	Content []bedrockContentBlock `json:"content"`
}

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
	Temperature      float64          `json:"temperature"`
}

type bedrockResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// BedrockAdvisor implements port.Advisor with an Anthropic model hosted on
// AWS Bedrock.
type BedrockAdvisor struct {
	client  modelInvoker
	modelID string
}

// NewBedrockAdvisor loads the default AWS credential chain for cfg.Region.
func NewBedrockAdvisor(ctx context.Context, cfg configs.Advisor) (*BedrockAdvisor, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return newBedrockAdvisor(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID), nil
}

func newBedrockAdvisor(client modelInvoker, modelID string) *BedrockAdvisor {
	return &BedrockAdvisor{client: client, modelID: modelID}
}

// Advise invokes the model once and joins the returned text blocks.
func (b *BedrockAdvisor) Advise(ctx context.Context, req port.AdvisoryRequest) (string, error) {
	body, err := json.Marshal(bedrockRequest{
		AnthropicVersion: anthropicBedrockVersion,
		MaxTokens:        req.MaxTokens,
		System:           req.System,
		Messages: []bedrockMessage{{
			Role:    "user",
			Content: []bedrockContentBlock{{Type: "text", Text: req.Prompt}},
		}},
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock: encode request: %w", err)
	}

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock: invoke model: %w", err)
	}

	var resp bedrockResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("bedrock: parse response: %w", err)
	}

	var parts []string
	for _, c := range resp.Content {
		if c.Type == "text" && c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	if len(parts) == 0 {
		return "", errors.New("bedrock: no text in response")
	}
	return strings.Join(parts, "\n"), nil
}
