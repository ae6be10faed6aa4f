package port

import "context"

// Advisor is an outbound port to an external text-completion service. It
// produces free-form advisory text for a prompt. Implementations must honour
// ctx cancellation; the caller applies its own deadline.
type Advisor interface {
	Advise(ctx context.Context, req AdvisoryRequest) (string, error)
}

// AdvisoryRequest carries everything an Advisor needs for one completion.
// MaxTokens bounds the response length.
type AdvisoryRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}
