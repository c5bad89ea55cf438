// Package llm wraps the text-generation API behind a small interface and
// owns the token cost accounting.
package llm

import "context"

// Result is the outcome of a single generation call.
type Result struct {
	Content          string
	PromptTokens     int64
	CompletionTokens int64
	Cost             float64
}

// Generator produces text from a rendered prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Result, error)
}

// Pricing holds the per-token rates used for cost reporting.
type Pricing struct {
	InputCostPerToken  float64
	OutputCostPerToken float64
}

// Cost computes the cost of a call from its token usage.
func (p Pricing) Cost(promptTokens, completionTokens int64) float64 {
	return float64(promptTokens)*p.InputCostPerToken + float64(completionTokens)*p.OutputCostPerToken
}
