package ai

import (
	"errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var ErrMissingAPIKey = errors.New("completion API key is not configured")

// NewCompletionModel builds the shared chat-completion client. The returned
// llms.Model is injected into the estimator and generator rather than held as
// package state.
func NewCompletionModel(apiKey string, model string) (llms.Model, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
}
