// File path: internal/llm/llm.go
package llm

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/bizdocai/bizdoc/internal/common"
	"github.com/bizdocai/bizdoc/internal/llm/providers"
)

type Provider = providers.Provider

// NewProvider selects the generation backend from the environment. Gemini
// takes precedence when GEMINI_API_KEY is set, then OpenAI via
// OPENAI_API_KEY, then the keyless local stub.
func NewProvider(ctx context.Context) Provider {
	logger := common.Logger()

	if apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); apiKey != "" {
		model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
		if model == "" {
			model = "gemini-2.5-flash"
		}
		provider, err := providers.NewGeminiProvider(ctx, apiKey, model)
		if err != nil {
			logger.Error("llm: Gemini provider unavailable; falling back", "error", err)
		} else {
			logger.Info("llm: Gemini provider selected")
			return provider
		}
	}

	if apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); apiKey != "" {
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if timeoutStr := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); timeoutStr != "" {
			timeout, err := time.ParseDuration(timeoutStr)
			if err != nil {
				logger.Warn("llm: invalid OPENAI_HTTP_TIMEOUT, using default", "value", timeoutStr, "error", err)
			} else {
				opts = append(opts, option.WithRequestTimeout(timeout))
			}
		}
		if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
			logger.Info("llm: configuring OpenAI client with custom endpoint", "endpoint", endpoint)
			opts = append(opts, option.WithBaseURL(endpoint))
		}
		logger.Info("llm: OpenAI provider selected")
		return providers.NewOpenAIProvider(openai.NewClient(opts...))
	}

	logger.Warn("llm: no API key set; falling back to local provider")
	return providers.NewLocalProvider()
}
