// File path: internal/llm/providers/googleai_client.go
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langgraphgo/graph"

	"github.com/bizdocai/bizdoc/internal/common"
)

// GeminiProvider generates documents through the Gemini API. The call runs
// inside a compiled message graph with a single generation node, so the
// conversation state stays a plain message list.
type GeminiProvider struct {
	runner *graph.Runnable
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("configure gemini client: %w", err)
	}

	g := graph.NewMessageGraph()
	g.AddNode("generate", func(ctx context.Context, messages []llms.MessageContent) ([]llms.MessageContent, error) {
		resp, err := llm.GenerateContent(ctx, messages)
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no choices returned")
		}
		return append(messages,
			llms.TextParts(llms.ChatMessageTypeAI, resp.Choices[0].Content)), nil
	})
	g.AddEdge("generate", graph.END)
	g.SetEntryPoint("generate")
	runner, err := g.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile generation graph: %w", err)
	}

	common.Logger().Info("llm: Gemini provider configured", "model", model)
	return &GeminiProvider{runner: runner, model: model}, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, system, user string) (string, error) {
	logger := common.Logger()
	logger.Debug("llm: invoking generation graph", "model", g.model)
	out, err := g.runner.Invoke(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	})
	if err != nil {
		logger.Error("llm: generation failed", "error", err)
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty graph output")
	}

	var b strings.Builder
	for _, part := range out[len(out)-1].Parts {
		if text, ok := part.(llms.TextContent); ok {
			b.WriteString(text.Text)
		}
	}
	logger.Debug("llm: generation succeeded")
	return b.String(), nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}
