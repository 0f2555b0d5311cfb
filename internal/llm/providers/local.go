// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"fmt"
	"strings"
)

// LocalProvider is the keyless fallback. It echoes the prompt so the rest of
// the pipeline stays exercisable without network access.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Generate(ctx context.Context, system, user string) (string, error) {
	if strings.TrimSpace(user) == "" {
		return "", fmt.Errorf("no prompt provided")
	}
	return "[local-stub] " + strings.TrimSpace(user), nil
}

func (l *LocalProvider) Name() string {
	return "local"
}
