package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
// Temperature is in [0,1]; parsing call sites use 0.3 for determinism.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error)
}
