package domain

import "context"

// Completer is the remote language-model call consumed by the query interpreter.
type Completer interface {
	// Complete sends a system instruction and the user text and returns the raw model reply.
	// Network, auth, quota and timeout failures are reported as errors.
	Complete(ctx context.Context, systemPrompt, userText string, maxTokens int, temperature float64) (string, error)
}

// Interpreter turns a free-form query into Criteria.
type Interpreter interface {
	Interpret(ctx context.Context, query string) Interpretation
}
