package agentev

import "context"

// Asker answers a free-form question with a generative model.
type Asker interface {
	// Ask returns the model's answer to question.
	// Returns ECONFIG if no credentials are configured.
	Ask(ctx context.Context, question string) (string, error)
}
