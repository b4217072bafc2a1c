package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/agentev"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model queried when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds a single GenerateContent call.
const DefaultTimeout = 30 * time.Second

// Ensure Asker implements agentev.Asker at compile time.
var _ agentev.Asker = (*Asker)(nil)

// Asker implements agentev.Asker using Google Gemini.
// A client is created per call so that a missing key never touches the network.
type Asker struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
}

// Option configures an Asker.
type Option func(*Asker)

// WithModel sets the Gemini model name.
func WithModel(model string) Option {
	return func(a *Asker) {
		a.model = model
	}
}

// WithBaseURL overrides the Gemini API base URL. Used to point at test servers.
func WithBaseURL(baseURL string) Option {
	return func(a *Asker) {
		a.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for each request.
func WithTimeout(d time.Duration) Option {
	return func(a *Asker) {
		a.timeout = d
	}
}

// NewAsker creates a new Asker. An empty apiKey is accepted; Ask then
// reports ECONFIG.
func NewAsker(apiKey string, opts ...Option) *Asker {
	a := &Asker{
		apiKey:  apiKey,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask answers question briefly.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if a.apiKey == "" {
		return "", agentev.Errorf(agentev.ECONFIG, "API key GEMINI_API_KEY is not set in environment variables.")
	}
	if question == "" {
		return "", agentev.Errorf(agentev.EINVALID, "question required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      a.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: a.timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: a.baseURL},
	})
	if err != nil {
		return "", agentev.Errorf(agentev.ECONFIG, "failed to create Gemini client: %v", err)
	}

	result, err := client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(BuildPrompt(question), "user")},
		nil,
	)
	if err != nil {
		if msg, ok := apiErrorMessage(err); ok {
			return "", agentev.Errorf(agentev.EUNAVAILABLE, "API Error: %s", msg)
		}
		return "", agentev.Errorf(agentev.EUNAVAILABLE, "HTTP Request Error: %v", err)
	}

	if result == nil || len(result.Candidates) == 0 {
		return "", agentev.Errorf(agentev.EINTERNAL, "Failed to extract answer from JSON.")
	}
	answer := result.Text()
	if strings.TrimSpace(answer) == "" {
		return "", agentev.Errorf(agentev.EINTERNAL, "Failed to extract answer from JSON.")
	}

	return answer, nil
}

// BuildPrompt builds the single-turn prompt sent to the model.
func BuildPrompt(question string) string {
	return "Answer the following question briefly and to the point in English: " + question
}

// apiErrorMessage extracts the provider's message from an error response.
func apiErrorMessage(err error) (string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Message, true
	}
	return "", false
}
