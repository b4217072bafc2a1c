package agentev

import "context"

// Fetcher retrieves the text body of a URL.
type Fetcher interface {
	// Fetch issues a GET request and returns the decoded response body.
	// Network failures and non-2xx responses are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ScriptExtractor finds external script resources in an HTML document.
type ScriptExtractor interface {
	// ExtractScripts returns the absolute URLs of all <script src> tags in
	// document order, resolved against baseURL.
	ExtractScripts(html, baseURL string) ([]string, error)
}
