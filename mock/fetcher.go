package mock

import (
	"context"

	"github.com/fwojciec/agentev"
)

var _ agentev.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of agentev.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ agentev.ScriptExtractor = (*ScriptExtractor)(nil)

// ScriptExtractor is a mock implementation of agentev.ScriptExtractor.
type ScriptExtractor struct {
	ExtractScriptsFn func(html, baseURL string) ([]string, error)
}

func (e *ScriptExtractor) ExtractScripts(html, baseURL string) ([]string, error) {
	return e.ExtractScriptsFn(html, baseURL)
}
