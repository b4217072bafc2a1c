package mock

import (
	"context"

	"github.com/fwojciec/agentev"
)

var _ agentev.FileSearcher = (*FileSearcher)(nil)

// FileSearcher is a mock implementation of agentev.FileSearcher.
type FileSearcher struct {
	SearchFilesFn func(ctx context.Context, query string, folders []string) ([]*agentev.Match, error)
}

func (s *FileSearcher) SearchFiles(ctx context.Context, query string, folders []string) ([]*agentev.Match, error) {
	return s.SearchFilesFn(ctx, query, folders)
}

var _ agentev.WebSearcher = (*WebSearcher)(nil)

// WebSearcher is a mock implementation of agentev.WebSearcher.
type WebSearcher struct {
	SearchPageFn func(ctx context.Context, pageURL, query string) ([]*agentev.Match, error)
}

func (s *WebSearcher) SearchPage(ctx context.Context, pageURL, query string) ([]*agentev.Match, error) {
	return s.SearchPageFn(ctx, pageURL, query)
}

var _ agentev.Encyclopedia = (*Encyclopedia)(nil)

// Encyclopedia is a mock implementation of agentev.Encyclopedia.
type Encyclopedia struct {
	LookupFn func(ctx context.Context, term string) (*agentev.Article, error)
}

func (e *Encyclopedia) Lookup(ctx context.Context, term string) (*agentev.Article, error) {
	return e.LookupFn(ctx, term)
}
