package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/agentev"
)

// Ensure LoggingFileSearcher implements agentev.FileSearcher.
var _ agentev.FileSearcher = (*LoggingFileSearcher)(nil)

// LoggingFileSearcher wraps a FileSearcher with logging.
type LoggingFileSearcher struct {
	next   agentev.FileSearcher
	logger *slog.Logger
}

// NewLoggingFileSearcher creates a new LoggingFileSearcher.
func NewLoggingFileSearcher(next agentev.FileSearcher, logger *slog.Logger) *LoggingFileSearcher {
	return &LoggingFileSearcher{next: next, logger: logger}
}

// SearchFiles delegates to the wrapped searcher and logs the operation.
func (s *LoggingFileSearcher) SearchFiles(ctx context.Context, query string, folders []string) (matches []*agentev.Match, err error) {
	defer func(begin time.Time) {
		s.logger.Info("local search",
			"query", query,
			"folders", len(folders),
			"matches", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchFiles(ctx, query, folders)
}

// Ensure LoggingWebSearcher implements agentev.WebSearcher.
var _ agentev.WebSearcher = (*LoggingWebSearcher)(nil)

// LoggingWebSearcher wraps a WebSearcher with logging.
type LoggingWebSearcher struct {
	next   agentev.WebSearcher
	logger *slog.Logger
}

// NewLoggingWebSearcher creates a new LoggingWebSearcher.
func NewLoggingWebSearcher(next agentev.WebSearcher, logger *slog.Logger) *LoggingWebSearcher {
	return &LoggingWebSearcher{next: next, logger: logger}
}

// SearchPage delegates to the wrapped searcher and logs the operation.
func (s *LoggingWebSearcher) SearchPage(ctx context.Context, pageURL, query string) (matches []*agentev.Match, err error) {
	defer func(begin time.Time) {
		s.logger.Info("web search",
			"url", pageURL,
			"query", query,
			"matches", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchPage(ctx, pageURL, query)
}
